package attachment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sicko7947/carlist"
)

// PresignClient defines the presigning operations used by the issuer.
// This interface allows for easy mocking in tests without requiring actual AWS infrastructure.
type PresignClient interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ObjectClient defines the object operations used by the issuer.
type ObjectClient interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Verify that the real S3 clients implement our interfaces
var (
	_ PresignClient = (*s3.PresignClient)(nil)
	_ ObjectClient  = (*s3.Client)(nil)
)

var _ carlist.AttachmentIssuer = (*Issuer)(nil)

// Issuer implements carlist.AttachmentIssuer against an S3 bucket. The
// object key for a record's attachment is the record id itself, so the
// public address is computable without any network call.
type Issuer struct {
	presigner PresignClient
	objects   ObjectClient
	bucket    string
	ttl       time.Duration
	now       func() time.Time
}

// NewIssuer creates a new S3-backed attachment issuer. ttl is the
// presigned upload URL lifetime and must be explicitly configured.
func NewIssuer(presigner PresignClient, objects ObjectClient, bucket string, ttl time.Duration) (*Issuer, error) {
	if bucket == "" {
		return nil, errors.New("attachment: bucket is required")
	}
	if ttl <= 0 {
		return nil, errors.New("attachment: upload URL TTL must be positive")
	}
	return &Issuer{
		presigner: presigner,
		objects:   objects,
		bucket:    bucket,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// IssueUploadURL returns a presigned PUT URL for the record's object key
// and the instant it expires. Each issuance is independent; earlier
// unexpired URLs stay valid.
func (i *Issuer) IssueUploadURL(ctx context.Context, recordID string) (string, time.Time, error) {
	expiresAt := i.now().Add(i.ttl)

	req, err := i.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(i.bucket),
		Key:    aws.String(recordID),
	}, s3.WithPresignExpires(i.ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign upload: %w: %v", carlist.ErrObjectStore, err)
	}

	return req.URL, expiresAt, nil
}

// PublicURL returns the deterministic public address of the record's
// attachment, whether or not the object has been uploaded yet.
func (i *Issuer) PublicURL(recordID string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", i.bucket, recordID)
}

// DeleteObject removes the record's attachment object from the bucket.
func (i *Issuer) DeleteObject(ctx context.Context, recordID string) error {
	_, err := i.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(i.bucket),
		Key:    aws.String(recordID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w: %v", carlist.ErrObjectStore, err)
	}

	return nil
}
