package carlist

import (
	"context"
	"time"
)

// RecordStore defines the persistence contract for car listing records.
// The interface lives in the root package so that store implementations
// in the store package can depend on it without an import cycle.
//
// All failures map onto the root error taxonomy: ErrNotFound for guard
// violations, ErrStoreUnavailable for backend failures. Implementations
// never retry internally.
type RecordStore interface {
	// ListByOwner returns every record belonging to ownerID. An owner
	// with no records yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID string) ([]*Record, error)

	// Insert persists a new record. OwnerID and RecordID must already be
	// populated and AttachmentURL unset; the store pre-populates the
	// deterministic attachment URL before writing. Returns the record as
	// stored.
	Insert(ctx context.Context, record *Record) (*Record, error)

	// Update rewrites every mutable field of an existing record,
	// conditional on the record existing under (ownerID, recordID).
	Update(ctx context.Context, record *Record) error

	// SetAttachmentURL updates only the attachment URL, with the same
	// existence guard as Update.
	SetAttachmentURL(ctx context.Context, ownerID, recordID, url string) error

	// Delete removes the record, conditional on it existing under
	// (ownerID, recordID). A record owned by someone else fails the
	// guard rather than being deleted.
	Delete(ctx context.Context, ownerID, recordID string) error
}

// AttachmentIssuer bridges a record's identity to the external object
// store holding its image attachment.
type AttachmentIssuer interface {
	// IssueUploadURL returns a short-lived presigned PUT URL for the
	// record's object key, and the instant the URL expires. Issuance is
	// stateless: re-issuing for the same record never invalidates prior
	// unexpired URLs.
	IssueUploadURL(ctx context.Context, recordID string) (string, time.Time, error)

	// PublicURL returns the deterministic public address of the record's
	// attachment. Pure function, no network call.
	PublicURL(recordID string) string

	// DeleteObject removes the record's attachment object. Best effort;
	// failures wrap ErrObjectStore.
	DeleteObject(ctx context.Context, recordID string) error
}

// PublicURLFunc computes the deterministic public attachment URL for a
// record id. Stores use it to pre-populate new records.
type PublicURLFunc func(recordID string) string
