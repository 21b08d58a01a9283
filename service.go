package carlist

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service composes the record store and the attachment issuer into the
// owner-facing operations. It holds no mutable state across calls;
// every mutation is scoped to the caller's owner id.
type Service struct {
	store       RecordStore
	attachments AttachmentIssuer
	logger      zerolog.Logger
	newID       func() string
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithLogger sets the logger used by the service
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDGenerator overrides record id generation (used in tests)
func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *Service) {
		s.newID = gen
	}
}

// NewService creates a new listing service
func NewService(store RecordStore, attachments AttachmentIssuer, opts ...ServiceOption) *Service {
	s := &Service{
		store:       store,
		attachments: attachments,
		logger:      zerolog.New(os.Stderr).With().Timestamp().Logger(),
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListMine returns every record belonging to the caller.
func (s *Service) ListMine(ctx context.Context, ownerID string) ([]*Record, error) {
	records, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		LogStoreError(s.logger, ownerID, "list", err)
		return nil, err
	}
	LogRecordsListed(s.logger, ownerID, len(records))
	return records, nil
}

// CreateMine builds a record from the caller's owner id, a freshly
// generated record id and the submitted fields, and persists it. The
// returned record carries the deterministic attachment URL the store
// pre-populated.
func (s *Service) CreateMine(ctx context.Context, ownerID string, fields RecordFields) (*Record, error) {
	record := &Record{
		OwnerID:      ownerID,
		RecordID:     s.newID(),
		Name:         fields.Name,
		Category:     fields.Category,
		Variant:      fields.Variant,
		ContactEmail: fields.ContactEmail,
		Description:  fields.Description,
	}

	stored, err := s.store.Insert(ctx, record)
	if err != nil {
		LogStoreError(s.logger, ownerID, "insert", err)
		return nil, err
	}

	LogRecordCreated(s.logger, ownerID, stored.RecordID)
	return stored, nil
}

// UpdateMine rewrites the mutable fields of an existing record.
// Returns ErrNotFound if the record doesn't exist under the caller's
// owner id.
func (s *Service) UpdateMine(ctx context.Context, ownerID, recordID string, fields RecordFields) error {
	record := &Record{
		OwnerID:      ownerID,
		RecordID:     recordID,
		Name:         fields.Name,
		Category:     fields.Category,
		Variant:      fields.Variant,
		ContactEmail: fields.ContactEmail,
		Description:  fields.Description,
	}

	if err := s.store.Update(ctx, record); err != nil {
		LogStoreError(s.logger, ownerID, "update", err)
		return err
	}

	LogRecordUpdated(s.logger, ownerID, recordID)
	return nil
}

// DeleteMine removes the record and then, best effort, its attachment
// object. The record delete runs first: its ownership guard is what
// proves the caller may touch the object at all. An object-store
// failure after a successful record delete is logged and swallowed.
func (s *Service) DeleteMine(ctx context.Context, ownerID, recordID string) error {
	if err := s.store.Delete(ctx, ownerID, recordID); err != nil {
		LogStoreError(s.logger, ownerID, "delete", err)
		return err
	}

	if err := s.attachments.DeleteObject(ctx, recordID); err != nil {
		LogObjectDeleteFailed(s.logger, ownerID, recordID, err)
	}

	LogRecordDeleted(s.logger, ownerID, recordID)
	return nil
}

// RequestUploadURL issues a presigned upload URL for the record's
// attachment and, best effort, syncs the persisted attachment URL to
// the deterministic public address. The grant is returned even if the
// sync fails: the store write keeps the record in step with an upload
// that is expected to happen, it is not a precondition for it.
func (s *Service) RequestUploadURL(ctx context.Context, ownerID, recordID string) (*UploadGrant, error) {
	url, expiresAt, err := s.attachments.IssueUploadURL(ctx, recordID)
	if err != nil {
		s.logger.Error().
			Str("owner_id", ownerID).
			Str("record_id", recordID).
			Str("code", ErrorCode(err)).
			Err(err).
			Msg("Failed to issue upload URL")
		return nil, err
	}

	if err := s.store.SetAttachmentURL(ctx, ownerID, recordID, s.attachments.PublicURL(recordID)); err != nil {
		LogAttachmentSyncFailed(s.logger, ownerID, recordID, err)
	}

	LogUploadURLIssued(s.logger, ownerID, recordID, expiresAt)
	return &UploadGrant{UploadURL: url, ExpiresAt: expiresAt}, nil
}
