package carlist

import (
	"time"

	"github.com/rs/zerolog"
)

// Log event names
const (
	// Record lifecycle events
	EventRecordsListed = "records_listed"
	EventRecordCreated = "record_created"
	EventRecordUpdated = "record_updated"
	EventRecordDeleted = "record_deleted"

	// Attachment events
	EventUploadURLIssued      = "upload_url_issued"
	EventAttachmentSyncFailed = "attachment_sync_failed"
	EventObjectDeleteFailed   = "object_delete_failed"

	// Persistence events
	EventStoreError = "store_error"
)

// LogRecordsListed logs a successful owner-scoped list
func LogRecordsListed(logger zerolog.Logger, ownerID string, count int) {
	logger.Debug().
		Str("event", EventRecordsListed).
		Str("owner_id", ownerID).
		Int("count", count).
		Msg("Records listed")
}

// LogRecordCreated logs a successful record creation
func LogRecordCreated(logger zerolog.Logger, ownerID, recordID string) {
	logger.Info().
		Str("event", EventRecordCreated).
		Str("owner_id", ownerID).
		Str("record_id", recordID).
		Msg("Record created")
}

// LogRecordUpdated logs a successful record update
func LogRecordUpdated(logger zerolog.Logger, ownerID, recordID string) {
	logger.Info().
		Str("event", EventRecordUpdated).
		Str("owner_id", ownerID).
		Str("record_id", recordID).
		Msg("Record updated")
}

// LogRecordDeleted logs a successful record deletion
func LogRecordDeleted(logger zerolog.Logger, ownerID, recordID string) {
	logger.Info().
		Str("event", EventRecordDeleted).
		Str("owner_id", ownerID).
		Str("record_id", recordID).
		Msg("Record deleted")
}

// LogUploadURLIssued logs issuance of a presigned upload URL
func LogUploadURLIssued(logger zerolog.Logger, ownerID, recordID string, expiresAt time.Time) {
	logger.Info().
		Str("event", EventUploadURLIssued).
		Str("owner_id", ownerID).
		Str("record_id", recordID).
		Time("expires_at", expiresAt).
		Msg("Upload URL issued")
}

// LogAttachmentSyncFailed logs a failed best-effort attachment URL sync
func LogAttachmentSyncFailed(logger zerolog.Logger, ownerID, recordID string, err error) {
	logger.Warn().
		Str("event", EventAttachmentSyncFailed).
		Str("owner_id", ownerID).
		Str("record_id", recordID).
		Str("code", ErrorCode(err)).
		Err(err).
		Msg("Attachment URL sync failed")
}

// LogObjectDeleteFailed logs a failed best-effort attachment object delete
func LogObjectDeleteFailed(logger zerolog.Logger, ownerID, recordID string, err error) {
	logger.Warn().
		Str("event", EventObjectDeleteFailed).
		Str("owner_id", ownerID).
		Str("record_id", recordID).
		Str("code", ErrorCode(err)).
		Err(err).
		Msg("Attachment object delete failed")
}

// LogStoreError logs a record store failure
func LogStoreError(logger zerolog.Logger, ownerID, operation string, err error) {
	logger.Error().
		Str("event", EventStoreError).
		Str("owner_id", ownerID).
		Str("operation", operation).
		Str("code", ErrorCode(err)).
		Err(err).
		Msg("Store error")
}

// OwnerLogger creates a logger enriched with owner context
func OwnerLogger(baseLogger zerolog.Logger, ownerID string) zerolog.Logger {
	return baseLogger.With().
		Str("owner_id", ownerID).
		Logger()
}
