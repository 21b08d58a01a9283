package carlist

import "errors"

// Error codes used as structured log fields
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeStoreUnavailable  = "STORE_UNAVAILABLE"
	ErrCodeInvalidCredential = "INVALID_CREDENTIAL"
	ErrCodeObjectStore       = "OBJECT_STORE_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a record doesn't exist under the
	// caller's owner id, or a conditional write's existence guard failed.
	ErrNotFound = errors.New("carlist: record not found")

	// ErrStoreUnavailable is returned on transient record-store failures
	// (connectivity, throttling). Safe to retry with backoff at a higher
	// layer; the store itself never retries.
	ErrStoreUnavailable = errors.New("carlist: record store unavailable")

	// ErrInvalidCredential is returned when the bearer credential cannot
	// be resolved to an owner id.
	ErrInvalidCredential = errors.New("carlist: invalid credential")

	// ErrObjectStore is returned on attachment object-store failures.
	// Best-effort operations log and swallow it rather than propagate.
	ErrObjectStore = errors.New("carlist: object store error")
)

// ErrorCode maps an error to its log-field code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return ErrCodeStoreUnavailable
	case errors.Is(err, ErrInvalidCredential):
		return ErrCodeInvalidCredential
	case errors.Is(err, ErrObjectStore):
		return ErrCodeObjectStore
	default:
		return ErrCodeInternal
	}
}
