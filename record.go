package carlist

import "time"

// Record represents a single car listing owned by an authenticated user.
// JSON keys are part of the client contract and must not change.
type Record struct {
	// Identity
	OwnerID  string `json:"ownerId" dynamodbav:"owner_id"`
	RecordID string `json:"recordId" dynamodbav:"record_id"`

	// Listing details
	Name         string `json:"name" dynamodbav:"name"`
	Category     string `json:"category" dynamodbav:"category"`
	Variant      string `json:"variant" dynamodbav:"variant"`
	ContactEmail string `json:"contactEmail" dynamodbav:"contact_email"`
	Description  string `json:"description" dynamodbav:"description"`

	// Public address of the listing's image. Pre-populated at creation
	// with the deterministic URL the attachment will have once uploaded.
	AttachmentURL string `json:"attachmentUrl,omitempty" dynamodbav:"attachment_url,omitempty"`
}

// RecordFields holds the caller-supplied mutable fields of a Record.
// OwnerID and RecordID are never caller-supplied.
type RecordFields struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Variant      string `json:"variant"`
	ContactEmail string `json:"contactEmail"`
	Description  string `json:"description"`
}

// UploadGrant is a time-limited permission to upload one attachment.
type UploadGrant struct {
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
