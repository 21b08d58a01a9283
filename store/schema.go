package store

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB schema constants for the listings table
const (
	// Key attributes: owner_id is the partition key, record_id the sort key
	AttrOwnerID  = "owner_id"
	AttrRecordID = "record_id"

	// Non-key attributes
	AttrName          = "name"
	AttrCategory      = "category"
	AttrVariant       = "variant"
	AttrContactEmail  = "contact_email"
	AttrDescription   = "description"
	AttrAttachmentURL = "attachment_url"
)

// recordExistsCondition guards conditional writes: the item must already
// exist under the exact (owner_id, record_id) key. A record owned by a
// different caller lives under a different partition, so the guard fails
// for cross-owner access too.
const recordExistsCondition = "attribute_exists(" + AttrRecordID + ")"

// recordKey builds the compound primary key for a record.
func recordKey(ownerID, recordID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrOwnerID:  &types.AttributeValueMemberS{Value: ownerID},
		AttrRecordID: &types.AttributeValueMemberS{Value: recordID},
	}
}
