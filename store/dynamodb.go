package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sicko7947/carlist"
)

// DynamoDBStore implements carlist.RecordStore using AWS DynamoDB
type DynamoDBStore struct {
	client    DynamoDBClient
	tableName string
	publicURL carlist.PublicURLFunc
}

// NewDynamoDBStore creates a new DynamoDB-backed record store. publicURL
// computes the deterministic attachment address pre-populated on insert
// (normally the attachment issuer's PublicURL).
func NewDynamoDBStore(client DynamoDBClient, tableName string, publicURL carlist.PublicURLFunc) carlist.RecordStore {
	return &DynamoDBStore{
		client:    client,
		tableName: tableName,
		publicURL: publicURL,
	}
}

func (s *DynamoDBStore) ListByOwner(ctx context.Context, ownerID string) ([]*carlist.Record, error) {
	records := []*carlist.Record{}
	var lastEvaluatedKey map[string]types.AttributeValue

	// Paginate through all results
	for {
		queryInput := &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String(AttrOwnerID + " = :owner_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner_id": &types.AttributeValueMemberS{Value: ownerID},
			},
		}

		if lastEvaluatedKey != nil {
			queryInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := s.client.Query(ctx, queryInput)
		if err != nil {
			return nil, storeError("failed to list records", err)
		}

		for _, item := range result.Items {
			var record carlist.Record
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				return nil, fmt.Errorf("failed to unmarshal record: %w", err)
			}
			records = append(records, &record)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return records, nil
}

func (s *DynamoDBStore) Insert(ctx context.Context, record *carlist.Record) (*carlist.Record, error) {
	// Pre-populate the deterministic attachment URL; no object exists
	// there yet, but the address is fixed for the record's lifetime.
	stored := *record
	stored.AttachmentURL = s.publicURL(record.RecordID)

	item, err := attributevalue.MarshalMap(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return nil, storeError("failed to insert record", err)
	}

	return &stored, nil
}

func (s *DynamoDBStore) Update(ctx context.Context, record *carlist.Record) error {
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 recordKey(record.OwnerID, record.RecordID),
		UpdateExpression:    aws.String("set #name = :name, #category = :category, #variant = :variant, #contact_email = :contact_email, #description = :description"),
		ConditionExpression: aws.String(recordExistsCondition),
		ExpressionAttributeNames: map[string]string{
			"#name":          AttrName,
			"#category":      AttrCategory,
			"#variant":       AttrVariant,
			"#contact_email": AttrContactEmail,
			"#description":   AttrDescription,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":          &types.AttributeValueMemberS{Value: record.Name},
			":category":      &types.AttributeValueMemberS{Value: record.Category},
			":variant":       &types.AttributeValueMemberS{Value: record.Variant},
			":contact_email": &types.AttributeValueMemberS{Value: record.ContactEmail},
			":description":   &types.AttributeValueMemberS{Value: record.Description},
		},
	})
	if err != nil {
		return storeError("failed to update record", err)
	}

	return nil
}

func (s *DynamoDBStore) SetAttachmentURL(ctx context.Context, ownerID, recordID, url string) error {
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 recordKey(ownerID, recordID),
		UpdateExpression:    aws.String("set " + AttrAttachmentURL + " = :attachment_url"),
		ConditionExpression: aws.String(recordExistsCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":attachment_url": &types.AttributeValueMemberS{Value: url},
		},
	})
	if err != nil {
		return storeError("failed to set attachment url", err)
	}

	return nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, ownerID, recordID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 recordKey(ownerID, recordID),
		ConditionExpression: aws.String(recordExistsCondition),
	})
	if err != nil {
		return storeError("failed to delete record", err)
	}

	return nil
}

// storeError maps a DynamoDB failure onto the root error taxonomy.
// Conditional-check failures mean the record isn't there under the
// caller's key; everything else is a backend availability problem and
// left to the caller to retry.
func storeError(op string, err error) error {
	var condFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condFailed) {
		return fmt.Errorf("%s: %w", op, carlist.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, carlist.ErrStoreUnavailable, err)
}
