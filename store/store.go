package store

// Package store provides persistence implementations for car listing
// records. The RecordStore interface is defined in the parent carlist
// package (../store_interface.go) to avoid import cycles between the
// carlist and store packages.
//
// This package contains concrete implementations:
//   - DynamoDBStore: Production AWS DynamoDB backend
//   - MemoryStore: In-memory backend for testing
//
// Table schema: composite primary key with owner_id as the partition
// key and record_id as the sort key, so listing an owner's records is
// a single-partition Query and every write carries the caller's owner
// id in the key (see schema.go).
