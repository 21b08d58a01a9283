package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sicko7947/carlist"
)

func TestNewMemoryStore(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	if store == nil {
		t.Fatal("NewMemoryStore() returned nil")
	}

	// Verify it implements the interface
	var _ carlist.RecordStore = store
}

func TestMemoryStore_InsertAndList(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	ctx := context.Background()

	stored, err := store.Insert(ctx, &carlist.Record{
		OwnerID:  "user-1",
		RecordID: "record-1",
		Name:     "Civic",
	})
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if stored.AttachmentURL != testPublicURL("record-1") {
		t.Errorf("AttachmentURL = %s, want %s", stored.AttachmentURL, testPublicURL("record-1"))
	}

	records, err := store.ListByOwner(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByOwner() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Name != "Civic" {
		t.Errorf("Name = %s, want Civic", records[0].Name)
	}
}

func TestMemoryStore_ListByOwner_Isolation(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	ctx := context.Background()

	if _, err := store.Insert(ctx, &carlist.Record{OwnerID: "user-a", RecordID: "record-1"}); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	records, err := store.ListByOwner(ctx, "user-b")
	if err != nil {
		t.Fatalf("ListByOwner() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("user-b sees %d records, want 0", len(records))
	}
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	ctx := context.Background()

	if _, err := store.Insert(ctx, &carlist.Record{OwnerID: "user-1", RecordID: "record-1", Name: "Civic"}); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	err := store.Update(ctx, &carlist.Record{
		OwnerID:  "user-1",
		RecordID: "record-1",
		Name:     "Accord",
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	records, _ := store.ListByOwner(ctx, "user-1")
	if records[0].Name != "Accord" {
		t.Errorf("Name = %s, want Accord", records[0].Name)
	}

	// The attachment URL survives a full-field update
	if records[0].AttachmentURL != testPublicURL("record-1") {
		t.Errorf("AttachmentURL = %s, want %s", records[0].AttachmentURL, testPublicURL("record-1"))
	}
}

func TestMemoryStore_Update_NotFound(t *testing.T) {
	store := NewMemoryStore(testPublicURL)

	err := store.Update(context.Background(), &carlist.Record{OwnerID: "user-1", RecordID: "missing"})
	if !errors.Is(err, carlist.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Update_CrossOwner(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	ctx := context.Background()

	if _, err := store.Insert(ctx, &carlist.Record{OwnerID: "user-a", RecordID: "record-1"}); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	// Same record id under a different owner fails the existence guard
	err := store.Update(ctx, &carlist.Record{OwnerID: "user-b", RecordID: "record-1"})
	if !errors.Is(err, carlist.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_SetAttachmentURL(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	ctx := context.Background()

	if _, err := store.Insert(ctx, &carlist.Record{OwnerID: "user-1", RecordID: "record-1"}); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	if err := store.SetAttachmentURL(ctx, "user-1", "record-1", "https://elsewhere/record-1"); err != nil {
		t.Fatalf("SetAttachmentURL() failed: %v", err)
	}

	records, _ := store.ListByOwner(ctx, "user-1")
	if records[0].AttachmentURL != "https://elsewhere/record-1" {
		t.Errorf("AttachmentURL = %s", records[0].AttachmentURL)
	}

	err := store.SetAttachmentURL(ctx, "user-1", "missing", "https://elsewhere/missing")
	if !errors.Is(err, carlist.ErrNotFound) {
		t.Errorf("SetAttachmentURL() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	ctx := context.Background()

	if _, err := store.Insert(ctx, &carlist.Record{OwnerID: "user-1", RecordID: "record-1"}); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	if err := store.Delete(ctx, "user-1", "record-1"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	records, _ := store.ListByOwner(ctx, "user-1")
	if len(records) != 0 {
		t.Errorf("len(records) = %d after delete, want 0", len(records))
	}

	// Second delete of the same record fails the guard
	err := store.Delete(ctx, "user-1", "record-1")
	if !errors.Is(err, carlist.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Delete_CrossOwner(t *testing.T) {
	store := NewMemoryStore(testPublicURL)
	ctx := context.Background()

	if _, err := store.Insert(ctx, &carlist.Record{OwnerID: "user-a", RecordID: "record-1"}); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	err := store.Delete(ctx, "user-b", "record-1")
	if !errors.Is(err, carlist.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}

	// The record is still there for its real owner
	records, _ := store.ListByOwner(ctx, "user-a")
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
}
