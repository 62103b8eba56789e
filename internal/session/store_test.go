package session

import (
	"context"
	"testing"

	"github.com/eduforge/backend/internal/app/models"
)

func testIdentity(id string) *models.Identity {
	return &models.Identity{
		ID:    id,
		Email: id + "@example.com",
		Name:  "User " + id,
		Roles: []models.Role{models.RoleStudent},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected empty store to load nil, got %+v", loaded)
	}

	if err := store.Save(ctx, testIdentity("1")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loaded == nil || loaded.ID != "1" {
		t.Errorf("Expected identity 1, got %+v", loaded)
	}
	if len(loaded.Roles) != 1 || loaded.Roles[0] != models.RoleStudent {
		t.Errorf("Expected roles to survive the round trip, got %v", loaded.Roles)
	}
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, testIdentity("1")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := store.Save(ctx, testIdentity("2")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loaded, _ := store.Load(ctx)
	if loaded == nil || loaded.ID != "2" {
		t.Errorf("Expected the later write to win, got %+v", loaded)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Clear(ctx); err != nil {
		t.Errorf("Expected clearing an empty slot to succeed, got %v", err)
	}

	if err := store.Save(ctx, testIdentity("1")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loaded, _ := store.Load(ctx)
	if loaded != nil {
		t.Errorf("Expected nil after clear, got %+v", loaded)
	}
}

func TestDecodeRejectsUnreadableData(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"not json", []byte("{broken")},
		{"missing id", []byte(`{"email":"x@example.com"}`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decode(tc.raw); got != nil {
				t.Errorf("Expected nil for unreadable record, got %+v", got)
			}
		})
	}
}
