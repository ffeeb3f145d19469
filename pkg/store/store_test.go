package store

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/d0sboots/maze-project/pkg/maze"
)

func testRecord(t *testing.T, seed string) *Record {
	t.Helper()
	cfg := maze.Config{Width: 6, Height: 5, WeaveFraction: 0.2, Seed: seed}
	g, err := maze.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return NewRecord(cfg, g)
}

func TestRecordRoundTrip(t *testing.T) {
	cfg := maze.Config{Width: 6, Height: 5, WeaveFraction: 0.2, Seed: "record"}
	g, err := maze.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := NewRecord(cfg, g)
	if r.ID == uuid.Nil {
		t.Error("NewRecord should assign an ID")
	}
	if r.CreatedAt.IsZero() {
		t.Error("NewRecord should set CreatedAt")
	}

	back := r.Grid()
	if back.Width != g.Width || back.Height != g.Height {
		t.Errorf("round trip changed dimensions: %dx%d", back.Width, back.Height)
	}
	for i := range g.Cells {
		if back.Cells[i] != g.Cells[i] {
			t.Fatalf("cell %d changed in round trip", i)
		}
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	r := testRecord(t, "crud")
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Seed != r.Seed || !bytes.Equal(got.Cells, r.Cells) {
		t.Error("Get returned a different record")
	}

	// Mutating the returned copy must not touch the stored record.
	got.Cells[0] = 0xFF
	again, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Cells[0] == 0xFF {
		t.Error("store handed out its internal record")
	}

	// Likewise mutating the record handed to Save.
	r.Cells[1] = 0xFF
	fresh, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fresh.Cells[1] == 0xFF {
		t.Error("store kept a reference to the saved record's cells")
	}

	if err := s.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, r.ID); err != ErrNotFound {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, r.ID); err != ErrNotFound {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	// Stagger CreatedAt so the ordering is unambiguous.
	base := time.Now().UTC()
	var newest uuid.UUID
	for i := 0; i < 4; i++ {
		r := testRecord(t, "list")
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		newest = r.ID
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("List returned %d records, want 4", len(all))
	}
	if all[0].ID != newest {
		t.Error("List should return newest first")
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Error("List not sorted newest first")
		}
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d records", len(limited))
	}
}
