// Package store persists generated mazes so the server can hand out stable
// IDs for sharing. A record holds the generation inputs plus the carved
// cells, so a stored maze can be re-rendered in any format without
// regenerating it.
//
// Two backends exist: an in-memory store for tests and single-process use,
// and a MongoDB store for real deployments.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/d0sboots/maze-project/pkg/maze"
)

// ErrNotFound is returned when no record exists for the requested ID.
var ErrNotFound = errors.New("maze not found")

// Record is a stored maze. Cells holds one byte per cell in row-major
// order, the same encoding the generator produces.
type Record struct {
	ID            uuid.UUID `bson:"_id" json:"id"`
	Width         int       `bson:"width" json:"width"`
	Height        int       `bson:"height" json:"height"`
	WeaveFraction float64   `bson:"weaveFraction" json:"weave_fraction"`
	Seed          string    `bson:"seed" json:"seed"`
	Cells         []byte    `bson:"cells" json:"cells"`
	CreatedAt     time.Time `bson:"createdAt" json:"created_at"`
}

// NewRecord wraps a generated grid and its inputs into a record with a
// fresh ID.
func NewRecord(cfg maze.Config, g *maze.Grid) *Record {
	cells := make([]byte, len(g.Cells))
	for i, c := range g.Cells {
		cells[i] = byte(c)
	}
	return &Record{
		ID:            uuid.New(),
		Width:         g.Width,
		Height:        g.Height,
		WeaveFraction: cfg.WeaveFraction,
		Seed:          cfg.Seed,
		Cells:         cells,
		CreatedAt:     time.Now().UTC(),
	}
}

// Grid reconstructs the stored maze.
func (r *Record) Grid() *maze.Grid {
	cells := make([]maze.Cell, len(r.Cells))
	for i, b := range r.Cells {
		cells[i] = maze.Cell(b)
	}
	return &maze.Grid{Width: r.Width, Height: r.Height, Cells: cells}
}

// Store is the common interface of all persistence backends.
type Store interface {
	// Save inserts or replaces a record by ID.
	Save(ctx context.Context, r *Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Record, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Delete removes a record. Deleting a missing ID returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
