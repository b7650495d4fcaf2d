package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists completed metric runs
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
	DeleteRun(ctx context.Context, id string) error
}

// Run is one batch of records with its header. Cells are stored rendered,
// undefined values as "NULL".
type Run struct {
	ID        string
	System    string
	CreatedAt time.Time
	Header    []string
	Rows      [][]string
}

// RunSummary describes a stored run without its rows
type RunSummary struct {
	ID        string
	System    string
	CreatedAt time.Time
	Words     int
}

// Summary returns the listing form of the run.
func (r Run) Summary() RunSummary {
	return RunSummary{ID: r.ID, System: r.System, CreatedAt: r.CreatedAt, Words: len(r.Rows)}
}

// IDs issues lexically sortable run identifiers. Safe for concurrent use.
type IDs struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDs creates an identifier source
func NewIDs() *IDs {
	return &IDs{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new identifier for t.
func (g *IDs) Next(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}
