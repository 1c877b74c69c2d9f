package storage

import (
	"context"

	"github.com/drstein77/storefront/internal/models"
	"go.uber.org/zap"
)

type Log interface {
	Info(string, ...zap.Field)
}

// Snapshot is the storefront as loaded and rendered at startup.
type Snapshot struct {
	Items      []models.Item
	Partitions models.Partitions
	Page       []byte
	Fallback   bool
}

// MemoryStorage serves a snapshot built once at startup. It is never
// mutated afterwards, so readers need no locking.
type MemoryStorage struct {
	snap   Snapshot
	keeper Keeper
	log    Log
}

// Keeper interface for database operations
type Keeper interface {
	Ping(context.Context) bool
	Close() bool
}

// NewMemoryStorage creates a new MemoryStorage instance. keeper may be nil
// when the catalog does not come from a database.
func NewMemoryStorage(snap Snapshot, keeper Keeper, log Log) *MemoryStorage {
	log.Info("Storefront ready",
		zap.Int("items", len(snap.Items)),
		zap.Bool("fallback", snap.Fallback),
		zap.Int("page_bytes", len(snap.Page)))

	return &MemoryStorage{
		snap:   snap,
		keeper: keeper,
		log:    log,
	}
}

func (s *MemoryStorage) Page() []byte {
	return s.snap.Page
}

func (s *MemoryStorage) Books() models.BooksResponse {
	return models.BooksResponse{
		Partitions: s.snap.Partitions,
		Fallback:   s.snap.Fallback,
	}
}

func (s *MemoryStorage) Catalog() models.Catalog {
	return models.Catalog{Images: s.snap.Items}
}

// Ping reports whether the backing database, if any, is reachable.
func (s *MemoryStorage) Ping(ctx context.Context) bool {
	if s.keeper == nil {
		return true
	}
	return s.keeper.Ping(ctx)
}

func (s *MemoryStorage) Close() {
	if s.keeper != nil {
		s.keeper.Close()
	}
}
