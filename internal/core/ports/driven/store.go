package driven

import (
	"context"

	"github.com/HemansAI/datasets/internal/core/domain"
)

// ResolutionStore persists resolution records so that a later run can
// tell whether the resolved file set changed.
type ResolutionStore interface {
	// Record stores one resolution run.
	Record(ctx context.Context, res domain.Resolution) error

	// Latest returns the most recent record for a resolution key.
	// Returns domain.ErrNotFound when the key has no records.
	Latest(ctx context.Context, key string) (*domain.Resolution, error)

	// List returns up to limit records for a key, newest first.
	List(ctx context.Context, key string, limit int) ([]domain.Resolution, error)

	// Close releases the underlying storage.
	Close() error
}
