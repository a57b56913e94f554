package driven

import (
	"context"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// CatalogSource supplies catalog snapshots to the core.
// Implementations own refresh and invalidation; the engine borrows one
// immutable snapshot per call and never mutates it.
type CatalogSource interface {
	// Snapshot returns the current catalog snapshot.
	// The returned value is safe to read until the next call; callers
	// that keep it longer should clone it.
	Snapshot(ctx context.Context) (domain.Snapshot, error)

	// Close releases resources held by the source. Snapshot returns
	// domain.ErrSourceClosed afterwards.
	Close() error
}
