// Package memory provides an in-memory implementation of the catalog
// source port. It backs tests and the demo command, and stands in for
// the remote catalog collaborator during development.
package memory

import (
	"context"
	"sync"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
	"github.com/8ui/restomenu-core-sub000/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source holds one catalog snapshot in memory. Reads hand out deep
// copies, so no caller can reach the stored snapshot through a result.
type Source struct {
	mu     sync.RWMutex
	snap   domain.Snapshot
	closed bool
}

// NewSource creates a source serving the given snapshot.
func NewSource(snap domain.Snapshot) *Source {
	return &Source{snap: snap}
}

// Snapshot returns a copy of the current snapshot.
func (s *Source) Snapshot(_ context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.Snapshot{}, domain.ErrSourceClosed
	}
	return s.snap.Clone(), nil
}

// SetSnapshot replaces the served snapshot. This is the refresh hook the
// owning collaborator calls after a remote write.
func (s *Source) SetSnapshot(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// Close marks the source closed. Further Snapshot calls fail with
// domain.ErrSourceClosed.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
