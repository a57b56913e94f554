// Package file provides a catalog source backed by a JSON snapshot
// document on disk. The source watches the document and reloads it when
// it changes, so a running process picks up catalog edits without a
// restart.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
	"github.com/8ui/restomenu-core-sub000/internal/core/ports/driven"
	"github.com/8ui/restomenu-core-sub000/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source serves catalog snapshots loaded from a JSON document.
type Source struct {
	mu      sync.RWMutex
	path    string
	snap    domain.Snapshot
	watcher *fsnotify.Watcher
	closed  bool
}

// NewSource loads the snapshot document at path and starts watching it.
// The initial load must succeed; later reload failures keep the previous
// snapshot in place and log a warning.
func NewSource(path string) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	s := &Source{path: abs}
	if err := s.Reload(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start catalog watcher: %w", err)
	}
	// Watch the directory, not the file: editors and exporters replace
	// the document by rename, which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch catalog directory: %w", err)
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

// Path returns the absolute path of the snapshot document.
func (s *Source) Path() string {
	return s.path
}

// Snapshot returns a copy of the most recently loaded snapshot.
func (s *Source) Snapshot(_ context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.Snapshot{}, domain.ErrSourceClosed
	}
	return s.snap.Clone(), nil
}

// Reload reads the snapshot document from disk and swaps it in. On
// failure the previously loaded snapshot stays in place.
func (s *Source) Reload() error {
	snap, err := loadSnapshot(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	logger.Debug("Loaded catalog snapshot from %s: %d categories, %d products, %d tags",
		s.path, len(snap.Categories), len(snap.Products), len(snap.Tags))
	return nil
}

// Close stops the watcher and marks the source closed. Further Snapshot
// calls fail with domain.ErrSourceClosed.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Source) watch() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleFsEvent(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Catalog watcher error: %v", err)
		}
	}
}

// handleFsEvent reloads the snapshot when the watched document changes.
// A failed reload keeps the previous snapshot so a half-written document
// never takes the menu down.
func (s *Source) handleFsEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != s.path {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}
	if err := s.Reload(); err != nil {
		logger.Warn("Catalog reload failed, keeping previous snapshot: %v", err)
	}
}

func loadSnapshot(path string) (domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read catalog snapshot: %w", err)
	}

	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("parse catalog snapshot: %w", err)
	}
	return doc.toDomain()
}
