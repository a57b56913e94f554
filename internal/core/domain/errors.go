package domain

import "errors"

// Sentinel errors shared across the core. Services and adapters wrap
// these with context using fmt.Errorf and %w.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed request parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogUnavailable indicates no snapshot could be loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnknownSortStrategy indicates an unrecognised sort strategy name.
	ErrUnknownSortStrategy = errors.New("unknown sort strategy")

	// ErrUnknownChannel indicates an unrecognised fulfillment channel.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrSourceClosed indicates the catalog source was closed.
	ErrSourceClosed = errors.New("catalog source closed")
)
