// Package domain defines the core business entities for the restomenu
// catalog engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product: A sellable item with price, tags, and category bindings
//   - Category: A menu section with a natural ordering priority
//   - Tag: Display metadata referenced from product tag bindings
//   - Snapshot: The immutable (categories, products, tags) input triple
//   - Filter: A request-scoped value object describing query constraints
//   - OrganizedMenu / MenuView: Derived category-to-products views
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
