// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CatalogSource: Supplies catalog snapshots (categories, products, tags)
//   - ConfigStore: Application configuration
//
// The query engine itself never performs I/O. A snapshot is borrowed per
// call; the source owns refresh and invalidation.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
