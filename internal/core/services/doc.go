// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The query engine lives here as pure functions over immutable
// snapshots: Organize, ApplyFilters, SortProducts, ScoreProduct,
// ComputeStatistics and ValidateMenu. MenuService composes them
// behind the driving port, borrowing one snapshot per call from
// the catalog source. Nothing in this package mutates its inputs,
// so every function is safe for concurrent callers sharing a
// snapshot.
package services
