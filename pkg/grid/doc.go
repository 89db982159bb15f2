// Package grid implements the client-side tabular data engine shared by the
// stock, sales and crew views: free-text search, exact-match filters,
// pagination, page-scoped select-all and bulk actions over the selection.
//
// An Engine pairs an immutable Config (columns, search keys, filters and the
// optional bulk action) with a per-instance State owned by the presenting
// component. Derive is pure with respect to its inputs: the same records and
// state always produce the same View.
//
// Engines are not safe for concurrent use. Each table view mounts its own
// engine, drives it from a single goroutine, and unmounts it when done.
package grid
