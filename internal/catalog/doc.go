// Package catalog declares the relations the API serves.
//
// Resources are the filterable, paginated measurement tables (air quality,
// water quality). Views are fixed statistical relations returned whole, one
// per (dataset, metric, period) triple. Both are plain data: a single generic
// handler serves every entry, so adding an endpoint means adding a line to
// the declaration in declarations.go.
//
// A [Catalog] is built once at startup and never mutated afterwards, so it is
// safe for concurrent reads without locking.
package catalog
