// Package services contains stateless domain services that coordinate
// behavior across aggregates.
//
// PlacementService reserves an order's weight inside a warehouse hierarchy
// and advances the order's status. CompletionService applies status
// transitions and, on terminal transitions, releases every outstanding
// placement the order holds. Both run inside a single unit of work owned by
// the calling command handler.
package services
