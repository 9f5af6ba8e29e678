// Package order contains the order aggregate: the order entity itself, its
// line items, and the Status state machine that governs every lifecycle
// transition from PENDING through pickup, warehousing, inter-city transfer
// and delivery to the terminal states.
//
// The aggregate never touches capacity; it only answers whether a transition
// is legal and derives the physical weight and volume that the placement
// service checks against warehouse capacity.
package order
