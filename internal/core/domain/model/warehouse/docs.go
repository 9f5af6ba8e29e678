// Package warehouse contains the warehouse aggregate: the three-level
// containment hierarchy (Warehouse > Section > Pile), each level carrying
// its own capacity ledger, plus the Placement entity that records which
// pile an order's weight occupies.
//
// The Warehouse root is the only mutator of load state. PlaceLoad and
// ReleaseLoad apply a weight delta to all three levels or to none of them;
// the sibling-sum rule (children's total capacity never exceeds the
// parent's) is enforced when sections and piles are added.
package warehouse
