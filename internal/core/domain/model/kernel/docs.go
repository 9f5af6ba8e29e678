// Package kernel contains shared value objects used across all aggregates:
// identifiers (UUID), the capacity ledger (Capacity) and the constructor
// guard pattern. Everything in this package is immutable and side-effect
// free; aggregates compose these values to enforce their own invariants.
package kernel
