// Package lookup holds the reference option lists uploaded to the
// lookup_tables collection.
//
// The table is fixed at compile time and never mutated. Every accessor
// returns copies, so callers may modify what they receive without affecting
// later calls.
package lookup
