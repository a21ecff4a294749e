// Package bulk declares the per-entity bulk-insert failure policy. The
// source system applies two deliberately different behaviors: doctors and
// patients are inserted all-or-nothing, while medications and bills are
// inserted best-effort with invalid records skipped. Making the policy an
// explicit configuration value keeps the asymmetry visible and testable.
package bulk

// Policy selects how a batch create handles individually invalid records.
type Policy string

const (
	// Atomic rejects the entire batch when any record fails validation;
	// nothing is persisted.
	Atomic Policy = "atomic"
	// BestEffort validates and inserts records one at a time; invalid
	// records are skipped and excluded from the result while valid ones
	// in the same batch are persisted.
	BestEffort Policy = "bestEffort"
)
