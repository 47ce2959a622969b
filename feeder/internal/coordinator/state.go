// Package coordinator implements C7: the single-owner pipeline that
// turns a feeder-bucket change event into a catalogued, embedded, and
// (best-effort) annotated gallery entry.
package coordinator

// State is a point in an upload record's lifecycle (spec §4.7).
// Transitions only move forward; ORPHANED is reachable from any state
// before CATALOGUED.
type State string

const (
	StateIntent     State = "intent"     // UserUpload row exists
	StateQueued     State = "queued"     // feeder change event received
	StateDecoded    State = "decoded"    // thumbnail + embedding computed
	StateCatalogued State = "catalogued" // gallery+embedding rows exist, move done, gallery updated
	StateAnnotated  State = "annotated"  // descriptors written
	StateOrphaned   State = "orphaned"   // any step before CATALOGUED failed
)

// Terminal reports whether state ends the pipeline for a record: no
// further transitions are expected.
func (s State) Terminal() bool {
	switch s {
	case StateAnnotated, StateCatalogued, StateOrphaned:
		return true
	default:
		return false
	}
}
