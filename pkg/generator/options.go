package generator

const (
	// DefaultMaxAttemptsPerWord bounds how many placement passes a single
	// word gets before it is dropped. Candidate evaluation is deterministic,
	// so passes beyond the first cannot change the outcome; the bound exists
	// for contract compatibility and is collapsed internally to one pass.
	DefaultMaxAttemptsPerWord = 50

	// DefaultMinIntersections is the minimum candidate score required to
	// accept a placement. The score is a weighted heuristic (intersections
	// plus compactness bonuses minus a long-weak penalty), not a raw
	// intersection count.
	DefaultMinIntersections = 1

	// DefaultGridPadding is reserved padding around the compacted grid.
	// Compaction currently ignores it; it is kept in the options contract.
	DefaultGridPadding = 2
)

// Options tunes the placement engine. The zero value is usable: zero fields
// are replaced by the defaults above.
type Options struct {
	// MaxAttemptsPerWord bounds placement passes per word.
	MaxAttemptsPerWord int `json:"maxAttemptsPerWord,omitempty"`

	// MinIntersections is the acceptance bar for a candidate's score.
	MinIntersections int `json:"minIntersections,omitempty"`

	// GridPadding is accepted for contract compatibility and unused.
	GridPadding int `json:"gridPadding,omitempty"`
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() Options {
	return Options{
		MaxAttemptsPerWord: DefaultMaxAttemptsPerWord,
		MinIntersections:   DefaultMinIntersections,
		GridPadding:        DefaultGridPadding,
	}
}

// WithDefaults fills zero fields with defaults without mutating o. Callers
// that key caches by options should normalize through it first, so the zero
// value and an explicit default configuration share an entry.
func (o Options) WithDefaults() Options {
	if o.MaxAttemptsPerWord == 0 {
		o.MaxAttemptsPerWord = DefaultMaxAttemptsPerWord
	}
	if o.MinIntersections == 0 {
		o.MinIntersections = DefaultMinIntersections
	}
	if o.GridPadding == 0 {
		o.GridPadding = DefaultGridPadding
	}
	return o
}
