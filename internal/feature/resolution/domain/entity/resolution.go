package entity

// State is the terminal outcome of a single resolution request.
type State string

const (
	// StateRegistryHit means the raw symbol had a live registry mapping.
	StateRegistryHit State = "REGISTRY_HIT"
	// StateAutoMatched means the top candidate scored above the auto-accept cutoff.
	StateAutoMatched State = "AUTO_MATCHED"
	// StateNeedsConfirmation means candidates exist but none is trusted without a human.
	StateNeedsConfirmation State = "NEEDS_CONFIRMATION"
	// StateUnresolved means no reference entry matched at all.
	StateUnresolved State = "UNRESOLVED"
)

// Candidate is a proposed match for a raw symbol. Candidates are recomputed
// per query and never persisted.
type Candidate struct {
	Ticker string
	Label  string
	Score  int
}

// Resolution is the outcome of resolving one raw symbol.
// Ticker and Confidence are set for REGISTRY_HIT and AUTO_MATCHED;
// Candidates are set whenever the matcher ran and found anything.
type Resolution struct {
	State      State
	Ticker     string
	Confidence float64
	Candidates []Candidate
}
