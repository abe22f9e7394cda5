package entity

import "time"

// Source identifies where a confirmed symbol mapping came from.
type Source string

const (
	// SourceRegistry marks an entry returned from a prior registry hit.
	SourceRegistry Source = "registry"
	// SourceReferenceList marks a mapping taken directly from the reference catalog.
	SourceReferenceList Source = "reference_list"
	// SourceHeuristic marks a mapping written by an auto-accepted match.
	SourceHeuristic Source = "heuristic"
	// SourceManual marks a mapping confirmed by a human.
	SourceManual Source = "manual"
)

// RegistryEntry is a confirmed raw-symbol to canonical-ticker mapping.
// At most one live entry exists per raw symbol; re-confirmation overwrites.
type RegistryEntry struct {
	RawSymbol  string
	Ticker     string
	Source     Source
	Confidence float64
	UpdatedAt  time.Time
}
