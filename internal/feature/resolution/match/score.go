package match

import (
	"fmt"
	"sort"
	"strings"

	"symbol_backend/internal/feature/resolution/domain/entity"
)

// Score constants for the rule cascade. The values are behavioral contract:
// they drive ranking and the auto-accept decision and must not be retuned
// without flagging the change.
const (
	// ScoreExactSymbol: the broker symbol equals the canonical base symbol.
	ScoreExactSymbol = 100
	// ScoreExactAcronym: the broker symbol equals the derived acronym.
	ScoreExactAcronym = 96
	// ScoreSymbolPrefix: the canonical base symbol starts with the broker symbol.
	ScoreSymbolPrefix = 92
	// ScoreAcronymPrefix: the derived acronym starts with the broker symbol.
	ScoreAcronymPrefix = 90
	// ScoreNameContains: the normalized name contains the broker symbol.
	ScoreNameContains = 88
)

// autoAcceptThreshold is the minimum score trusted without human
// confirmation. It deliberately excludes acronym-prefix (90) and
// name-substring (88) matches: short broker symbols substring-match
// unrelated names too easily.
const autoAcceptThreshold = ScoreSymbolPrefix

// maxCandidates bounds the ranked list returned by Propose.
const maxCandidates = 5

// Form is the normalized view of a reference entry that the scoring
// cascade runs against. Derive it once per entry with NewForm.
type Form struct {
	NameNorm string
	Base     string
	Acronym  string
}

// NewForm computes the normalized form of a reference entry.
func NewForm(e entity.ReferenceEntry) Form {
	return Form{
		NameNorm: NormalizeName(e.Name),
		Base:     strings.ToUpper(BaseSymbol(e.Ticker)),
		Acronym:  MakeAcronym(e.Name),
	}
}

// ScoreSymbolMatch scores a broker symbol against one normalized reference
// form. The rules form a strict cascade: the first rule that fires wins,
// scores are never summed. Zero means no match.
func ScoreSymbolMatch(brokerSymbol string, f Form) int {
	b := strings.ToUpper(brokerSymbol)
	if b == "" {
		return 0
	}
	switch {
	case f.Base != "" && b == f.Base:
		return ScoreExactSymbol
	case f.Acronym != "" && b == f.Acronym:
		return ScoreExactAcronym
	case f.Base != "" && strings.HasPrefix(f.Base, b):
		return ScoreSymbolPrefix
	case f.Acronym != "" && strings.HasPrefix(f.Acronym, b):
		return ScoreAcronymPrefix
	case f.NameNorm != "" && strings.Contains(f.NameNorm, b):
		return ScoreNameContains
	}
	return 0
}

// IsAutoAccept reports whether a score is trusted without human confirmation.
func IsAutoAccept(score int) bool {
	return score >= autoAcceptThreshold
}

// Propose scores the broker symbol against every reference entry and returns
// at most five candidates, highest score first. Ties keep the catalog order.
// Entries that score zero are excluded entirely.
func Propose(brokerSymbol string, refs []entity.ReferenceEntry) []entity.Candidate {
	candidates := make([]entity.Candidate, 0, len(refs))
	for _, e := range refs {
		score := ScoreSymbolMatch(brokerSymbol, NewForm(e))
		if score == 0 {
			continue
		}
		candidates = append(candidates, entity.Candidate{
			Ticker: e.Ticker,
			Label:  fmt.Sprintf("%s (%s)", e.Name, e.Ticker),
			Score:  score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}
