// Package match implements the normalization and scoring rules that map a
// broker-provided symbol string onto reference-catalog tickers. All functions
// are pure and total over their string inputs.
package match

import "strings"

// stopWords are corporate-suffix words stripped during name normalization.
// The set is tuned empirically; changing it changes match results.
var stopWords = map[string]struct{}{
	"LIMITED":      {},
	"LTD":          {},
	"INC":          {},
	"CO":           {},
	"CORP":         {},
	"TECH":         {},
	"TECHNOLOGIES": {},
	"INDUSTRIES":   {},
	"IND":          {},
	"PVT":          {},
	"PRIVATE":      {},
	"PLC":          {},
}

const (
	// acronymWordLen is the maximum consonant count kept per word.
	acronymWordLen = 3
	// acronymMaxLen caps the length of the whole acronym.
	acronymMaxLen = 8
)

// NormalizeName canonicalizes a company name for comparison: uppercase,
// every character outside [A-Z0-9 ] replaced by a space, corporate-suffix
// stop words removed, whitespace collapsed and trimmed.
// NormalizeName is idempotent.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopWords[w]; !stop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// MakeAcronym derives a short consonant acronym from a company name:
// each word of the normalized name contributes its first three non-vowel
// characters, and the concatenation is capped at eight characters.
// An empty input yields an empty acronym.
func MakeAcronym(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(NormalizeName(name)) {
		kept := 0
		for i := 0; i < len(w) && kept < acronymWordLen; i++ {
			switch w[i] {
			case 'A', 'E', 'I', 'O', 'U':
				// vowels are dropped
			default:
				b.WriteByte(w[i])
				kept++
			}
		}
	}
	acronym := b.String()
	if len(acronym) > acronymMaxLen {
		acronym = acronym[:acronymMaxLen]
	}
	return acronym
}

// BaseSymbol strips the exchange suffix from a canonical ticker,
// e.g. "TCS.NS" becomes "TCS". Tickers without a dot pass through unchanged.
func BaseSymbol(ticker string) string {
	if i := strings.IndexByte(ticker, '.'); i >= 0 {
		return ticker[:i]
	}
	return ticker
}
