// Package multivalue splits multi-select survey answers into label sets.
package multivalue

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"payment-insights-go/internal/types"
)

// Separator between the options of a multi-select answer.
const Separator = ";"

// Parser canonicalizes the pieces of a multi-select cell.
//
// A piece maps to the first Known label it contains. Pieces equal to Sentinel
// are dropped and anything else becomes Fallback. With no Known labels every
// non-empty piece is kept as its own label.
type Parser struct {
	Known    []string
	Sentinel string
	Fallback string
}

var (
	// Platforms parses the "platforms used" answer.
	Platforms = Parser{
		Known:    types.Platforms(),
		Sentinel: "Other digital wallet",
		Fallback: "Other",
	}

	// Freeform keeps every trimmed option as-is.
	Freeform = Parser{}
)

// Parse returns the deduplicated labels of raw in first-seen order. Blank or
// missing input yields an empty (nil) set.
func (p Parser) Parse(raw string) []string {
	if IsBlank(raw) {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	for _, piece := range strings.Split(raw, Separator) {
		label, ok := p.canonical(Clean(piece))
		if !ok {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

func (p Parser) canonical(piece string) (string, bool) {
	if piece == "" {
		return "", false
	}
	if len(p.Known) == 0 {
		return piece, true
	}
	for _, k := range p.Known {
		if strings.Contains(piece, k) {
			return k, true
		}
	}
	if p.Sentinel != "" && piece == p.Sentinel {
		return "", false
	}
	if p.Fallback == "" {
		return piece, true
	}
	return p.Fallback, true
}

// Clean trims a cell and applies NFKC so full-width and compatibility
// characters compare equal to their plain forms.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// IsBlank reports whether a cell carries no answer. Spreadsheet exports write
// missing answers as "nan".
func IsBlank(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, "nan")
}
