package core

import "strings"

// Candidate header labels for the two logical fields, in priority order.
// Matching is case- and whitespace-insensitive, see NormalizeLabel.
var (
	KeyCandidates      = []string{"Product Code/SKU", "SKU", "Product Code"}
	QuantityCandidates = []string{"Current Stock Level", "Stock Level", "Inventory"}
)

// NormalizeLabel prepares a header label or candidate name for comparison:
// surrounding whitespace is trimmed, the label is lower-cased, and any run
// of internal whitespace collapses to a single space.
func NormalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// MakeHeaderIndex maps each normalized header label to its column position.
// When the header contains duplicate labels the later occurrence wins.
func MakeHeaderIndex(header Row) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[NormalizeLabel(h)] = i
	}
	return idx
}

// ResolveColumn returns the column index of the first candidate present in
// the header index. Priority follows the candidate list, not header order.
// Returns ColumnUnresolved when no candidate matches.
func ResolveColumn(idx HeaderIndex, candidates []string) int {
	for _, c := range candidates {
		if col, ok := idx[NormalizeLabel(c)]; ok {
			return col
		}
	}
	return ColumnUnresolved
}

// ResolveFields maps both logical fields against a header row.
// Must be re-run for every newly loaded sheet.
func ResolveFields(header Row) Resolution {
	idx := MakeHeaderIndex(header)
	return Resolution{
		Key:      ResolveColumn(idx, KeyCandidates),
		Quantity: ResolveColumn(idx, QuantityCandidates),
	}
}
