package core

import (
	"math"
	"strconv"
	"strings"
)

// DefaultIncrement is applied when the caller supplies no usable amount.
const DefaultIncrement = 1

// ParseQuantity coerces a stock cell to a number. Absent, blank, or
// unparsable cells read as 0. This permissive default-to-zero rule is
// deliberate: a sheet with "N/A" in the stock column gets incremented from
// zero rather than rejected.
func ParseQuantity(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatQuantity renders a stock value without trailing zeros.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ApplyIncrement returns a new sheet with the quantity cell of one row
// increased by amount, plus the previous and new values. A non-finite
// amount falls back to DefaultIncrement. The computation does not clamp:
// negative amounts decrease stock (any floor is the caller's policy).
//
// The update is copy-on-write at the row level: every data row other than
// the target keeps its identity in the new sheet, and the header is shared.
func ApplyIncrement(sheet *Sheet, rowIdx, qtyCol int, amount float64) (*Sheet, float64, float64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = DefaultIncrement
	}

	prev := ParseQuantity(sheet.Rows[rowIdx].Cell(qtyCol))
	next := prev + amount

	updated := make(Row, len(sheet.Rows[rowIdx]))
	copy(updated, sheet.Rows[rowIdx])
	if qtyCol >= len(updated) {
		// Short row: extend so the quantity cell has a position to land in.
		grown := make(Row, qtyCol+1)
		copy(grown, updated)
		updated = grown
	}
	updated[qtyCol] = FormatQuantity(next)

	rows := make([]Row, len(sheet.Rows))
	copy(rows, sheet.Rows)
	rows[rowIdx] = updated

	return &Sheet{Header: sheet.Header, Rows: rows}, prev, next
}
