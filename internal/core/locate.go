package core

import "strings"

// RowNotFound is returned by LocateRow when no data row matches.
const RowNotFound = -1

// LocateRow scans data rows in order and returns the index of the first row
// whose key cell equals searchKey. Both sides are trimmed of surrounding
// whitespace before comparing; the comparison itself is exact and
// case-sensitive, unlike header matching. First match wins; later
// duplicates are never reached.
func LocateRow(sheet *Sheet, keyCol int, searchKey string) int {
	want := strings.TrimSpace(searchKey)
	for i, row := range sheet.Rows {
		if strings.TrimSpace(row.Cell(keyCol)) == want {
			return i
		}
	}
	return RowNotFound
}
