package models

// MappedRow is one ActivityRecord re-expressed under the destination
// column set. Cells are ordered to match the mapping schema; blank
// cells are empty strings.
type MappedRow struct {
	// Cells holds one value per destination column, in schema order.
	Cells []string
}
