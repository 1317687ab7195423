package schema

// RawTable - a parsed delimited report before schema normalization. Rows
// are positional against Columns; historical files drift in both column
// naming and column presence.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of a column, -1 when absent.
func (t RawTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, column name), empty string when the row
// is ragged or the column is absent.
func (t RawTable) Cell(row []string, name string) string {
	i := t.ColumnIndex(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
