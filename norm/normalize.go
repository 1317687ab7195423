package norm

import (
	"strings"

	"github.com/epimonitor/epimonitor-api/consts"
	"github.com/epimonitor/epimonitor-api/schema"
)

// zeroCell - the synthesized default for a structurally absent column.
// Numeric columns get a literal zero, everything else the empty string.
func zeroCell(canonical string) string {
	for _, c := range consts.NumericColumns {
		if c == canonical {
			return "0"
		}
	}
	return ""
}

// Normalize restricts a raw table to the canonical column set. Historical
// spellings are renamed through consts.ColumnAliases in declared order, so
// when more than one raw spelling of the same canonical column is present
// the later alias wins. Structurally absent columns are synthesized as
// all-zero rather than treated as an error. Normalizing an already
// canonical table is a no-op.
func Normalize(t schema.RawTable) schema.RawTable {
	rawIndex := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		// early-format files open with a UTF-8 BOM glued to the first
		// header cell
		c = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		rawIndex[c] = i
	}

	source := make(map[string]int, len(consts.CanonicalColumns))
	for _, a := range consts.ColumnAliases {
		if i, ok := rawIndex[a.Raw]; ok {
			source[a.Canonical] = i
		}
	}

	out := schema.RawTable{
		Columns: append([]string(nil), consts.CanonicalColumns...),
		Rows:    make([][]string, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		cells := make([]string, len(out.Columns))
		for j, canonical := range out.Columns {
			i, ok := source[canonical]
			if !ok || i >= len(row) {
				cells[j] = zeroCell(canonical)
				continue
			}
			cells[j] = row[i]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}
