package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epimonitor/epimonitor-api/consts"
	"github.com/epimonitor/epimonitor-api/schema"
)

func TestNormalizeRenamesHistoricalSpellings(t *testing.T) {
	raw := schema.RawTable{
		Columns: []string{"Province/State", "Country/Region", "Last Update", "Confirmed", "Deaths", "Recovered"},
		Rows: [][]string{
			{"Hubei", "China", "2020-02-01 12:00:00", "11177", "350", "295"},
		},
	}

	got := Normalize(raw)

	assert.Equal(t, consts.CanonicalColumns, got.Columns)
	assert.Equal(t, "China", got.Cell(got.Rows[0], consts.ColCountry))
	assert.Equal(t, "Hubei", got.Cell(got.Rows[0], consts.ColProvince))
	assert.Equal(t, "11177", got.Cell(got.Rows[0], consts.ColConfirmed))
}

func TestNormalizeSynthesizesAbsentColumns(t *testing.T) {
	raw := schema.RawTable{
		Columns: []string{"Country/Region", "Confirmed"},
		Rows: [][]string{
			{"Italy", "3"},
		},
	}

	got := Normalize(raw)

	assert.Equal(t, "0", got.Cell(got.Rows[0], consts.ColActive))
	assert.Equal(t, "0", got.Cell(got.Rows[0], consts.ColDeaths))
	assert.Equal(t, "", got.Cell(got.Rows[0], consts.ColProvince))
	assert.Equal(t, "", got.Cell(got.Rows[0], consts.ColLastUpdate))
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := schema.RawTable{
		Columns: []string{"Country/Region", "Confirmed", "Deaths"},
		Rows: [][]string{
			{"France", "100", "2"},
			{"Spain", "50", "1"},
		},
	}

	once := Normalize(raw)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeTieBreakLaterAliasWins(t *testing.T) {
	// both an old and a new spelling present: the later entry of the
	// rename table decides which source column feeds the canonical one
	raw := schema.RawTable{
		Columns: []string{"Lat", "Latitude", "Country/Region", "Confirmed"},
		Rows: [][]string{
			{"1.5", "2.5", "Iceland", "7"},
		},
	}

	got := Normalize(raw)

	assert.Equal(t, "2.5", got.Cell(got.Rows[0], consts.ColLat))
}

func TestNormalizeTrimsHeaderWhitespace(t *testing.T) {
	raw := schema.RawTable{
		Columns: []string{" Country_Region ", "Confirmed "},
		Rows: [][]string{
			{"Peru", "12"},
		},
	}

	got := Normalize(raw)

	assert.Equal(t, "Peru", got.Cell(got.Rows[0], consts.ColCountry))
	assert.Equal(t, "12", got.Cell(got.Rows[0], consts.ColConfirmed))
}

func TestNormalizeTrimsHeaderByteOrderMark(t *testing.T) {
	raw := schema.RawTable{
		Columns: []string{"\ufeffProvince/State", "Country/Region", "Confirmed"},
		Rows: [][]string{
			{"Hubei", "China", "11177"},
		},
	}

	got := Normalize(raw)

	assert.Equal(t, "Hubei", got.Cell(got.Rows[0], consts.ColProvince))
	assert.Equal(t, "China", got.Cell(got.Rows[0], consts.ColCountry))
}

func TestNormalizeRaggedRow(t *testing.T) {
	raw := schema.RawTable{
		Columns: []string{"Country/Region", "Confirmed", "Deaths"},
		Rows: [][]string{
			{"Chile", "9"},
		},
	}

	got := Normalize(raw)

	assert.Equal(t, "0", got.Cell(got.Rows[0], consts.ColDeaths))
}
