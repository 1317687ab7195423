package consts

// Canonical column names the pipeline operates on internally, regardless of
// how a given year's files spell them.
const (
	ColProvince   = "Province_State"
	ColCountry    = "Country_Region"
	ColLastUpdate = "Last_Update"
	ColLat        = "Lat"
	ColLong       = "Long_"
	ColConfirmed  = "Confirmed"
	ColDeaths     = "Deaths"
	ColRecovered  = "Recovered"
	ColActive     = "Active"
	ColFatality   = "Case_Fatality_Ratio"
)

// CanonicalColumns - the full canonical set, in output order. Every
// normalized table carries exactly these columns.
var CanonicalColumns = []string{
	ColProvince,
	ColCountry,
	ColLastUpdate,
	ColLat,
	ColLong,
	ColConfirmed,
	ColDeaths,
	ColRecovered,
	ColActive,
	ColFatality,
}

// ColumnAlias - one historical raw spelling and the canonical column it
// maps onto.
type ColumnAlias struct {
	Raw       string
	Canonical string
}

// ColumnAliases - the versioned rename table, applied in declared order.
// When two raw spellings of the same canonical column show up in one file,
// the later entry wins. Canonical spellings map onto themselves so that
// normalization is idempotent.
var ColumnAliases = []ColumnAlias{
	{"Province_State", ColProvince},
	{"Province/State", ColProvince},
	{"Country_Region", ColCountry},
	{"Country/Region", ColCountry},
	{"Last_Update", ColLastUpdate},
	{"Last Update", ColLastUpdate},
	{"Lat", ColLat},
	{"Latitude", ColLat},
	{"Long_", ColLong},
	{"Long", ColLong},
	{"Longitude", ColLong},
	{"Confirmed", ColConfirmed},
	{"Deaths", ColDeaths},
	{"Recovered", ColRecovered},
	{"Active", ColActive},
	{"Case_Fatality_Ratio", ColFatality},
	{"Case-Fatality_Ratio", ColFatality},
}

// NumericColumns - columns the sanitizer coerces to non-negative counts.
var NumericColumns = []string{ColConfirmed, ColDeaths, ColRecovered, ColActive}
