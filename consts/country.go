package consts

// AllCountries - the sentinel country filter meaning "every country".
const AllCountries = "Todos"

var CountryStandard map[string]string

func init() {
	CountryStandard = make(map[string]string)

	CountryStandard["US"] = "United States"
	CountryStandard["USA"] = "United States"
	CountryStandard["UK"] = "United Kingdom"
	CountryStandard["Korea, South"] = "South Korea"
	CountryStandard["Korea, North"] = "North Korea"
	CountryStandard["Taiwan*"] = "Taiwan"
	CountryStandard["Burma"] = "Myanmar"
	CountryStandard["Mainland China"] = "China"
	CountryStandard["Congo (Kinshasa)"] = "DR Congo"
	CountryStandard["Congo (Brazzaville)"] = "Republic of the Congo"
	CountryStandard["Cote d'Ivoire"] = "Ivory Coast"
	CountryStandard["Cabo Verde"] = "Cape Verde"
	CountryStandard["Czechia"] = "Czech Republic"
	CountryStandard["Holy See"] = "Vatican City"
	CountryStandard["West Bank and Gaza"] = "Palestine"
	CountryStandard["Timor-Leste"] = "East Timor"
	CountryStandard["Eswatini"] = "Swaziland"
	CountryStandard["North Macedonia"] = "Macedonia"
}

// StandardCountry - resolve a source country name to the classifier's
// vocabulary. Names with no known aliasing problem pass through untouched.
func StandardCountry(name string) string {
	if std, ok := CountryStandard[name]; ok {
		return std
	}
	return name
}
