package consts

// OtherContinent - fallback bucket for countries the classifier cannot
// resolve, and for the whole dataset when the classifier is unreachable.
const OtherContinent = "Other"

// Continents - the fixed continent vocabulary, without the fallback bucket.
var Continents = []string{
	"Africa",
	"Antarctica",
	"Asia",
	"Australia/Oceania",
	"Europe",
	"North America",
	"South America",
}

// KnownContinent reports whether a classifier label belongs to the fixed
// vocabulary.
func KnownContinent(label string) bool {
	for _, c := range Continents {
		if c == label {
			return true
		}
	}
	return false
}
