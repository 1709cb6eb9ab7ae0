package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// countryCodes maps natural-language country names to ISO-3 codes. Names not
// in this table are dropped rather than stored under a non-canonical key.
var countryCodes = map[string]string{
	"usa":            "USA",
	"united states":  "USA",
	"america":        "USA",
	"canada":         "CAN",
	"uk":             "GBR",
	"britain":        "GBR",
	"united kingdom": "GBR",
	"germany":        "DEU",
	"france":         "FRA",
	"japan":          "JPN",
	"australia":      "AUS",
	"brazil":         "BRA",
	"india":          "IND",
	"south africa":   "ZAF",
}

// countryScorePatterns are tried in order; the first pattern that recognizes
// at least one country wins. The last pattern is a loose fallback that only
// matches single-word names.
var countryScorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Za-z\s]+)[:=]\s*(0\.\d+)`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+)\s*-\s*(0\.\d+)`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+)\s+(0\.\d+)`),
	regexp.MustCompile(`(?i)(\w+).*?(0\.[0-9]+)`),
}

// CountryScores scans prose for "Country: 0.NN" style engagement scores and
// returns them keyed by ISO-3 code. When a country is mentioned more than
// once, the last match wins.
func CountryScores(prose string) map[string]float64 {
	scores := make(map[string]float64)

	for _, pattern := range countryScorePatterns {
		for _, m := range pattern.FindAllStringSubmatch(prose, -1) {
			name := strings.ToLower(strings.TrimSpace(m[1]))
			code, ok := countryCodes[name]
			if !ok {
				continue
			}
			score, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			scores[code] = score
		}
		if len(scores) > 0 {
			break
		}
	}

	return scores
}
