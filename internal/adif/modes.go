// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adif

import (
	"sort"
	"strings"
)

// modeMap is the fixed Cabrillo-to-ADIF mode lookup. Cabrillo's "PH"
// and the sideband variants all land on ADIF SSB; everything else maps
// to itself. Tokens outside the table pass through uppercased and are
// flagged by the generator.
var modeMap = map[string]string{
	"CW":     "CW",
	"PH":     "SSB",
	"SSB":    "SSB",
	"USB":    "SSB",
	"LSB":    "SSB",
	"AM":     "AM",
	"FM":     "FM",
	"RTTY":   "RTTY",
	"PSK31":  "PSK31",
	"PSK63":  "PSK63",
	"MFSK":   "MFSK",
	"JT65":   "JT65",
	"JT9":    "JT9",
	"FT8":    "FT8",
	"FT4":    "FT4",
	"MSK144": "MSK144",
}

// MapMode converts a Cabrillo mode token to its ADIF mode. The token is
// matched case-insensitively. The second return reports whether the
// token was in the supported set; unknown tokens come back uppercased
// so the value is never silently dropped.
func MapMode(token string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	if mapped, ok := modeMap[upper]; ok {
		return mapped, true
	}
	return upper, false
}

// SupportedModes lists the recognized Cabrillo mode tokens in sorted
// order.
func SupportedModes() []string {
	out := make([]string, 0, len(modeMap))
	for k := range modeMap {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
