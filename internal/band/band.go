// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package band maps frequencies to ADIF band names. The table covers
// the amateur allocations from 2200M (136 kHz) through 3CM (10 GHz).
package band

import (
	"strconv"
	"strings"
)

// Band is an ADIF band name such as "20M" or "70CM".
type Band string

// allocation is one contiguous frequency range belonging to a band.
// Bounds are inclusive, in Hz.
type allocation struct {
	low  int64
	high int64
	band Band
}

// allocations lists the supported bands in ascending frequency order.
var allocations = []allocation{
	{135_700, 137_800, "2200M"},
	{472_000, 479_000, "630M"},
	{1_800_000, 2_000_000, "160M"},
	{3_500_000, 4_000_000, "80M"},
	{5_330_500, 5_406_500, "60M"},
	{7_000_000, 7_300_000, "40M"},
	{10_100_000, 10_150_000, "30M"},
	{14_000_000, 14_350_000, "20M"},
	{18_068_000, 18_168_000, "17M"},
	{21_000_000, 21_450_000, "15M"},
	{24_890_000, 24_990_000, "12M"},
	{28_000_000, 29_700_000, "10M"},
	{50_000_000, 54_000_000, "6M"},
	{70_000_000, 70_500_000, "4M"},
	{144_000_000, 148_000_000, "2M"},
	{222_000_000, 225_000_000, "1.25M"},
	{430_000_000, 440_000_000, "70CM"},
	{902_000_000, 928_000_000, "33CM"},
	{1_240_000_000, 1_300_000_000, "23CM"},
	{2_300_000_000, 2_450_000_000, "13CM"},
	{3_300_000_000, 3_500_000_000, "9CM"},
	{5_650_000_000, 5_925_000_000, "6CM"},
	{10_000_000_000, 10_500_000_000, "3CM"},
}

// FromFrequency converts a raw frequency token to its band. The token
// unit is inferred from magnitude: values below 1000 are MHz, below one
// million kHz, otherwise Hz. Cabrillo logs normally carry kHz. The
// second return is false when the token is not numeric or falls outside
// every allocation.
func FromFrequency(token string) (Band, bool) {
	hz, ok := normalizeHz(token)
	if !ok {
		return "", false
	}
	for _, a := range allocations {
		if hz >= a.low && hz <= a.high {
			return a.band, true
		}
	}
	return "", false
}

// MHz parses a frequency token and returns its value in MHz using the
// same magnitude heuristic as FromFrequency. Used for the ADIF FREQ tag.
func MHz(token string) (float64, bool) {
	hz, ok := normalizeHz(token)
	if !ok {
		return 0, false
	}
	return float64(hz) / 1e6, true
}

// normalizeHz strips non-numeric characters and scales the value to Hz.
func normalizeHz(token string) (int64, bool) {
	var b strings.Builder
	for _, r := range token {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || f <= 0 {
		return 0, false
	}

	switch {
	case f < 1_000: // MHz
		return int64(f * 1e6), true
	case f < 1_000_000: // kHz
		return int64(f * 1e3), true
	default: // Hz
		return int64(f), true
	}
}

// All returns the supported band names, deduplicated, in ascending
// frequency order.
func All() []Band {
	seen := make(map[Band]bool, len(allocations))
	bands := make([]Band, 0, len(allocations))
	for _, a := range allocations {
		if !seen[a.band] {
			seen[a.band] = true
			bands = append(bands, a.band)
		}
	}
	return bands
}
