// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cabrillo

import (
	"strings"

	"github.com/ertig3/cabrillo2adif/pkg/types"
)

// headerSetters maps Cabrillo header keywords to ContestInfo fields.
// Keys not listed here still parse cleanly when passthroughKeys marks
// them as known.
var headerSetters = map[string]func(*types.ContestInfo, string){
	"CONTEST":              func(i *types.ContestInfo, v string) { i.Contest = v },
	"CALLSIGN":             func(i *types.ContestInfo, v string) { i.Callsign = v },
	"CATEGORY-OPERATOR":    func(i *types.ContestInfo, v string) { i.CategoryOperator = v },
	"CATEGORY-TRANSMITTER": func(i *types.ContestInfo, v string) { i.CategoryTransmitter = v },
	"CATEGORY-POWER":       func(i *types.ContestInfo, v string) { i.CategoryPower = v },
	"CATEGORY-BAND":        func(i *types.ContestInfo, v string) { i.CategoryBand = v },
	"CATEGORY-MODE":        func(i *types.ContestInfo, v string) { i.CategoryMode = v },
	"CLAIMED-SCORE":        func(i *types.ContestInfo, v string) { i.ClaimedScore = v },
	"CLUB":                 func(i *types.ContestInfo, v string) { i.Club = v },
	"LOCATION":             func(i *types.ContestInfo, v string) { i.Location = v },
	"NAME":                 func(i *types.ContestInfo, v string) { i.Name = v },
	"EMAIL":                func(i *types.ContestInfo, v string) { i.Email = v },
	"OPERATORS":            func(i *types.ContestInfo, v string) { i.Operators = v },
	"CREATED-BY":           func(i *types.ContestInfo, v string) { i.CreatedBy = v },
}

// passthroughKeys are Cabrillo keywords the converter recognizes but
// does not carry into ADIF. They parse cleanly without a warning.
var passthroughKeys = map[string]bool{
	"START-OF-LOG":         true,
	"END-OF-LOG":           true,
	"CATEGORY-ASSISTED":    true,
	"CATEGORY-STATION":     true,
	"CATEGORY-TIME":        true,
	"CATEGORY-OVERLAY":     true,
	"CERTIFICATE":          true,
	"GRID-LOCATOR":         true,
	"SOAPBOX":              true,
	"OFFTIME":              true,
	"DEBUG":                true,
}

// parseHeader handles a non-QSO line. Well-formed KEY: value lines
// update ContestInfo or pass through; anything else draws a warning.
func (p *parser) parseHeader(lineNum int, line string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		p.warn(lineNum, "unrecognized line (no keyword prefix)", line)
		return
	}

	key := strings.ToUpper(strings.TrimSpace(line[:idx]))
	value := strings.TrimSpace(line[idx+1:])

	if set, ok := headerSetters[key]; ok {
		set(&p.log.Info, value)
		return
	}

	// ADDRESS lines accumulate; ADDRESS-CITY etc. fold in as well.
	if key == "ADDRESS" || strings.HasPrefix(key, "ADDRESS-") {
		if value != "" {
			p.log.Info.Address = append(p.log.Info.Address, value)
		}
		return
	}

	if passthroughKeys[key] {
		return
	}

	p.warnf(lineNum, line, "unknown header keyword %q", key)
}
