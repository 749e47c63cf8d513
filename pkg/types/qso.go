// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared value types of the converter: QSO
// records, contest header metadata, parse warnings, and per-stage
// configuration structs.
package types

// QSO holds one logged contact parsed from a Cabrillo QSO line. The
// field order mirrors the standard Cabrillo layout:
//
//	freq mode date time mycall rst-s exch-s dxcall rst-r exch-r [txid]
//
// A QSO is immutable once the parser returns it.
type QSO struct {
	// Frequency is the raw frequency token, typically kHz (e.g. "14000").
	Frequency string `json:"frequency" yaml:"frequency"`

	// Mode is the Cabrillo mode token (e.g. "CW", "PH", "RY").
	Mode string `json:"mode" yaml:"mode"`

	// Date is the contact date normalized to YYYY-MM-DD.
	Date string `json:"date" yaml:"date"`

	// Time is the UTC contact time normalized to HHMM.
	Time string `json:"time" yaml:"time"`

	// MyCall is the logging station's callsign, uppercased.
	MyCall string `json:"my_call" yaml:"my_call"`

	// RSTSent is the signal report sent to the worked station.
	RSTSent string `json:"rst_sent" yaml:"rst_sent"`

	// ExchangeSent is the contest exchange sent (serial, zone, ...).
	ExchangeSent string `json:"exchange_sent" yaml:"exchange_sent"`

	// DXCall is the worked station's callsign, uppercased.
	DXCall string `json:"dx_call" yaml:"dx_call"`

	// RSTRcvd is the signal report received.
	RSTRcvd string `json:"rst_rcvd" yaml:"rst_rcvd"`

	// ExchangeRcvd is the contest exchange received.
	ExchangeRcvd string `json:"exchange_rcvd" yaml:"exchange_rcvd"`

	// TransmitterID is the optional trailing transmitter number
	// (multi-transmitter logs).
	TransmitterID string `json:"transmitter_id,omitempty" yaml:"transmitter_id,omitempty"`

	// Excluded marks an X-QSO line: parsed and counted, but left out
	// of the emitted ADIF.
	Excluded bool `json:"excluded,omitempty" yaml:"excluded,omitempty"`

	// Line is the 1-based line number of the QSO in the input file.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// RawLine preserves the original log line for diagnostics.
	RawLine string `json:"raw_line,omitempty" yaml:"raw_line,omitempty"`
}

// ContestInfo holds the Cabrillo header metadata collected from
// keyword-prefixed lines above the QSO block.
type ContestInfo struct {
	Contest             string   `json:"contest,omitempty" yaml:"contest,omitempty"`
	Callsign            string   `json:"callsign,omitempty" yaml:"callsign,omitempty"`
	CategoryOperator    string   `json:"category_operator,omitempty" yaml:"category_operator,omitempty"`
	CategoryTransmitter string   `json:"category_transmitter,omitempty" yaml:"category_transmitter,omitempty"`
	CategoryPower       string   `json:"category_power,omitempty" yaml:"category_power,omitempty"`
	CategoryBand        string   `json:"category_band,omitempty" yaml:"category_band,omitempty"`
	CategoryMode        string   `json:"category_mode,omitempty" yaml:"category_mode,omitempty"`
	ClaimedScore        string   `json:"claimed_score,omitempty" yaml:"claimed_score,omitempty"`
	Club                string   `json:"club,omitempty" yaml:"club,omitempty"`
	Location            string   `json:"location,omitempty" yaml:"location,omitempty"`
	Name                string   `json:"name,omitempty" yaml:"name,omitempty"`
	Email               string   `json:"email,omitempty" yaml:"email,omitempty"`
	Operators           string   `json:"operators,omitempty" yaml:"operators,omitempty"`
	CreatedBy           string   `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	Address             []string `json:"address,omitempty" yaml:"address,omitempty"`
}

// Warning records a recoverable parse issue: the line it came from,
// what went wrong, and the raw text for context. Warnings never abort
// a conversion.
type Warning struct {
	// Line is the 1-based line number in the input file.
	Line int `json:"line" yaml:"line"`

	// Message describes the issue.
	Message string `json:"message" yaml:"message"`

	// Raw is the offending line, trimmed.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
}
