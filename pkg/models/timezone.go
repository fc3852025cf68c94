package models

import (
	"fmt"
	"strings"
)

// Timezone selects which broadcast start time is shown for games that have
// not started. The value doubles as the slot index into the page's list of
// time zone variants.
type Timezone int

const (
	TimezonePacific Timezone = iota
	TimezoneMountain
	TimezoneCentral
	TimezoneEastern
)

// TimezoneSlots is the number of time zone variants the page renders per game
const TimezoneSlots = 4

var timezoneNames = map[Timezone]string{
	TimezonePacific:  "pacific",
	TimezoneMountain: "mountain",
	TimezoneCentral:  "central",
	TimezoneEastern:  "eastern",
}

var timezoneAliases = map[string]Timezone{
	"pacific":  TimezonePacific,
	"pt":       TimezonePacific,
	"pst":      TimezonePacific,
	"mountain": TimezoneMountain,
	"mt":       TimezoneMountain,
	"mst":      TimezoneMountain,
	"central":  TimezoneCentral,
	"ct":       TimezoneCentral,
	"cst":      TimezoneCentral,
	"eastern":  TimezoneEastern,
	"et":       TimezoneEastern,
	"est":      TimezoneEastern,
}

// Slot returns the index of this zone in the page's time zone list
func (tz Timezone) Slot() int {
	return int(tz)
}

// Valid reports whether tz is one of the four supported zones
func (tz Timezone) Valid() bool {
	return tz >= TimezonePacific && tz <= TimezoneEastern
}

func (tz Timezone) String() string {
	if name, ok := timezoneNames[tz]; ok {
		return name
	}
	return fmt.Sprintf("timezone(%d)", int(tz))
}

// ParseTimezone accepts a zone name or abbreviation, case-insensitively
func ParseTimezone(s string) (Timezone, error) {
	if tz, ok := timezoneAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return tz, nil
	}
	return 0, fmt.Errorf("unknown timezone %q (want pacific, mountain, central or eastern)", s)
}

// MarshalText implements encoding.TextMarshaler
func (tz Timezone) MarshalText() ([]byte, error) {
	if !tz.Valid() {
		return nil, fmt.Errorf("invalid timezone %d", int(tz))
	}
	return []byte(tz.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (tz *Timezone) UnmarshalText(text []byte) error {
	parsed, err := ParseTimezone(string(text))
	if err != nil {
		return err
	}
	*tz = parsed
	return nil
}
