// Package seasons exposes the static seasonal color reference table:
// season -> sub-season -> description, rarity percentage, ordered swatches
// and gendered celebrity templates. The table is bundled with the binary,
// loaded once and never mutated; palettes copy values out of it at creation
// time, so later edits to the data file do not change past results.
package seasons

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:embed data.json
var rawData []byte

// Swatch is one reference color of a sub-season
type Swatch struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// Celebrity is a precomputed style icon template
type Celebrity struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Entry is the full reference record for one sub-season
type Entry struct {
	Season      Season
	SubSeason   SubSeason
	Description string
	Percentage  decimal.Decimal // rarity, 0..100
	Colors      []Swatch        // ordered, most representative first
	Celebrities map[Gender]Celebrity
}

// Celebrity returns the template for the given gender.
// Falls back to the female template for unknown genders so callers
// always get a usable entry.
func (e *Entry) Celebrity(g Gender) Celebrity {
	if c, ok := e.Celebrities[g]; ok {
		return c
	}
	return e.Celebrities[Female]
}

type rawEntry struct {
	Description string          `json:"description"`
	Percentage  decimal.Decimal `json:"percentage"`
	Colors      []Swatch        `json:"colors"`
	Celebrities struct {
		Female Celebrity `json:"female"`
		Male   Celebrity `json:"male"`
	} `json:"celebrities"`
}

// table is built once at process start. Read-only afterwards, safe to
// share across requests without locking.
var table = mustLoad()

func mustLoad() map[SubSeason]*Entry {
	var raw map[string]rawEntry
	if err := json.Unmarshal(rawData, &raw); err != nil {
		panic(fmt.Sprintf("seasons: corrupt reference data: %v", err))
	}

	entries := make(map[SubSeason]*Entry, len(raw))
	for key, r := range raw {
		sub, ok := ParseSubSeason(key)
		if !ok {
			panic(fmt.Sprintf("seasons: unknown sub-season %q in reference data", key))
		}
		season, _ := SeasonOf(sub)

		entries[sub] = &Entry{
			Season:      season,
			SubSeason:   sub,
			Description: r.Description,
			Percentage:  r.Percentage,
			Colors:      r.Colors,
			Celebrities: map[Gender]Celebrity{
				Female: r.Celebrities.Female,
				Male:   r.Celebrities.Male,
			},
		}
	}

	// Every sub-season in the taxonomy must have a reference entry,
	// otherwise persistence would fail at runtime for that classification.
	for _, sub := range AllSubSeasons {
		if _, ok := entries[sub]; !ok {
			panic(fmt.Sprintf("seasons: reference data missing entry for %q", sub))
		}
	}

	return entries
}

// Lookup returns the reference entry for (season, subSeason).
// Returns false when the sub-season is unknown or does not belong to
// the claimed season family.
func Lookup(season Season, sub SubSeason) (*Entry, bool) {
	entry, ok := table[sub]
	if !ok || entry.Season != season {
		return nil, false
	}
	return entry, true
}

// LookupSubSeason returns the reference entry for a sub-season alone
func LookupSubSeason(sub SubSeason) (*Entry, bool) {
	entry, ok := table[sub]
	return entry, ok
}

// LookupSeason returns the "True" entry of a season family.
// Kept for call sites that only know the season.
func LookupSeason(season Season) (*Entry, bool) {
	var sub SubSeason
	switch season {
	case Spring:
		sub = TrueSpring
	case Summer:
		sub = TrueSummer
	case Autumn:
		sub = TrueAutumn
	case Winter:
		sub = TrueWinter
	default:
		return nil, false
	}
	return LookupSubSeason(sub)
}
