package seasons

import "strings"

// Season is one of the four seasonal color families.
// Stored lowercase in Postgres (season enum), displayed capitalized.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// SubSeason is one of the 12 named sub-season values.
// Stored and displayed exactly as written here (sub_season enum).
type SubSeason string

const (
	LightSpring  SubSeason = "Light Spring"
	TrueSpring   SubSeason = "True Spring"
	BrightSpring SubSeason = "Bright Spring"
	LightSummer  SubSeason = "Light Summer"
	TrueSummer   SubSeason = "True Summer"
	SoftSummer   SubSeason = "Soft Summer"
	SoftAutumn   SubSeason = "Soft Autumn"
	TrueAutumn   SubSeason = "True Autumn"
	DarkAutumn   SubSeason = "Dark Autumn"
	BrightWinter SubSeason = "Bright Winter"
	TrueWinter   SubSeason = "True Winter"
	DarkWinter   SubSeason = "Dark Winter"
)

// Gender selects which celebrity template applies
type Gender string

const (
	Female Gender = "female"
	Male   Gender = "male"
)

// AllSeasons in display order
var AllSeasons = []Season{Spring, Summer, Autumn, Winter}

// AllSubSeasons in taxonomy order
var AllSubSeasons = []SubSeason{
	LightSpring, TrueSpring, BrightSpring,
	LightSummer, TrueSummer, SoftSummer,
	SoftAutumn, TrueAutumn, DarkAutumn,
	BrightWinter, TrueWinter, DarkWinter,
}

// subSeasonFamily maps every sub-season to its season family
var subSeasonFamily = map[SubSeason]Season{
	LightSpring: Spring, TrueSpring: Spring, BrightSpring: Spring,
	LightSummer: Summer, TrueSummer: Summer, SoftSummer: Summer,
	SoftAutumn: Autumn, TrueAutumn: Autumn, DarkAutumn: Autumn,
	BrightWinter: Winter, TrueWinter: Winter, DarkWinter: Winter,
}

// ParseSeason normalizes a raw season string into the closed enum.
// Casing has been a recurring bug source ("Spring" vs "spring"), so
// every external or stored string must pass through here before use.
func ParseSeason(raw string) (Season, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "autumn", "fall":
		return Autumn, true
	case "winter":
		return Winter, true
	default:
		return "", false
	}
}

// ParseSubSeason normalizes a raw sub-season string ("light spring",
// "Light Spring", "LIGHT SPRING" all resolve to LightSpring).
func ParseSubSeason(raw string) (SubSeason, bool) {
	normalized := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	for _, s := range AllSubSeasons {
		if strings.ToLower(string(s)) == normalized {
			return s, true
		}
	}
	return "", false
}

// ParseGender normalizes a raw gender string
func ParseGender(raw string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "female":
		return Female, true
	case "male":
		return Male, true
	default:
		return "", false
	}
}

// SeasonOf returns the season family a sub-season belongs to
func SeasonOf(sub SubSeason) (Season, bool) {
	s, ok := subSeasonFamily[sub]
	return s, ok
}

// BelongsTo reports whether the sub-season is in the given season family
func (s SubSeason) BelongsTo(season Season) bool {
	family, ok := subSeasonFamily[s]
	return ok && family == season
}

// Display returns the capitalized form used in prose and emails
// ("spring" -> "Spring")
func (s Season) Display() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[0])) + string(s[1:])
}

func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}

func (s SubSeason) Valid() bool {
	_, ok := subSeasonFamily[s]
	return ok
}

func (g Gender) Valid() bool {
	return g == Female || g == Male
}
