package seasons

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func TestLookup_AllSubSeasonsPresent(t *testing.T) {
	for _, sub := range AllSubSeasons {
		season, ok := SeasonOf(sub)
		require.True(t, ok, "sub-season %q has no season family", sub)

		entry, found := Lookup(season, sub)
		require.True(t, found, "no reference entry for %q", sub)

		assert.NotEmpty(t, entry.Description, "%q description", sub)
		assert.NotEmpty(t, entry.Colors, "%q color list", sub)

		// Both gendered celebrity templates must exist
		female, ok := entry.Celebrities[Female]
		require.True(t, ok, "%q missing female celebrity", sub)
		assert.NotEmpty(t, female.Name)
		assert.NotEmpty(t, female.Reason)

		male, ok := entry.Celebrities[Male]
		require.True(t, ok, "%q missing male celebrity", sub)
		assert.NotEmpty(t, male.Name)
		assert.NotEmpty(t, male.Reason)
	}
}

func TestLookup_HexFormat(t *testing.T) {
	for _, sub := range AllSubSeasons {
		entry, found := LookupSubSeason(sub)
		require.True(t, found)

		for _, swatch := range entry.Colors {
			assert.Regexp(t, hexPattern, swatch.Hex, "%q swatch %q", sub, swatch.Name)
			assert.NotEmpty(t, swatch.Name, "%q swatch %s has no name", sub, swatch.Hex)
		}
	}
}

func TestLookup_PercentageRange(t *testing.T) {
	zero := decimal.Zero
	hundred := decimal.NewFromInt(100)

	for _, sub := range AllSubSeasons {
		entry, found := LookupSubSeason(sub)
		require.True(t, found)

		assert.True(t, entry.Percentage.GreaterThanOrEqual(zero), "%q percentage below 0", sub)
		assert.True(t, entry.Percentage.LessThanOrEqual(hundred), "%q percentage above 100", sub)
	}
}

func TestLookup_BrightWinter(t *testing.T) {
	entry, found := Lookup(Winter, BrightWinter)
	require.True(t, found)

	var hasEmerald bool
	for _, swatch := range entry.Colors {
		if swatch.Name == "Emerald Green" {
			hasEmerald = true
		}
	}
	assert.True(t, hasEmerald, "Bright Winter should include an emerald swatch")
}

func TestLookup_SeasonFamilyMismatch(t *testing.T) {
	// Light Spring exists, but not under Winter
	_, found := Lookup(Winter, LightSpring)
	assert.False(t, found)
}

func TestLookupSeason(t *testing.T) {
	tests := []struct {
		season Season
		want   SubSeason
	}{
		{Spring, TrueSpring},
		{Summer, TrueSummer},
		{Autumn, TrueAutumn},
		{Winter, TrueWinter},
	}

	for _, tt := range tests {
		entry, found := LookupSeason(tt.season)
		require.True(t, found, "season %q", tt.season)
		assert.Equal(t, tt.want, entry.SubSeason)
	}

	_, found := LookupSeason(Season("monsoon"))
	assert.False(t, found)
}

func TestParseSeason_CasingNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want Season
		ok   bool
	}{
		{"Spring", Spring, true},
		{"spring", Spring, true},
		{"WINTER", Winter, true},
		{" autumn ", Autumn, true},
		{"fall", Autumn, true}, // legacy alias from older call sites
		{"Summer", Summer, true},
		{"", "", false},
		{"monsoon", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSeason(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}

func TestParseSubSeason_CasingNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want SubSeason
		ok   bool
	}{
		{"Bright Winter", BrightWinter, true},
		{"bright winter", BrightWinter, true},
		{"BRIGHT  WINTER", BrightWinter, true},
		{"True Spring", TrueSpring, true},
		{"Deep Winter", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSubSeason(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}

func TestSubSeasonBelongsTo(t *testing.T) {
	assert.True(t, BrightWinter.BelongsTo(Winter))
	assert.False(t, BrightWinter.BelongsTo(Spring))
	assert.False(t, SubSeason("Deep Winter").BelongsTo(Winter))
}

func TestSeasonDisplay(t *testing.T) {
	assert.Equal(t, "Spring", Spring.Display())
	assert.Equal(t, "Winter", Winter.Display())
	assert.Equal(t, "", Season("").Display())
}
