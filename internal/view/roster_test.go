package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorecheck/scorecheck/internal/feed"
)

func TestNewTeamLookup_NormalizesAndSkips(t *testing.T) {
	lookup := NewTeamLookup([]feed.TeamEntry{
		{ID: "boston-celtics", Name: "  Boston Celtics "},
		{ID: "", Name: "No Identifier"},
		{ID: "no-name", Name: ""},
		{ID: "utah-jazz", Name: "Utah Jazz"},
	})

	require.Len(t, lookup, 2)
	assert.Equal(t, "boston-celtics", lookup["boston celtics"])
	assert.Equal(t, "utah-jazz", lookup["utah jazz"])
}

func TestTeamLookup_Resolve(t *testing.T) {
	lookup := NewTeamLookup([]feed.TeamEntry{
		{ID: "la-clippers", Name: "LA Clippers"},
	})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact hit", "LA Clippers", "la-clippers"},
		{"case and whitespace normalized", "  la clippers ", "la-clippers"},
		{"fallback slug", "Oklahoma City Thunder", "oklahoma-city-thunder"},
		{"fallback with punctuation", "St. Louis Blues", "st-louis-blues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lookup.Resolve(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Oklahoma City Thunder", "oklahoma-city-thunder"},
		{"St. Louis Blues", "st-louis-blues"},
		{"  Montréal  Canadiens  ", "montr-al-canadiens"},
		{"76ers!!!", "76ers"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input), "input %q", tt.input)
	}
}

func TestSlugify_DeterministicAndNonEmpty(t *testing.T) {
	names := []string{"Oklahoma City Thunder", "Vegas Golden Knights", "D.C. United"}
	for _, name := range names {
		first := Slugify(name)
		assert.NotEmpty(t, first)
		assert.Equal(t, first, Slugify(name))
	}
}

func TestDisplayName_Aliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Oklahoma City Thunder", "OKC Thunder"},
		{"oklahoma city thunder", "OKC Thunder"},
		{"Oklahoma City", "OKC"},
		{"Boston Celtics", "Boston Celtics"},
		{"  Boston Celtics  ", "Boston Celtics"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisplayName(tt.input), "input %q", tt.input)
	}
}

func TestDisplayName_NeverAffectsRouting(t *testing.T) {
	lookup := NewTeamLookup(nil)
	// The alias shortens the label, but routing still uses the full slug.
	assert.Equal(t, "OKC Thunder", DisplayName("Oklahoma City Thunder"))
	assert.Equal(t, "oklahoma-city-thunder", lookup.Resolve("Oklahoma City Thunder"))
}
