package search

import (
	"math"
	"testing"

	"github.com/footydle/search-backend/internal/models"
)

func TestScoreBands(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		matchType models.MatchType
		expected  float64
	}{
		{
			name:      "Exact match",
			query:     "Arsenal F.C.",
			candidate: "Arsenal F.C.",
			matchType: models.MatchName,
			expected:  1.0,
		},
		{
			name:      "Exact match beats nickname band",
			query:     "cristiano ronaldo",
			candidate: "Cristiano Ronaldo",
			matchType: models.MatchNickname,
			expected:  1.0,
		},
		{
			name:      "Nickname hit",
			query:     "spurs",
			candidate: "Tottenham Hotspur F.C.",
			matchType: models.MatchNickname,
			expected:  0.95,
		},
		{
			name:      "Prefix match",
			query:     "Tottenham",
			candidate: "Tottenham Hotspur F.C.",
			matchType: models.MatchName,
			expected:  0.9,
		},
		{
			name:      "Word prefix match",
			query:     "Hotspur",
			candidate: "Tottenham Hotspur F.C.",
			matchType: models.MatchName,
			expected:  0.85,
		},
		{
			name:      "Exact is case insensitive",
			query:     "ARSENAL F.C.",
			candidate: "arsenal f.c.",
			matchType: models.MatchName,
			expected:  1.0,
		},
		{
			name:      "Diacritics folded before comparison",
			query:     "munchen",
			candidate: "München",
			matchType: models.MatchName,
			expected:  1.0,
		},
		{
			name:      "No match falls back",
			query:     "xyz",
			candidate: "Arsenal F.C.",
			matchType: models.MatchName,
			expected:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.query, tt.candidate, tt.matchType)
			if result != tt.expected {
				t.Errorf("Score(%q, %q, %s) = %v, want %v", tt.query, tt.candidate, tt.matchType, result, tt.expected)
			}
		})
	}
}

// TestScoreSubstringPosition verifies the positional formula
// 0.7 - pos/len * 0.1 and that earlier matches score higher.
func TestScoreSubstringPosition(t *testing.T) {
	// "ttenham" in "tottenham hotspur f.c." starts at byte 2 of 22.
	got := Score("ttenham", "Tottenham Hotspur F.C.", models.MatchName)
	want := 0.7 - 2.0/22.0*0.1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", got, want)
	}

	early := Score("iver", "Liverpool F.C.", models.MatchName)
	late := Score("rpool", "Liverpool F.C.", models.MatchName)
	if early <= late {
		t.Errorf("earlier substring should outrank later: early=%v late=%v", early, late)
	}
	for _, s := range []float64{early, late} {
		if s > 0.7 || s <= 0.5 {
			t.Errorf("substring score %v outside expected (0.5, 0.7] band", s)
		}
	}
}
