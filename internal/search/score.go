package search

import (
	"strings"

	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/text"
)

// Score ranks a candidate display name against a query. Bands, first match
// wins:
//
//	1.00  normalized candidate equals normalized query
//	0.95  the hit came from the nickname table
//	0.90  candidate starts with the query
//	0.85  any word of the candidate starts with the query
//	0.70-pos/len*0.10  query appears as a substring (earlier is better)
//	0.50  fallback for candidates that slipped past filtering
func Score(query, candidate string, matchType models.MatchType) float64 {
	q := text.Normalize(query)
	c := text.Normalize(candidate)

	if c == q {
		return 1.0
	}
	if matchType == models.MatchNickname {
		return 0.95
	}
	if strings.HasPrefix(c, q) {
		return 0.9
	}
	for _, word := range strings.Fields(c) {
		if strings.HasPrefix(word, q) {
			return 0.85
		}
	}
	if pos := strings.Index(c, q); pos >= 0 {
		return 0.7 - float64(pos)/float64(len(c))*0.1
	}
	return 0.5
}
