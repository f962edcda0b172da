package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"culturebites/src/models"
	"culturebites/src/types"
)

const maxRecommendations = 5

// RankEvents is the local recommendation scorer used when the external
// ranking service is unavailable. Scoring per event:
//
//	+10 cuisine matches one of the guest's interests (case-insensitive)
//	 +5 event is 0 to 7 days out
//	 +3 event is 8 to 14 days out
//	 +2 seats are still available
//
// Ties keep candidate order, so callers passing a date-sorted catalog
// get soonest-first within equal scores.
func RankEvents(interests []string, candidates []models.Event, now time.Time) []types.Recommendation {
	type scored struct {
		event models.Event
		score int
	}
	today := startOfDay(now)
	ranked := make([]scored, 0, len(candidates))
	for _, e := range candidates {
		score := 0
		for _, interest := range interests {
			if strings.EqualFold(e.Cuisine, strings.TrimSpace(interest)) {
				score += 10
				break
			}
		}
		days := int(startOfDay(e.Date).Sub(today).Hours() / 24)
		switch {
		case days >= 0 && days <= 7:
			score += 5
		case days >= 8 && days <= 14:
			score += 3
		}
		if e.SeatsLeft > 0 {
			score += 2
		}
		ranked = append(ranked, scored{event: e, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}

	recs := make([]types.Recommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, types.Recommendation{
			ID:     r.event.ID,
			Reason: fmt.Sprintf("This %s event matches your interests and is coming up soon.", r.event.Cuisine),
		})
	}
	return recs
}
