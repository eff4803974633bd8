package services

import (
	"sort"
	"strings"
)

// SearchService ranks zones against a free-text query
type SearchService struct {
	world *WorldService
}

// NewSearchService creates a new SearchService
func NewSearchService(ws *WorldService) *SearchService {
	return &SearchService{world: ws}
}

// ZoneMatch is one search hit
type ZoneMatch struct {
	ZoneID      string  `json:"zone_id"`
	DisplayName string  `json:"display_name"`
	Region      string  `json:"region"`
	Score       float64 `json:"score"`
}

// MinSearchScore drops hits that did not match every query character.
const MinSearchScore = 50

// Search returns zones scoring above MinSearchScore, best first, at most limit.
func (s *SearchService) Search(query string, limit int) []ZoneMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return []ZoneMatch{}
	}

	matches := make([]ZoneMatch, 0)
	for _, id := range s.world.ZoneIDs("") {
		zone, _ := s.world.Zone(id)
		score := max(FuzzyScore(query, zone.DisplayName), FuzzyScore(query, id))
		if score <= MinSearchScore {
			continue
		}
		matches = append(matches, ZoneMatch{
			ZoneID:      id,
			DisplayName: zone.DisplayName,
			Region:      zone.Region,
			Score:       score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// FuzzyScore scores how well target matches search. Exact, prefix and
// substring matches score 1000, 900 and 800. Otherwise search characters are
// matched in order, with bonuses for streaks and word starts; an incomplete
// match is divided by ten.
func FuzzyScore(search, target string) float64 {
	s := []rune(strings.ToLower(search))
	t := []rune(strings.ToLower(target))
	ls, lt := string(s), string(t)

	switch {
	case len(s) == 0 || len(t) == 0:
		return 0
	case lt == ls:
		return 1000
	case strings.HasPrefix(lt, ls):
		return 900
	case strings.Contains(lt, ls):
		return 800
	}

	score := 0.0
	si, streak, last := 0, 0, -2
	for i := 0; i < len(t) && si < len(s); i++ {
		if t[i] != s[si] {
			continue
		}
		if i == last+1 {
			streak++
			score += 10 + float64(streak*5)
		} else {
			streak = 0
			score += 10
		}
		if i == 0 || t[i-1] == ' ' {
			score += 15
		}
		last = i
		si++
	}

	if si == len(s) {
		score += 100
		score += float64(len(s)) / float64(len(t)) * 50
	} else {
		score /= 10
	}
	return score
}
