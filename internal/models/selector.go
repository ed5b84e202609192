package models

import (
	"fmt"
	"sort"
)

// Selection criteria.
const (
	CriteriaSpeed    = "speed"
	CriteriaCost     = "cost"
	CriteriaQuality  = "quality"
	CriteriaBalanced = "balanced"
)

var responseTimeRank = map[string]int{
	"very fast": 1,
	"fast":      2,
	"medium":    3,
	"slow":      4,
	"very slow": 5,
}

var costRank = map[string]int{
	"very low":  1,
	"low":       2,
	"medium":    3,
	"high":      4,
	"very high": 5,
}

// Select picks a model for the task. A direct recommended mapping wins;
// otherwise the provider's models are ranked by the criteria (speed and
// cost ascending, quality as the inverse of cost). Balanced falls back
// to the standard_research mapping, then the provider's first model.
func (r *Reference) Select(task, provider, criteria string) (string, error) {
	if mapping, ok := r.RecommendedMappings[task]; ok {
		if model, ok := mapping[provider]; ok {
			return model, nil
		}
	}

	available, ok := r.Providers[provider]
	if !ok {
		return "", fmt.Errorf("provider %q not found in model reference", provider)
	}
	if len(available) == 0 {
		return "", fmt.Errorf("provider %q has no models", provider)
	}

	switch criteria {
	case CriteriaSpeed:
		return rankBy(available, func(p Profile) int {
			return rankOrDefault(responseTimeRank, p.ResponseTime)
		}), nil
	case CriteriaCost:
		return rankBy(available, func(p Profile) int {
			return rankOrDefault(costRank, p.CostProfile)
		}), nil
	case CriteriaQuality:
		return rankBy(available, func(p Profile) int {
			return -rankOrDefault(costRank, p.CostProfile)
		}), nil
	default: // balanced
		if mapping, ok := r.RecommendedMappings["standard_research"]; ok {
			if model, ok := mapping[provider]; ok {
				return model, nil
			}
		}
		names := sortedNames(available)
		return names[0], nil
	}
}

func rankOrDefault(ranks map[string]int, key string) int {
	if v, ok := ranks[key]; ok {
		return v
	}
	return 3
}

// rankBy returns the best-ranked model name, with name order as the tie
// break so results are deterministic.
func rankBy(available map[string]Profile, score func(Profile) int) string {
	names := sortedNames(available)
	best := names[0]
	bestScore := score(available[best])
	for _, name := range names[1:] {
		if s := score(available[name]); s < bestScore {
			best, bestScore = name, s
		}
	}
	return best
}

func sortedNames(available map[string]Profile) []string {
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
