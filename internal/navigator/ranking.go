package navigator

import "sort"

// Results is the ordered collection of per-profile fit results.
// Items stay in declared profile order until ranked.
type Results struct {
	Items []Result
}

func (r *Results) Len() int {
	return len(r.Items)
}

// Rank returns the results sorted by fit score descending. The sort is stable,
// so exact ties keep the declared profile order.
func (r *Results) Rank() []Result {
	ranked := make([]Result, len(r.Items))
	copy(ranked, r.Items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FitScore > ranked[j].FitScore
	})

	return ranked
}

// Best returns the top-ranked result.
func (r *Results) Best() Result {
	if r.Len() == 0 {
		return Result{}
	}
	return r.Rank()[0]
}

// FindByKey returns the result for the given profile key.
func (r *Results) FindByKey(key string) *Result {
	for i := range r.Items {
		if r.Items[i].Profile.Key == key {
			return &r.Items[i]
		}
	}
	return nil
}

// Summary names the recommended profile and the full descending ranking.
type Summary struct {
	Best         string   `json:"best"`
	BestName     string   `json:"bestName"`
	BestFitScore float64  `json:"bestFitScore"`
	BestFitLabel string   `json:"bestFitLabel"`
	Ranking      []string `json:"ranking"`
}

// Summarize derives the recommendation from the result set.
func (r *Results) Summarize() Summary {
	ranked := r.Rank()
	if len(ranked) == 0 {
		return Summary{}
	}

	best := ranked[0]

	ranking := make([]string, 0, len(ranked))
	for _, res := range ranked {
		ranking = append(ranking, res.Profile.Key)
	}

	return Summary{
		Best:         best.Profile.Key,
		BestName:     best.Profile.Name,
		BestFitScore: Round3(best.FitScore),
		BestFitLabel: best.Label,
		Ranking:      ranking,
	}
}
