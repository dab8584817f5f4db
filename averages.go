package decide

import (
	"math"
	"sort"
)

// DefaultAverageLimit is the tolerance the average and blend methods use
// when the Decider's AverageLimit is zero.
const DefaultAverageLimit = 10.0

type actionScore struct {
	action Action
	score  float64
}

// averageScores computes the mean score of each bot action over the
// opponent actions present in the table, in order of first appearance.
// NaN scores are skipped; an action with no defined score averages to -Inf.
func averageScores(t *PayoffTable) []actionScore {
	sums := make(map[Action]float64)
	counts := make(map[Action]int)
	var order []Action
	for _, e := range t.entries {
		if _, ok := sums[e.Bot]; !ok {
			order = append(order, e.Bot)
			sums[e.Bot] = 0
		}
		if !math.IsNaN(e.Score) {
			sums[e.Bot] += e.Score
			counts[e.Bot]++
		}
	}

	result := make([]actionScore, len(order))
	for i, bot := range order {
		mean := math.Inf(-1)
		if counts[bot] > 0 {
			mean = sums[bot] / float64(counts[bot])
		}
		result[i] = actionScore{bot, mean}
	}
	return result
}

// DecideFromBestAverages ranks the bot actions by their mean score and
// returns the best one followed by every next-best action whose mean is
// within limit of the best. The table is used as given, without removing
// guaranteed opponent actions.
func (d *Decider) DecideFromBestAverages(t *PayoffTable, limit float64) ([]Action, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyPayoffTable
	}

	averages := averageScores(t)
	// Stable so that equal means keep table order.
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].score > averages[j].score
	})

	best := averages[0]
	d.logger().Debugf("Good option: %v: %v", best.action, best.score)
	result := []Action{best.action}
	for _, candidate := range averages[1:] {
		if best.score-candidate.score > limit {
			break
		}

		d.logger().Debugf("Good option: %v: %v", candidate.action, candidate.score)
		result = append(result, candidate.action)
	}

	return result, nil
}
