package decide

import (
	"math"
)

// RemoveGuaranteedOpponentActions drops the opponent actions whose outcome
// does not depend on which action the bot chooses.
//
// For example, if the opponent can force the same result no matter what we do,
// that action gives us nothing to decide on and only skews the worst case and
// average reasoning of the selectors.
//
// Tables with a single bot action or a single opponent action are returned
// as is. The result may be empty; callers should then fall back to the
// original table (see filterOrOriginal).
func RemoveGuaranteedOpponentActions(t *PayoffTable) *PayoffTable {
	if len(t.BotActions()) <= 1 || len(t.OpponentActions()) <= 1 {
		return t
	}

	baseline := make(map[Action]float64)
	decisions := make(map[Action]bool)
	for _, e := range t.entries {
		first, ok := baseline[e.Opponent]
		if !ok {
			baseline[e.Opponent] = e.Score
		} else if !math.IsNaN(e.Score) && e.Score != first {
			// A NaN baseline compares unequal to everything, so any later
			// defined score marks the action.
			decisions[e.Opponent] = true
		}
	}

	return t.subset(func(e Entry) bool {
		return decisions[e.Opponent]
	})
}

// filterOrOriginal applies RemoveGuaranteedOpponentActions and falls back to
// the unfiltered table if nothing is left.
func filterOrOriginal(t *PayoffTable) *PayoffTable {
	filtered := RemoveGuaranteedOpponentActions(t)
	if filtered.IsEmpty() {
		filterFallbacks.Add(1)
		return t
	}
	return filtered
}
