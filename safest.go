package decide

import (
	"math"
)

type worstCase struct {
	Entry
	defined bool
}

// PickSafest returns the pair and score of the bot action with the best
// worst case (minimax), after removing guaranteed opponent actions.
//
// Both reductions use strict comparisons: among equal minima the first
// entry seen for a bot action is kept, and among equal worst cases the
// first bot action seen wins. NaN scores never become a worst case. A bot
// action with only NaN scores gets a worst case of -Inf on its first pair.
func PickSafest(t *PayoffTable) (ActionPair, float64, error) {
	if t.IsEmpty() {
		return ActionPair{}, 0, ErrEmptyPayoffTable
	}

	t = filterOrOriginal(t)
	worst := make(map[Action]worstCase)
	var order []Action
	for _, e := range t.entries {
		w, ok := worst[e.Bot]
		if !ok {
			order = append(order, e.Bot)
			w = worstCase{Entry: Entry{e.ActionPair, math.Inf(-1)}}
		}
		if !math.IsNaN(e.Score) && (!w.defined || e.Score < w.Score) {
			w = worstCase{e, true}
		}
		worst[e.Bot] = w
	}

	safest := worst[order[0]]
	for _, bot := range order[1:] {
		if w := worst[bot]; w.Score > safest.Score {
			safest = w
		}
	}

	return safest.ActionPair, safest.Score, nil
}

// DecideFromSafest returns the bot action chosen by PickSafest.
func (d *Decider) DecideFromSafest(t *PayoffTable) (Action, error) {
	pair, score, err := PickSafest(t)
	if err != nil {
		return "", err
	}

	d.logger().Debugf("Safest: %v, %v", pair.Bot, score)
	return pair.Bot, nil
}
