package decide

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/decide/matrixgame"
)

// NashEquilibrium is the equilibrium most favorable to the bot, indexed by
// the action order of the payoff matrix it was found in.
type NashEquilibrium struct {
	BotActions       []Action
	OpponentActions  []Action
	BotStrategy      []float64
	OpponentStrategy []float64
	// Payoff is the bot's expected score under both strategies.
	Payoff float64
}

// FindNashEquilibrium removes guaranteed opponent actions, solves the
// resulting matrix game and returns the equilibrium with the highest
// expected payoff for the bot. Ties go to the first equilibrium found.
func (d *Decider) FindNashEquilibrium(t *PayoffTable) (*NashEquilibrium, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyPayoffTable
	}
	if d.Solver == nil {
		return nil, errors.New("no equilibrium solver configured")
	}

	m := NewPayoffMatrix(filterOrOriginal(t))
	equilibria, err := d.Solver.Equilibria(m.Payoffs)
	if err != nil {
		return nil, errors.Wrap(err, "equilibrium solver failed")
	}

	best, payoff, err := bestEquilibrium(equilibria, m.Payoffs)
	if err != nil {
		return nil, err
	}

	return &NashEquilibrium{
		BotActions:       m.BotActions,
		OpponentActions:  m.OpponentActions,
		BotStrategy:      best.Row,
		OpponentStrategy: best.Col,
		Payoff:           payoff,
	}, nil
}

func bestEquilibrium(equilibria []matrixgame.Equilibrium, payoffs [][]float64) (matrixgame.Equilibrium, float64, error) {
	if len(equilibria) == 0 {
		noEquilibriumFound.Add(1)
		return matrixgame.Equilibrium{}, 0, ErrNoEquilibriumFound
	}

	equilibriaConsidered.Add(int64(len(equilibria)))
	var best matrixgame.Equilibrium
	var score float64
	for i, eq := range equilibria {
		if len(eq.Row) != len(payoffs) || len(eq.Col) != len(payoffs[0]) {
			return matrixgame.Equilibrium{}, 0, errors.Errorf(
				"equilibrium %d has shape %dx%d, expected %dx%d",
				i, len(eq.Row), len(eq.Col), len(payoffs), len(payoffs[0]))
		}

		outcome := matrixgame.ExpectedPayoff(payoffs, eq.Row, eq.Col)
		if i == 0 || outcome > score {
			best = eq
			score = outcome
		}
	}

	return best, score, nil
}

// PickFromNashEquilibria samples one bot action from the bot's strategy in
// the best equilibrium.
func (d *Decider) PickFromNashEquilibria(t *PayoffTable) (Action, error) {
	eq, err := d.FindNashEquilibrium(t)
	if err != nil {
		return "", err
	}

	d.logNashEquilibrium(eq)
	selected, err := sampleWeighted(d.rng(), eq.BotStrategy)
	if err != nil {
		return "", err
	}

	return eq.BotActions[selected], nil
}

// NashEquilibriumPayoff returns the bot's expected payoff in the best
// equilibrium without choosing an action, e.g. to compare candidate tables.
func (d *Decider) NashEquilibriumPayoff(t *PayoffTable) (float64, error) {
	eq, err := d.FindNashEquilibrium(t)
	if err != nil {
		return 0, err
	}

	return eq.Payoff, nil
}

type weightedAction struct {
	Action Action
	Weight float64
}

func (d *Decider) logNashEquilibrium(eq *NashEquilibrium) {
	d.logger().Debugf("Bot options: %v", nonzeroOptions(eq.BotActions, eq.BotStrategy))
	d.logger().Debugf("Opponent options: %v", nonzeroOptions(eq.OpponentActions, eq.OpponentStrategy))
	d.logger().Debugf("Payoff: %v", eq.Payoff)
}

func nonzeroOptions(actions []Action, strategy []float64) []weightedAction {
	var result []weightedAction
	for i, p := range strategy {
		if p != 0 {
			result = append(result, weightedAction{actions[i], p})
		}
	}
	return result
}
