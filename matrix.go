package decide

import (
	"math"
)

// PayoffMatrix is the dense form of a PayoffTable. Row i holds the scores of
// BotActions[i] and column j those against OpponentActions[j], both in order
// of first appearance in the table. Missing cells are NaN.
type PayoffMatrix struct {
	BotActions      []Action
	OpponentActions []Action
	Payoffs         [][]float64

	present [][]bool
}

func NewPayoffMatrix(t *PayoffTable) *PayoffMatrix {
	bots := t.BotActions()
	opponents := t.OpponentActions()
	botIdx := indexOf(bots)
	opponentIdx := indexOf(opponents)

	payoffs := make([][]float64, len(bots))
	present := make([][]bool, len(bots))
	for i := range payoffs {
		payoffs[i] = make([]float64, len(opponents))
		present[i] = make([]bool, len(opponents))
		for j := range payoffs[i] {
			payoffs[i][j] = math.NaN()
		}
	}

	for _, e := range t.entries {
		i, j := botIdx[e.Bot], opponentIdx[e.Opponent]
		payoffs[i][j] = e.Score
		present[i][j] = true
	}

	return &PayoffMatrix{
		BotActions:      bots,
		OpponentActions: opponents,
		Payoffs:         payoffs,
		present:         present,
	}
}

// Table converts the matrix back to a PayoffTable in row-major order,
// leaving out the cells that were missing from the original table.
func (m *PayoffMatrix) Table() *PayoffTable {
	t := NewPayoffTable()
	for i, bot := range m.BotActions {
		for j, opponent := range m.OpponentActions {
			if m.present == nil || m.present[i][j] {
				t.Set(bot, opponent, m.Payoffs[i][j])
			}
		}
	}
	return t
}

func indexOf(actions []Action) map[Action]int {
	result := make(map[Action]int, len(actions))
	for i, a := range actions {
		result[a] = i
	}
	return result
}
