// Package matrixgame finds Nash equilibria of two-player matrix games.
//
// Payoff matrices are given from the row player's point of view: rows are
// the row player's actions, columns the column player's. Games are zero
// sum, so the column player's payoff is the negated matrix. NaN cells are
// treated as 0.
package matrixgame

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Equilibrium is a pair of mixed strategies, one per player, such that
// neither player gains by deviating alone.
type Equilibrium struct {
	Row []float64
	Col []float64
}

// Solver enumerates the equilibria of a matrix game. The result may be empty.
type Solver interface {
	Equilibria(payoffs [][]float64) ([]Equilibrium, error)
}

// ExpectedPayoff returns the row player's expected payoff rowᵗ·payoffs·col.
func ExpectedPayoff(payoffs [][]float64, row, col []float64) float64 {
	a := toDense(payoffs)
	return mat.Inner(mat.NewVecDense(len(row), row), a, mat.NewVecDense(len(col), col))
}

// toDense copies payoffs into a matrix, replacing NaN with 0.
func toDense(payoffs [][]float64) *mat.Dense {
	m, n := len(payoffs), len(payoffs[0])
	a := mat.NewDense(m, n, nil)
	for i, row := range payoffs {
		for j, v := range row {
			if !math.IsNaN(v) {
				a.Set(i, j, v)
			}
		}
	}
	return a
}

type firstNonEmpty []Solver

// FirstNonEmpty returns a Solver that tries each solver in turn and returns
// the first non-empty set of equilibria.
func FirstNonEmpty(solvers ...Solver) Solver {
	return firstNonEmpty(solvers)
}

func (s firstNonEmpty) Equilibria(payoffs [][]float64) ([]Equilibrium, error) {
	var lastErr error
	for _, solver := range s {
		result, err := solver.Equilibria(payoffs)
		if err != nil {
			lastErr = err
			continue
		}
		if len(result) > 0 {
			return result, nil
		}
	}
	return nil, lastErr
}
