package matrixgame

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultMaxActions = 10
	DefaultTolerance  = 1e-9
)

// SupportEnumeration finds every equilibrium of a nondegenerate game by
// trying each pair of equal-sized supports and solving the indifference
// conditions. Degenerate games may have further equilibria that are not found.
//
// The number of support pairs grows exponentially, so games with more than
// MaxActions actions for either player are rejected.
type SupportEnumeration struct {
	MaxActions int
	Tolerance  float64
}

func NewSupportEnumeration() *SupportEnumeration {
	return &SupportEnumeration{
		MaxActions: DefaultMaxActions,
		Tolerance:  DefaultTolerance,
	}
}

func (s *SupportEnumeration) Equilibria(payoffs [][]float64) ([]Equilibrium, error) {
	if len(payoffs) == 0 || len(payoffs[0]) == 0 {
		return nil, errors.New("empty payoff matrix")
	}

	m, n := len(payoffs), len(payoffs[0])
	if m > s.MaxActions || n > s.MaxActions {
		return nil, errors.Errorf("%dx%d game exceeds limit of %d actions per player",
			m, n, s.MaxActions)
	}

	a := toDense(payoffs)
	b := mat.DenseCopyOf(a)
	b.Scale(-1, b)

	var result []Equilibrium
	for k := 1; k <= min(m, n); k++ {
		for _, rowSupport := range combinations(m, k) {
			for _, colSupport := range combinations(n, k) {
				eq, ok := s.solveSupports(a, b, rowSupport, colSupport)
				if ok && !s.contains(result, eq) {
					glog.V(3).Infof("Found equilibrium on supports %v, %v: %+v",
						rowSupport, colSupport, eq)
					result = append(result, eq)
				}
			}
		}
	}

	return result, nil
}

// solveSupports looks for an equilibrium where the row player mixes over
// rowSupport and the column player over colSupport.
func (s *SupportEnumeration) solveSupports(a, b *mat.Dense, rowSupport, colSupport []int) (Equilibrium, bool) {
	m, n := a.Dims()

	// Column strategy makes the row player indifferent over rowSupport.
	col, v, ok := indifferentStrategy(a, rowSupport, colSupport, n)
	if !ok || !s.isDistribution(col) {
		return Equilibrium{}, false
	}

	// Row strategy makes the column player indifferent over colSupport.
	row, u, ok := indifferentStrategy(b.T(), colSupport, rowSupport, m)
	if !ok || !s.isDistribution(row) {
		return Equilibrium{}, false
	}

	// Neither player may have a better response outside its support.
	var rowPayoffs mat.VecDense
	rowPayoffs.MulVec(a, mat.NewVecDense(n, col))
	for i := 0; i < m; i++ {
		if rowPayoffs.AtVec(i) > v+s.Tolerance {
			return Equilibrium{}, false
		}
	}

	var colPayoffs mat.VecDense
	colPayoffs.MulVec(b.T(), mat.NewVecDense(m, row))
	for j := 0; j < n; j++ {
		if colPayoffs.AtVec(j) > u+s.Tolerance {
			return Equilibrium{}, false
		}
	}

	return Equilibrium{Row: clip(row), Col: clip(col)}, true
}

// indifferentStrategy solves for the opponent strategy over theirSupport
// (padded to size total) that equalizes payoffs[i] for every i in ourSupport,
// along with the common value.
func indifferentStrategy(payoffs mat.Matrix, ourSupport, theirSupport []int, total int) ([]float64, float64, bool) {
	k := len(ourSupport)
	lhs := mat.NewDense(k+1, k+1, nil)
	rhs := mat.NewVecDense(k+1, nil)
	for r, i := range ourSupport {
		for c, j := range theirSupport {
			lhs.Set(r, c, payoffs.At(i, j))
		}
		lhs.Set(r, k, -1)
	}
	for c := range theirSupport {
		lhs.Set(k, c, 1)
	}
	rhs.SetVec(k, 1)

	var x mat.VecDense
	if err := x.SolveVec(lhs, rhs); err != nil {
		return nil, 0, false
	}

	strategy := make([]float64, total)
	for c, j := range theirSupport {
		strategy[j] = x.AtVec(c)
	}
	return strategy, x.AtVec(k), true
}

func (s *SupportEnumeration) isDistribution(p []float64) bool {
	for _, v := range p {
		if v < -s.Tolerance || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func (s *SupportEnumeration) contains(equilibria []Equilibrium, eq Equilibrium) bool {
	for _, other := range equilibria {
		if s.close(other.Row, eq.Row) && s.close(other.Col, eq.Col) {
			return true
		}
	}
	return false
}

func (s *SupportEnumeration) close(x, y []float64) bool {
	for i := range x {
		if math.Abs(x[i]-y[i]) > math.Sqrt(s.Tolerance) {
			return false
		}
	}
	return true
}

// clip zeroes slightly negative weights left by rounding.
func clip(p []float64) []float64 {
	for i, v := range p {
		if v < 0 {
			p[i] = 0
		}
	}
	return p
}

// combinations returns every k-element subset of [0, n) in lexicographic order.
func combinations(n, k int) [][]int {
	var result [][]int
	current := make([]int, 0, k)
	var helper func(start int)
	helper = func(start int) {
		if len(current) == k {
			result = append(result, append([]int(nil), current...))
			return
		}
		for i := start; i <= n-(k-len(current)); i++ {
			current = append(current, i)
			helper(i + 1)
			current = current[:len(current)-1]
		}
	}
	helper(0)
	return result
}

func min(i, j int) int {
	if i < j {
		return i
	}
	return j
}
