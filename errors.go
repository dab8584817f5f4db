package decide

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyPayoffTable is returned by every selector given a table with no entries.
	ErrEmptyPayoffTable = errors.New("payoff table is empty")
	// ErrNoEquilibriumFound is returned when the solver finds no equilibrium.
	ErrNoEquilibriumFound = errors.New("no equilibrium found")
	// ErrUnknownMethod is returned by ParseMethod for an unrecognized name.
	ErrUnknownMethod = errors.New("unknown decision method")
)
