package decide

import (
	"expvar"
)

var (
	decisions            = expvar.NewMap("decide/decisions")
	filterFallbacks      = expvar.NewInt("decide/filter_fallbacks")
	equilibriaConsidered = expvar.NewInt("decide/equilibria_considered")
	noEquilibriumFound   = expvar.NewInt("decide/no_equilibrium_found")
)
