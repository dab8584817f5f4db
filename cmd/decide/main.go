// Choose the bot's action for one turn from a saved payoff table.
package main

import (
	"expvar"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/timpalpant/decide"
	"github.com/timpalpant/decide/matrixgame"
)

// config holds the defaults for every flag, read from the environment.
type config struct {
	Method       string  `env:"DECIDE_METHOD" env-default:"nash"`
	AverageLimit float64 `env:"DECIDE_AVERAGE_LIMIT" env-default:"10"`
	Seed         int64   `env:"DECIDE_SEED" env-default:"0"`
	Solver       string  `env:"DECIDE_SOLVER" env-default:"enumerate"`
	MaxActions   int     `env:"DECIDE_MAX_ACTIONS" env-default:"10"`
	FPIterations int     `env:"DECIDE_FP_ITERATIONS" env-default:"10000"`
	DebugAddr    string  `env:"DECIDE_DEBUG_ADDR"`
}

func main() {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		glog.Fatal(err)
	}

	tableFile := flag.String("table", "", "JSON payoff table (optionally .gz) to decide from")
	method := flag.String("method", cfg.Method, "Decision method: nash, safest, average or blend")
	averageLimit := flag.Float64("average_limit", cfg.AverageLimit, "Tolerance for the average and blend methods (0 for the default)")
	seed := flag.Int64("seed", cfg.Seed, "Random seed (0 to seed from the clock)")
	solverName := flag.String("solver", cfg.Solver,
		"Equilibrium solver: enumerate, fictitious_play or auto (enumerate, then fictitious_play)")
	maxActions := flag.Int("max_actions", cfg.MaxActions, "Largest game the enumerating solver accepts")
	fpIterations := flag.Int("fp_iterations", cfg.FPIterations, "Number of fictitious play iterations")
	printPayoff := flag.Bool("print_payoff", false, "Also print the best Nash equilibrium payoff")
	debugAddr := flag.String("debug_addr", cfg.DebugAddr, "Serve expvar and pprof on this address")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	m, err := decide.ParseMethod(*method)
	if err != nil {
		glog.Fatal(err)
	}

	solver, err := newSolver(*solverName, *maxActions, *fpIterations, rng)
	if err != nil {
		glog.Fatal(err)
	}

	table := mustLoadTable(*tableFile)
	decider := decide.NewDecider(solver, rng, decide.GlogLogger())
	decider.Method = m
	decider.AverageLimit = *averageLimit

	action, err := decider.Decide(table)
	if err != nil {
		glog.Fatal(err)
	}
	fmt.Println(action)

	if *printPayoff {
		payoff, err := decider.NashEquilibriumPayoff(table)
		if err != nil {
			glog.Fatal(err)
		}
		fmt.Println(payoff)
	}

	glog.V(1).Infof("Decisions: %v", expvar.Get("decide/decisions"))
}

func newSolver(name string, maxActions, fpIterations int, rng *rand.Rand) (matrixgame.Solver, error) {
	enumerate := &matrixgame.SupportEnumeration{
		MaxActions: maxActions,
		Tolerance:  matrixgame.DefaultTolerance,
	}
	fp := matrixgame.NewFictitiousPlay(fpIterations, 0, rng)

	switch name {
	case "enumerate":
		return enumerate, nil
	case "fictitious_play":
		return fp, nil
	case "auto":
		return matrixgame.FirstNonEmpty(enumerate, fp), nil
	default:
		return nil, errors.Errorf("unknown solver: %q", name)
	}
}

func mustLoadTable(filename string) *decide.PayoffTable {
	glog.Infof("Loading payoff table from: %v", filename)
	table, err := decide.LoadPayoffTable(filename)
	if err != nil {
		glog.Fatal(err)
	}

	glog.V(2).Infof("Loaded %d entries: %v", table.Len(), table)
	return table
}
