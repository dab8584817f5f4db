package decide

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/decide/matrixgame"
)

// Method is the strategy a Decider uses to turn a payoff table into an action.
type Method uint8

const (
	Nash Method = iota
	Safest
	Average
	Blend
)

var methodStr = [...]string{
	"nash",
	"safest",
	"average",
	"blend",
}

func (m Method) String() string {
	if int(m) >= len(methodStr) {
		return "unknown"
	}
	return methodStr[m]
}

// ParseMethod returns the Method with the given name.
func ParseMethod(name string) (Method, error) {
	for i, s := range methodStr {
		if strings.EqualFold(name, s) {
			return Method(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMethod, "%q", name)
}

// Decider selects the bot's action from a payoff table.
//
// It holds no state between calls other than its collaborators: each
// decision works on a table created for that turn. A Decider is not safe
// for concurrent use unless its Rand is.
type Decider struct {
	// Solver enumerates the equilibria of a matrix game. Only needed for Nash.
	Solver matrixgame.Solver
	// Rand drives the randomized methods. Defaults to the math/rand global source.
	Rand Rand
	// Logger receives diagnostics. Defaults to NopLogger.
	Logger Logger
	// AverageLimit is the tolerance for the average and blend methods.
	// Zero means DefaultAverageLimit.
	AverageLimit float64
	// Method is used by Decide.
	Method Method
}

func NewDecider(solver matrixgame.Solver, rng Rand, logger Logger) *Decider {
	return &Decider{
		Solver:       solver,
		Rand:         rng,
		Logger:       logger,
		AverageLimit: DefaultAverageLimit,
		Method:       Nash,
	}
}

func (d *Decider) rng() Rand {
	if d.Rand == nil {
		return globalRand{}
	}
	return d.Rand
}

func (d *Decider) averageLimit() float64 {
	if d.AverageLimit == 0 {
		return DefaultAverageLimit
	}
	return d.AverageLimit
}

func (d *Decider) logger() Logger {
	if d.Logger == nil {
		return NopLogger{}
	}
	return d.Logger
}

// Decide selects one action using the Decider's Method.
func (d *Decider) Decide(t *PayoffTable) (Action, error) {
	var action Action
	var err error
	switch d.Method {
	case Nash:
		action, err = d.PickFromNashEquilibria(t)
	case Safest:
		action, err = d.DecideFromSafest(t)
	case Average:
		var options []Action
		options, err = d.DecideFromBestAverages(t, d.averageLimit())
		if err == nil {
			action = chooseUniform(d.rng(), options)
		}
	case Blend:
		action, err = d.DecideRandomFromAverageAndSafest(t)
	default:
		return "", errors.Wrapf(ErrUnknownMethod, "%v", d.Method)
	}

	if err != nil {
		return "", errors.Wrapf(err, "%v decision failed", d.Method)
	}

	decisions.Add(d.Method.String(), 1)
	d.logger().Infof("Decided %v using %v", action, d.Method)
	return action, nil
}
