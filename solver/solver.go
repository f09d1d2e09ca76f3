// Package solver provides a small mixed-integer linear-programming facility.
// Callers describe a problem as a Model (named variables carrying numeric
// attributes, named bound constraints over those attributes, a linear
// objective) and receive a Result with feasibility metadata plus a value per
// variable. The planner depends only on the Solver interface so tests can
// substitute canned results.
package solver

// Optimization directions.
const (
	OpMin = "min"
	OpMax = "max"
)

// Bound restricts the weighted sum of one attribute across all variables.
// Equal takes precedence over Min/Max when set.
type Bound struct {
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Equal *float64 `json:"equal,omitempty"`
}

// Model is a linear program. Variables maps a variable name to its attribute
// coefficients; Constraints maps an attribute name to its bound; Optimize
// names the attribute whose weighted sum is minimized or maximized per OpType.
// Variables listed in Ints are restricted to integer values.
type Model struct {
	Optimize    string                        `json:"optimize"`
	OpType      string                        `json:"opType"`
	Constraints map[string]Bound              `json:"constraints"`
	Variables   map[string]map[string]float64 `json:"variables"`
	Ints        map[string]bool               `json:"ints"`
}

// Result is a solve outcome. When Feasible is false the Values map is empty.
type Result struct {
	Feasible   bool               `json:"feasible"`
	Bounded    bool               `json:"bounded"`
	IsIntegral bool               `json:"isIntegral"`
	Result     float64            `json:"result"`
	Values     map[string]float64 `json:"values"`
}

// Solver solves a Model. Implementations must report infeasibility through
// Result.Feasible, never through panics or side channels.
type Solver interface {
	Solve(m Model) Result
}

// Float is a convenience for building Bound literals.
func Float(v float64) *float64 { return &v }
