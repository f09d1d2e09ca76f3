package solver

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

type rowKind int

const (
	rowEq rowKind = iota
	rowGE
	rowLE
)

// row is one linear constraint over the ordered variable vector.
type row struct {
	coeffs []float64
	rhs    float64
	kind   rowKind
}

// BranchAndBound solves integer models by branching on fractional variables
// of the simplex relaxation. Suited to the small 0/1 selection problems this
// service produces; not a general-purpose MIP engine.
type BranchAndBound struct {
	MaxNodes int     // search budget; the incumbent found so far wins on exhaustion
	Tol      float64 // integrality tolerance
}

func NewBranchAndBound() *BranchAndBound {
	return &BranchAndBound{MaxNodes: 10000, Tol: 1e-6}
}

func (s *BranchAndBound) Solve(m Model) Result {
	out := Result{Bounded: true, Values: make(map[string]float64)}
	if len(m.Variables) == 0 {
		return out
	}

	names := make([]string, 0, len(m.Variables))
	for name := range m.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	n := len(names)

	c := make([]float64, n)
	for i, name := range names {
		c[i] = m.Variables[name][m.Optimize]
	}
	maximize := m.OpType == OpMax
	if maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	base := buildRows(m, names)

	var intIdx []int
	for i, name := range names {
		if m.Ints[name] {
			intIdx = append(intIdx, i)
		}
	}

	tol := s.Tol
	if tol <= 0 {
		tol = 1e-6
	}
	maxNodes := s.MaxNodes
	if maxNodes <= 0 {
		maxNodes = 10000
	}

	type node struct{ extra []row }
	stack := []node{{}}

	var bestX []float64
	bestObj := math.Inf(1)
	visited := 0

	for len(stack) > 0 && visited < maxNodes {
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++

		rows := make([]row, 0, len(base)+len(nd.extra))
		rows = append(rows, base...)
		rows = append(rows, nd.extra...)

		x, obj, err := solveRelaxation(c, rows)
		if err == lp.ErrUnbounded {
			if len(nd.extra) == 0 {
				return Result{Values: make(map[string]float64)}
			}
			continue
		}
		if err != nil {
			// infeasible (or numerically degenerate) subproblem
			continue
		}
		if obj >= bestObj-1e-9 {
			continue
		}

		// branch on the most fractional integer variable, if any
		branch := -1
		worst := tol
		for _, j := range intIdx {
			frac := math.Abs(x[j] - math.Round(x[j]))
			if frac > worst {
				worst = frac
				branch = j
			}
		}
		if branch < 0 {
			bestObj = obj
			bestX = x
			continue
		}

		floor := math.Floor(x[branch])
		down := node{extra: append(copyRows(nd.extra), row{coeffs: unit(n, branch), rhs: floor, kind: rowLE})}
		up := node{extra: append(copyRows(nd.extra), row{coeffs: unit(n, branch), rhs: floor + 1, kind: rowGE})}
		stack = append(stack, down, up)
	}

	if bestX == nil {
		return out
	}

	out.Feasible = true
	out.IsIntegral = true
	out.Result = bestObj
	if maximize {
		out.Result = -bestObj
	}
	for i, name := range names {
		v := bestX[i]
		if m.Ints[name] {
			v = math.Round(v)
		}
		out.Values[name] = v
	}
	return out
}

// buildRows lowers the model's named bounds to constraint rows over the
// ordered variable vector. A bound carrying both min and max yields two rows.
func buildRows(m Model, names []string) []row {
	cnames := make([]string, 0, len(m.Constraints))
	for name := range m.Constraints {
		cnames = append(cnames, name)
	}
	sort.Strings(cnames)

	var rows []row
	for _, cname := range cnames {
		bound := m.Constraints[cname]
		coeffs := make([]float64, len(names))
		for i, vname := range names {
			coeffs[i] = m.Variables[vname][cname]
		}
		switch {
		case bound.Equal != nil:
			rows = append(rows, row{coeffs: coeffs, rhs: *bound.Equal, kind: rowEq})
		default:
			if bound.Min != nil {
				rows = append(rows, row{coeffs: coeffs, rhs: *bound.Min, kind: rowGE})
			}
			if bound.Max != nil {
				rows = append(rows, row{coeffs: coeffs, rhs: *bound.Max, kind: rowLE})
			}
		}
	}
	return rows
}

// solveRelaxation solves the continuous relaxation min c·x subject to the
// given rows and x >= 0, by lowering to standard form with one slack or
// surplus column per inequality.
func solveRelaxation(c []float64, rows []row) ([]float64, float64, error) {
	n := len(c)
	if len(rows) == 0 {
		// unconstrained: optimum is x=0 unless some coefficient rewards growth
		for _, cj := range c {
			if cj < 0 {
				return nil, 0, lp.ErrUnbounded
			}
		}
		return make([]float64, n), 0, nil
	}

	slacks := 0
	for _, r := range rows {
		if r.kind != rowEq {
			slacks++
		}
	}
	cols := n + slacks

	cFull := make([]float64, cols)
	copy(cFull, c)

	a := mat.NewDense(len(rows), cols, nil)
	b := make([]float64, len(rows))
	slack := n
	for i, r := range rows {
		for j := 0; j < n; j++ {
			if r.coeffs[j] != 0 {
				a.Set(i, j, r.coeffs[j])
			}
		}
		b[i] = r.rhs
		switch r.kind {
		case rowGE:
			a.Set(i, slack, -1)
			slack++
		case rowLE:
			a.Set(i, slack, 1)
			slack++
		}
	}

	obj, x, err := lp.Simplex(cFull, a, b, 0, nil)
	if err != nil {
		return nil, 0, err
	}
	return x[:n], obj, nil
}

func copyRows(rows []row) []row {
	out := make([]row, len(rows), len(rows)+1)
	copy(out, rows)
	return out
}

func unit(n, j int) []float64 {
	v := make([]float64, n)
	v[j] = 1
	return v
}
