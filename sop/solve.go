package sop

import (
	"github.com/mitchellh/hashstructure"
	"github.com/pkg/errors"

	"github.com/sopsat/sopsat/solver"
)

// Solve searches for an assignment satisfying f. It returns the bindings
// for variables 1..NbVars, or nil if f is unsatisfiable. Auxiliary
// variables introduced by the CNF conversion never leak into the result.
func Solve(f *Function) []bool {
	s := solver.New(Convert(f))
	if s.Solve() != solver.Sat {
		return nil
	}
	return s.Model()[:f.NbVars]
}

// SolveAll returns every assignment over variables 1..NbVars satisfying f,
// in deterministic discovery order.
func SolveAll(f *Function) ([][]bool, error) {
	return SolveAllOver(f, nil)
}

// SolveAllOver enumerates the satisfying assignments of f projected onto
// the given subset of variables (1-based); a nil subset means all of the
// function's variables. Distinct full assignments that agree on the subset
// collapse into a single projected assignment.
func SolveAllOver(f *Function, vars []int) ([][]bool, error) {
	if vars == nil {
		vars = make([]int, f.NbVars)
		for i := range vars {
			vars[i] = i + 1
		}
	}
	for _, v := range vars {
		if v < 1 || v > f.NbVars {
			return nil, errors.Wrapf(solver.ErrOutOfRangeLiteral, "variable %d for a function over %d vars", v, f.NbVars)
		}
	}
	s := solver.New(Convert(f))
	models, err := s.SolveAll()
	if err != nil {
		return nil, err
	}
	var (
		projected [][]bool
		seen      = make(map[uint64]bool, len(models))
	)
	for _, m := range models {
		proj := make([]bool, len(vars))
		for i, v := range vars {
			proj[i] = m[v-1]
		}
		h, err := hashstructure.Hash(proj, nil)
		if err != nil {
			return nil, errors.Wrap(err, "could not hash assignment")
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		projected = append(projected, proj)
	}
	return projected, nil
}
