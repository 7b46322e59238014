package sop

import (
	"github.com/sopsat/sopsat/solver"
)

// Convert translates f into an equisatisfiable CNF problem.
//
// A direct De Morgan expansion of an OR of ANDs is exponential in the
// number of terms, so one auxiliary variable y_i is introduced per term
// (numbered NbVars+1 .. NbVars+k) and tied to it in both directions:
//
//	y_i -> term_i   one binary clause (¬y_i ∨ l) per literal l,
//	term_i -> y_i   one clause (¬l_1 ∨ … ∨ ¬l_m ∨ y_i),
//
// plus a final clause (y_1 ∨ … ∨ y_k) asserting at least one term holds.
// The result has NbVars+k variables and a number of clauses linear in the
// size of f. Satisfying assignments of the result, restricted to the first
// NbVars variables, are exactly the satisfying assignments of f.
//
// Degenerate inputs short-circuit: a function with no term is the constant
// false and yields a trivially Unsat problem; a function containing an
// empty term is the constant true and yields a problem with no clauses.
func Convert(f *Function) *solver.Problem {
	if len(f.Terms) == 0 {
		return &solver.Problem{NbVars: f.NbVars, Status: solver.Unsat}
	}
	for _, t := range f.Terms {
		if len(t) == 0 {
			return solver.NewProblem(f.NbVars, nil)
		}
	}
	k := len(f.Terms)
	clauses := make([][]int, 0, nbConvertClauses(f)+1)
	atLeastOne := make([]int, 0, k)
	for i, t := range f.Terms {
		y := f.NbVars + 1 + i
		clauses = termClauses(clauses, t, y)
		atLeastOne = append(atLeastOne, y)
	}
	clauses = append(clauses, atLeastOne)
	return solver.NewProblem(f.NbVars+k, clauses)
}

// termClauses appends the clauses tying auxiliary variable y to the
// conjunction of the term's literals, in both directions.
func termClauses(clauses [][]int, t Term, y int) [][]int {
	long := make([]int, 0, len(t)+1)
	for _, l := range t {
		clauses = append(clauses, []int{-y, l.Int()})
		long = append(long, -l.Int())
	}
	long = append(long, y)
	return append(clauses, long)
}

func nbConvertClauses(f *Function) int {
	n := 0
	for _, t := range f.Terms {
		n += len(t) + 1
	}
	return n
}
