package sop

import (
	"github.com/pkg/errors"

	"github.com/sopsat/sopsat/solver"
)

// Xor builds a CNF problem that is satisfiable iff there is an assignment
// on which f1 and f2 disagree. Both functions must range over the same
// variable space: mismatched variable counts fail with
// ErrIncompatibleFunctions before any conversion is attempted.
//
// Each function is encoded through an output variable o_j constrained to
// equal it (equivalence gates over one auxiliary per term), and the two
// clauses (o1 ∨ o2) and (¬o1 ∨ ¬o2) then assert o1 XOR o2. Auxiliary
// numbering is kept disjoint: f1's auxiliaries come first, then f2's, then
// o1 and o2.
func Xor(f1, f2 *Function) (*solver.Problem, error) {
	if f1.NbVars != f2.NbVars {
		return nil, errors.Wrapf(ErrIncompatibleFunctions, "%d vs %d variables", f1.NbVars, f2.NbVars)
	}
	n := f1.NbVars
	k1, k2 := len(f1.Terms), len(f2.Terms)
	o1 := n + k1 + k2 + 1
	o2 := o1 + 1
	var clauses [][]int
	clauses = gateClauses(clauses, f1, n+1, o1)
	clauses = gateClauses(clauses, f2, n+k1+1, o2)
	clauses = append(clauses, []int{o1, o2}, []int{-o1, -o2})
	return solver.NewProblem(n+k1+k2+2, clauses), nil
}

// Equivalent reports whether f1 and f2 compute the same function, by
// checking that their XOR is unsatisfiable.
func Equivalent(f1, f2 *Function) (bool, error) {
	pb, err := Xor(f1, f2)
	if err != nil {
		return false, err
	}
	return solver.New(pb).Solve() == solver.Unsat, nil
}

// gateClauses appends the clauses constraining variable out to equal f,
// allocating one auxiliary per term starting at firstAux. A function with
// no term is the constant false, encoded as the unit clause (¬out); an
// empty term forces its auxiliary, hence out, to true.
func gateClauses(clauses [][]int, f *Function, firstAux, out int) [][]int {
	if len(f.Terms) == 0 {
		return append(clauses, []int{-out})
	}
	// out -> y_1 ∨ … ∨ y_k
	outImplies := make([]int, 0, len(f.Terms)+1)
	outImplies = append(outImplies, -out)
	for i, t := range f.Terms {
		y := firstAux + i
		clauses = termClauses(clauses, t, y)
		// y_i -> out
		clauses = append(clauses, []int{-y, out})
		outImplies = append(outImplies, y)
	}
	return append(clauses, outImplies)
}
