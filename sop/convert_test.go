package sop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopsat/sopsat/solver"
)

// bruteForceSat reports whether any of the 2^n assignments satisfies f.
func bruteForceSat(f *Function) bool {
	return bruteForceCount(f) > 0
}

// bruteForceCount counts the satisfying assignments of f by exhaustive
// enumeration. Only for small test functions.
func bruteForceCount(f *Function) int {
	count := 0
	for bits := 0; bits < 1<<f.NbVars; bits++ {
		model := make([]bool, f.NbVars)
		for i := range model {
			model[i] = bits&(1<<i) != 0
		}
		if f.Eval(model) {
			count++
		}
	}
	return count
}

func TestConvertShape(t *testing.T) {
	// AB + A'C: 3 input vars, 2 terms, so 5 vars and |t1|+|t2|+2+1 clauses.
	f := New(3, Term{Pos(1), Pos(2)}, Term{Neg(1), Pos(3)})
	pb := Convert(f)
	assert.Equal(t, 5, pb.NbVars)
	assert.Len(t, pb.Clauses, 7)
	assert.Equal(t, solver.Indet, pb.Status)
}

func TestConvertSat(t *testing.T) {
	f := New(3, Term{Pos(1), Pos(2)}, Term{Neg(1), Pos(3)})
	s := solver.New(Convert(f))
	require.Equal(t, solver.Sat, s.Solve())
	model := s.Model()
	assert.True(t, f.Eval(model[:f.NbVars]), "projected model %v does not satisfy f", model[:f.NbVars])
}

func TestConvertContradictoryTerm(t *testing.T) {
	// A single term A.A' can never hold.
	f := New(1, Term{Pos(1), Neg(1)})
	assert.Equal(t, solver.Unsat, solver.New(Convert(f)).Solve())
}

func TestConvertConstantFalse(t *testing.T) {
	pb := Convert(New(2))
	assert.Equal(t, solver.Unsat, pb.Status)
	assert.Equal(t, solver.Unsat, solver.New(pb).Solve())
}

func TestConvertConstantTrue(t *testing.T) {
	pb := Convert(New(2, Term{Pos(1)}, Term{}))
	assert.Empty(t, pb.Clauses)
	assert.Equal(t, solver.Sat, solver.New(pb).Solve())
}

func TestConvertMatchesBruteForce(t *testing.T) {
	tests := []*Function{
		New(3, Term{Pos(1), Pos(2)}, Term{Neg(1), Pos(3)}),
		New(1, Term{Pos(1), Neg(1)}),
		New(2, Term{Pos(1), Neg(1)}, Term{Pos(2), Neg(2)}),
		New(4, Term{Pos(1), Pos(2), Pos(3), Pos(4)}),
		New(4, Term{Neg(1)}, Term{Neg(2)}, Term{Neg(3)}, Term{Neg(4)}),
		New(3, Term{Pos(2)}, Term{Neg(2), Pos(1), Pos(3)}),
	}
	for i, f := range tests {
		got := solver.New(Convert(f)).Solve() == solver.Sat
		assert.Equal(t, bruteForceSat(f), got, "function %d: %s", i, f)
	}
}

// randomFunction builds a deterministic pseudo-random SoP function, so the
// converter and the engine can be cross-checked against exhaustive
// evaluation on a non-trivial input.
func randomFunction(rng *rand.Rand, nbVars, nbTerms int) *Function {
	terms := make([]Term, nbTerms)
	for i := range terms {
		size := 1 + rng.Intn(4)
		term := make(Term, 0, size)
		for j := 0; j < size; j++ {
			v := 1 + rng.Intn(nbVars)
			if rng.Intn(2) == 0 {
				term = append(term, Pos(v))
			} else {
				term = append(term, Neg(v))
			}
		}
		terms[i] = term
	}
	return New(nbVars, terms...)
}

func TestConvertRandomFunctions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		f := randomFunction(rng, 2+rng.Intn(11), 1+rng.Intn(6)) // up to 12 vars
		sat := bruteForceSat(f)
		got := solver.New(Convert(f)).Solve() == solver.Sat
		require.Equal(t, sat, got, "function %d: %s", i, f)
	}
}
