package sop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopsat/sopsat/solver"
)

func TestSolveProjectsAuxiliaries(t *testing.T) {
	f, err := ParseString("AB + A'C")
	require.NoError(t, err)
	model := Solve(f)
	require.NotNil(t, model)
	assert.Len(t, model, f.NbVars)
	assert.True(t, f.Eval(model))
}

func TestSolveUnsatisfiable(t *testing.T) {
	assert.Nil(t, Solve(New(2)))
	assert.Nil(t, Solve(New(1, Term{Pos(1), Neg(1)})))
}

func TestSolveAllCountsMatchBruteForce(t *testing.T) {
	tests := []*Function{
		New(3, Term{Pos(1), Pos(2)}, Term{Neg(1), Pos(3)}),
		New(2, Term{Pos(1)}, Term{Pos(2)}),
		New(3, Term{}),
		New(4, Term{Pos(1), Neg(2)}, Term{Pos(3)}, Term{Neg(4)}),
	}
	for i, f := range tests {
		models, err := SolveAll(f)
		require.NoError(t, err)
		assert.Equal(t, bruteForceCount(f), len(models), "function %d: %s", i, f)
		for _, m := range models {
			assert.Len(t, m, f.NbVars)
			assert.True(t, f.Eval(m), "function %d: model %v", i, m)
		}
	}
}

func TestSolveAllOverSubset(t *testing.T) {
	// x1 alone: over {x1} the two full models collapse into one.
	f := New(2, Term{Pos(1)})
	full, err := SolveAll(f)
	require.NoError(t, err)
	assert.Len(t, full, 2)

	projected, err := SolveAllOver(f, []int{1})
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true}}, projected)
}

func TestSolveAllOverReorders(t *testing.T) {
	f := New(2, Term{Pos(1), Neg(2)})
	models, err := SolveAllOver(f, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, true}}, models)
}

func TestSolveAllOverOutOfRange(t *testing.T) {
	f := New(2, Term{Pos(1)})
	_, err := SolveAllOver(f, []int{3})
	assert.ErrorIs(t, err, solver.ErrOutOfRangeLiteral)
	_, err = SolveAllOver(f, []int{0})
	assert.ErrorIs(t, err, solver.ErrOutOfRangeLiteral)
}

func TestSolveAllDeterministic(t *testing.T) {
	f := New(3, Term{Pos(1), Pos(2)}, Term{Neg(1), Pos(3)})
	first, err := SolveAll(f)
	require.NoError(t, err)
	second, err := SolveAll(f)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
