package sop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteral(t *testing.T) {
	assert.Equal(t, 3, Pos(3).Int())
	assert.Equal(t, -3, Neg(3).Int())
	assert.True(t, Pos(1).Eval([]bool{true}))
	assert.False(t, Neg(1).Eval([]bool{true}))
	assert.Panics(t, func() { Pos(0) })
	assert.Panics(t, func() { Neg(-1) })
}

func TestTermContradictory(t *testing.T) {
	assert.True(t, Term{Pos(1), Neg(1)}.Contradictory())
	assert.True(t, Term{Pos(2), Pos(1), Neg(2)}.Contradictory())
	assert.False(t, Term{Pos(1), Pos(2)}.Contradictory())
	assert.False(t, Term{Pos(1), Pos(1)}.Contradictory())
	assert.False(t, Term{}.Contradictory())
}

func TestFunctionEval(t *testing.T) {
	// AB + A'C
	f := New(3, Term{Pos(1), Pos(2)}, Term{Neg(1), Pos(3)})
	tests := []struct {
		model []bool
		want  bool
	}{
		{[]bool{true, true, false}, true},   // AB holds
		{[]bool{false, false, true}, true},  // A'C holds
		{[]bool{true, false, true}, false},  // neither
		{[]bool{false, true, false}, false}, // neither
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Eval(tt.model), "model %v", tt.model)
	}
}

func TestFunctionEvalDegenerate(t *testing.T) {
	assert.False(t, New(2).Eval([]bool{true, true}), "no term is constant false")
	assert.True(t, New(2, Term{}).Eval([]bool{false, false}), "empty term is constant true")
}

func TestNewPanicsOnOutOfRangeLiteral(t *testing.T) {
	assert.Panics(t, func() { New(2, Term{Pos(3)}) })
}

func TestFunctionString(t *testing.T) {
	f := New(3, Term{Pos(1), Pos(2)}, Term{Neg(1), Pos(3)})
	assert.Equal(t, "x1.x2 + x1'.x3", f.String())
	f.Names = []string{"A", "B", "C"}
	assert.Equal(t, "AB + A'C", f.String())
	assert.Equal(t, "0", New(2).String())
	assert.Equal(t, "1", New(2, Term{}).String())
}
