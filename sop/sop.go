package sop

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// A Literal is a variable or its negation inside a product term.
// Variables are 1-based integer indices.
type Literal struct {
	Var int
	Neg bool
}

// Pos returns the positive literal for variable v.
func Pos(v int) Literal {
	if v < 1 {
		panic(fmt.Sprintf("invalid variable index %d", v))
	}
	return Literal{Var: v}
}

// Neg returns the negated literal for variable v.
func Neg(v int) Literal {
	if v < 1 {
		panic(fmt.Sprintf("invalid variable index %d", v))
	}
	return Literal{Var: v, Neg: true}
}

// Int returns the literal as a signed CNF integer.
func (l Literal) Int() int {
	if l.Neg {
		return -l.Var
	}
	return l.Var
}

func (l Literal) String() string {
	if l.Neg {
		return fmt.Sprintf("x%d'", l.Var)
	}
	return fmt.Sprintf("x%d", l.Var)
}

// Eval returns the truth value of the literal under the given total
// assignment. model[i] is the binding for variable i+1.
func (l Literal) Eval(model []bool) bool {
	return model[l.Var-1] != l.Neg
}

// A Term is a conjunction of literals: the product part of a sum of
// products. An empty term is the constant true.
type Term []Literal

// Contradictory is true iff the term contains some variable along with its
// negation, making the whole term constant false.
func (t Term) Contradictory() bool {
	polarity := make(map[int]bool, len(t))
	for _, l := range t {
		if neg, seen := polarity[l.Var]; seen && neg != l.Neg {
			return true
		}
		polarity[l.Var] = l.Neg
	}
	return false
}

// Eval returns the truth value of the term under the given assignment.
func (t Term) Eval(model []bool) bool {
	for _, l := range t {
		if !l.Eval(model) {
			return false
		}
	}
	return true
}

// A Function is a boolean function in sum-of-products form: a disjunction
// of product terms over variables 1..NbVars. A function with no term is the
// constant false. Functions are immutable once constructed.
type Function struct {
	NbVars int
	Names  []string // Optional display names, one per variable
	Terms  []Term
}

// New builds a function over nbVars variables from the given terms.
// Every literal must reference a variable in 1..nbVars; a literal outside
// that range is a construction bug, so New panics.
func New(nbVars int, terms ...Term) *Function {
	for _, t := range terms {
		for _, l := range t {
			if l.Var < 1 || l.Var > nbVars {
				panic(fmt.Sprintf("literal %s out of range for %d vars", l, nbVars))
			}
		}
	}
	return &Function{NbVars: nbVars, Terms: terms}
}

// Name returns the display name of variable v, falling back to the x<v>
// notation when no name was recorded.
func (f *Function) Name(v int) string {
	if f.Names != nil && v >= 1 && v <= len(f.Names) && f.Names[v-1] != "" {
		return f.Names[v-1]
	}
	return fmt.Sprintf("x%d", v)
}

// Eval returns the truth value of the function under the given total
// assignment. len(model) must be NbVars.
func (f *Function) Eval(model []bool) bool {
	if len(model) != f.NbVars {
		panic(fmt.Sprintf("assignment over %d vars for a function over %d", len(model), f.NbVars))
	}
	for _, t := range f.Terms {
		if t.Eval(model) {
			return true
		}
	}
	return false
}

// String renders the function in SoP notation, e.g. "AB + A'C".
func (f *Function) String() string {
	if len(f.Terms) == 0 {
		return "0"
	}
	terms := lo.Map(f.Terms, func(t Term, _ int) string { return f.termString(t) })
	return strings.Join(terms, " + ")
}

func (f *Function) termString(t Term) string {
	if len(t) == 0 {
		return "1"
	}
	dotted := false
	parts := make([]string, len(t))
	for i, l := range t {
		name := f.Name(l.Var)
		if len(name) > 1 {
			// Multi-char names need explicit product dots to stay readable.
			dotted = true
		}
		if l.Neg {
			name += "'"
		}
		parts[i] = name
	}
	if dotted {
		return strings.Join(parts, ".")
	}
	return strings.Join(parts, "")
}
