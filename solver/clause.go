package solver

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// A Clause is a disjunction of literals.
type Clause struct {
	lits []Lit
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Ints returns the clause as a slice of CNF literals.
func (c *Clause) Ints() []int {
	return lo.Map(c.lits, func(l Lit, _ int) int { return l.Int() })
}

// CNF returns the DIMACS representation of the clause, 0-terminated.
func (c *Clause) CNF() string {
	fields := lo.Map(c.lits, func(l Lit, _ int) string { return strconv.Itoa(l.Int()) })
	fields = append(fields, "0")
	return strings.Join(fields, " ")
}
