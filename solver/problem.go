package solver

import (
	"fmt"
	"io"
	"strings"
)

// A Problem is a CNF formula: a list of clauses over variables 1..NbVars.
// It is immutable once constructed; the solver never modifies it.
type Problem struct {
	NbVars  int       // Total nb of vars
	Clauses []*Clause // All clauses, including unit ones
	Status  Status    // Trivial status: Unsat if an empty clause was given, Indet otherwise
}

// NewProblem builds a problem from a slice of slices of CNF literals.
// All literals must reference variables in 1..nbVars: a literal outside that
// range denotes a construction bug in the caller, not bad user input, so it
// panics. An empty clause makes the problem trivially Unsat.
func NewProblem(nbVars int, clauses [][]int) *Problem {
	pb := &Problem{NbVars: nbVars}
	for _, clause := range clauses {
		if len(clause) == 0 {
			pb.Status = Unsat
		}
		lits := make([]Lit, len(clause))
		for i, val := range clause {
			if val == 0 {
				panic("null literal in clause")
			}
			if val > nbVars || -val > nbVars {
				panic(fmt.Sprintf("literal %d out of range for %d vars", val, nbVars))
			}
			lits[i] = IntToLit(val)
		}
		pb.Clauses = append(pb.Clauses, NewClause(lits))
	}
	return pb
}

// ParseSlice parses a slice of slices of CNF literals and returns the
// equivalent problem. The number of variables is inferred from the highest
// variable index used.
func ParseSlice(cnf [][]int) *Problem {
	nbVars := 0
	for _, clause := range cnf {
		for _, val := range clause {
			if val < 0 {
				val = -val
			}
			if val > nbVars {
				nbVars = val
			}
		}
	}
	return NewProblem(nbVars, cnf)
}

// CNF returns a DIMACS CNF representation of the problem.
func (pb *Problem) CNF() string {
	var sb strings.Builder
	if err := pb.ToDIMACS(&sb); err != nil {
		panic(err) // Writing to a strings.Builder cannot fail
	}
	return sb.String()
}

// ToDIMACS writes the problem on w in DIMACS CNF syntax:
// a header line declaring the nb of vars and clauses, then one
// 0-terminated line per clause.
func (pb *Problem) ToDIMACS(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", pb.NbVars, len(pb.Clauses)); err != nil {
		return err
	}
	for _, clause := range pb.Clauses {
		if _, err := fmt.Fprintf(w, "%s\n", clause.CNF()); err != nil {
			return err
		}
	}
	return nil
}

// Accepts returns true iff the given total assignment satisfies every
// clause of the problem. model[i] is the binding for variable i+1.
func (pb *Problem) Accepts(model []bool) bool {
	if len(model) != pb.NbVars {
		return false
	}
	for _, clause := range pb.Clauses {
		sat := false
		for i := 0; i < clause.Len(); i++ {
			lit := clause.Get(i)
			if model[lit.Var()] == lit.IsPositive() {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
