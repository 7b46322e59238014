package solver

import (
	"fmt"

	"github.com/pkg/errors"
)

// maxFreeVars bounds the expansion of variables left unconstrained by the
// formula when enumerating models: a satisfied state with f free variables
// stands for 2^f total assignments.
const maxFreeVars = 20

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions    int // How many branching decisions were made
	NbPropagations int // How many literals were forced by unit propagation
	NbConflicts    int // How many conflicts were met
	NbSolutions    int // How many models were found so far (enumeration only)
}

// The level a decision was made.
// A negative value means "negative assignment at that level".
// A positive value means "positive assignment at that level".
type decLevel int32

// A Model is a binding for several variables.
// It can be totally bound (i.e all vars have a true or false binding)
// or only partially (i.e some vars have no binding yet or their binding has
// no impact). Each var, in order, is associated with a binding. Bindings are
// implemented as decision levels:
// - a 0 value means the variable is free,
// - a positive value means the variable was set to true at the given decLevel,
// - a negative value means the variable was set to false at the given decLevel.
type Model []decLevel

func (m Model) String() string {
	bound := make(map[int]decLevel)
	for i := range m {
		if m[i] != 0 {
			bound[i+1] = m[i]
		}
	}
	return fmt.Sprintf("%v", bound)
}

// A decision frame remembers one branching decision so the search can be
// driven iteratively, without native recursion.
type frame struct {
	lit     Lit  // Decision literal currently tried
	flipped bool // True iff both polarities were tried at this level
	mark    int  // Trail length right before the decision
}

// A Solver solves a given problem. It is the main data structure.
// The search is a chronological backtracking loop: propagate units to a fix
// point, branch on the lowest-indexed free variable (true first), undo the
// latest decision on conflict. No clause learning, no restarts.
type Solver struct {
	// Limit, when non-nil, is called before each branching decision.
	// Returning true stops the search with the Aborted status.
	Limit func(Stats) bool
	// Stats about the current run.
	Stats Stats

	nbVars    int
	status    Status
	clauses   []*Clause // Problem clauses, then blocking clauses during enumeration
	nbProblem int       // How many clauses belong to the problem itself
	model     Model
	trail     []Lit // Current assignment stack
	stack     []frame
	lastModel Model // Placeholder for last model found
}

// New makes a solver for the given problem.
// The problem is never modified: blocking clauses added while enumerating
// models stay local to the solver.
func New(pb *Problem) *Solver {
	if pb.Status == Unsat {
		return &Solver{status: Unsat}
	}
	s := &Solver{
		nbVars:    pb.NbVars,
		status:    Indet,
		clauses:   make([]*Clause, len(pb.Clauses)),
		nbProblem: len(pb.Clauses),
		model:     make(Model, pb.NbVars),
		trail:     make([]Lit, 0, pb.NbVars),
	}
	copy(s.clauses, pb.Clauses)
	return s
}

// Status returns the status of the last search: Sat, Unsat or Aborted, or
// Indet if no search ran yet. After a full enumeration the status is Unsat,
// meaning the search tree was exhausted.
func (s *Solver) Status() Status {
	return s.status
}

// litStatus returns whether the literal is made true (Sat) or false (Unsat)
// by the current bindings, or if it is unbound (Indet).
func (s *Solver) litStatus(l Lit) Status {
	assign := s.model[l.Var()]
	if assign == 0 {
		return Indet
	}
	if assign > 0 == l.IsPositive() {
		return Sat
	}
	return Unsat
}

func (s *Solver) assign(l Lit, lvl decLevel) {
	if l.IsPositive() {
		s.model[l.Var()] = lvl
	} else {
		s.model[l.Var()] = -lvl
	}
	s.trail = append(s.trail, l)
}

// undo unbinds every variable assigned after the given trail mark.
func (s *Solver) undo(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		s.model[s.trail[i].Var()] = 0
	}
	s.trail = s.trail[:mark]
}

// examine inspects a clause under the current partial assignment.
// It reports whether the clause is satisfied and, if not, how many literals
// are still unbound; when exactly one is, unit is that literal.
func (s *Solver) examine(c *Clause) (sat bool, unit Lit, free int) {
	for i := 0; i < c.Len(); i++ {
		lit := c.Get(i)
		switch s.litStatus(lit) {
		case Sat:
			return true, unit, free
		case Indet:
			unit = lit
			free++
		}
	}
	return false, unit, free
}

// propagate runs unit propagation to a fix point at the current decision
// level. It returns a falsified clause if a conflict arises, nil otherwise.
func (s *Solver) propagate() *Clause {
	lvl := decLevel(len(s.stack)) + 1
	for {
		again := false
		for _, c := range s.clauses {
			sat, unit, free := s.examine(c)
			if sat {
				continue
			}
			switch free {
			case 0:
				return c
			case 1:
				s.assign(unit, lvl)
				s.Stats.NbPropagations++
				again = true
			}
		}
		if !again {
			return nil
		}
	}
}

// satisfied is true iff every clause has at least one true literal.
func (s *Solver) satisfied() bool {
	for _, c := range s.clauses {
		if sat, _, _ := s.examine(c); !sat {
			return false
		}
	}
	return true
}

// nextVar returns the lowest-indexed unbound variable, or -1 if all
// variables are bound. The ascending tie-break keeps results reproducible.
func (s *Solver) nextVar() Var {
	for v := 0; v < s.nbVars; v++ {
		if s.model[v] == 0 {
			return Var(v)
		}
	}
	return -1
}

func (s *Solver) decide(v Var) {
	s.stack = append(s.stack, frame{lit: v.Lit(), mark: len(s.trail)})
	s.assign(v.Lit(), decLevel(len(s.stack))+1)
	s.Stats.NbDecisions++
}

// backtrack undoes the most recent decision and its propagated consequences.
// If the untried polarity remains it is assigned and backtrack returns true;
// otherwise the frame is popped and backtracking continues. False means the
// whole tree is exhausted.
func (s *Solver) backtrack() bool {
	for len(s.stack) > 0 {
		f := &s.stack[len(s.stack)-1]
		s.undo(f.mark)
		if !f.flipped {
			f.flipped = true
			f.lit = f.lit.Negation()
			s.assign(f.lit, decLevel(len(s.stack))+1)
			return true
		}
		s.stack = s.stack[:len(s.stack)-1]
	}
	return false
}

func (s *Solver) stopRequested(stop <-chan struct{}) bool {
	if s.Limit != nil && s.Limit(s.Stats) {
		return true
	}
	if stop != nil {
		select {
		case <-stop:
			return true
		default:
		}
	}
	return false
}

// searchOne runs the decision loop until a satisfied state is reached, the
// tree is exhausted, or the caller aborts. Top-level units must have been
// propagated beforehand.
func (s *Solver) searchOne(stop <-chan struct{}) Status {
	for {
		if s.satisfied() {
			return Sat
		}
		if s.stopRequested(stop) {
			return Aborted
		}
		v := s.nextVar()
		if v == -1 {
			// All vars bound without conflict: every clause is satisfied.
			return Sat
		}
		s.decide(v)
		for {
			conflict := s.propagate()
			if conflict == nil {
				break
			}
			s.Stats.NbConflicts++
			if !s.backtrack() {
				return Unsat
			}
		}
	}
}

func (s *Solver) saveModel() {
	if s.lastModel == nil {
		s.lastModel = make(Model, len(s.model))
	}
	copy(s.lastModel, s.model)
}

// Solve searches for a single satisfying assignment and returns the
// appropriate status: Sat, Unsat, or Aborted if the Limit hook fired.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	if conflict := s.propagate(); conflict != nil {
		s.status = Unsat
		return s.status
	}
	s.status = s.searchOne(nil)
	if s.status == Sat {
		s.saveModel()
	}
	return s.status
}

// Model returns a slice that associates, to each variable, its binding.
// Variables the search left unconstrained are reported false, so the
// assignment is always total. If no model was found, the method panics.
func (s *Solver) Model() []bool {
	if s.lastModel == nil {
		panic("cannot call Model() on a solver that found no model")
	}
	res := make([]bool, s.nbVars)
	for i, lvl := range s.lastModel {
		res[i] = lvl > 0
	}
	return res
}

// expandModel turns the current (possibly partial) model into total
// assignments, one per combination of free variables, and hands each to
// emit. The expansion is refused beyond 2^maxFreeVars assignments.
func (s *Solver) expandModel(emit func([]bool)) (int, error) {
	unbound := make([]int, 0, s.nbVars)
	model := make([]bool, s.nbVars)
	for i, lvl := range s.model {
		if lvl == 0 {
			unbound = append(unbound, i)
		} else {
			model[i] = lvl > 0
		}
	}
	if len(unbound) > maxFreeVars {
		return 0, errors.Wrapf(ErrTooManySolutions, "%d variables unconstrained", len(unbound))
	}
	nb := 1 << len(unbound)
	if emit != nil {
		for i := 0; i < nb; i++ {
			for j, idx := range unbound {
				model[idx] = i&(1<<j) != 0
			}
			model2 := make([]bool, len(model))
			copy(model2, model)
			emit(model2)
		}
	}
	return nb, nil
}

// blockingClause is the disjunction of the negations of the current decision
// literals. Adding it after a model was found forces the search away from
// that model on continued enumeration.
func (s *Solver) blockingClause() []Lit {
	lits := make([]Lit, len(s.stack))
	for i, f := range s.stack {
		lits[i] = f.lit.Negation()
	}
	return lits
}

// enumerate finds every model of the problem, in deterministic discovery
// order, handing each one to emit. Blocking clauses added along the way are
// dropped before returning, so the solver's clause set ends as it started.
func (s *Solver) enumerate(emit func([]bool), stop <-chan struct{}) (nb int, err error) {
	defer func() { s.clauses = s.clauses[:s.nbProblem] }()
	if s.status == Unsat {
		return 0, nil
	}
	s.status = Indet
	if conflict := s.propagate(); conflict != nil {
		s.status = Unsat
		return 0, nil
	}
	for {
		switch s.searchOne(stop) {
		case Aborted:
			s.status = Aborted
			return nb, nil
		case Unsat:
			s.status = Unsat
			return nb, nil
		case Sat:
			s.saveModel()
			n, err := s.expandModel(emit)
			if err != nil {
				s.status = Aborted
				return nb, err
			}
			nb += n
			s.Stats.NbSolutions += n
			block := s.blockingClause()
			if len(block) == 0 {
				// The model was entirely forced: nothing else to find.
				s.status = Unsat
				return nb, nil
			}
			s.clauses = append(s.clauses, NewClause(block))
			if !s.backtrack() {
				s.status = Unsat
				return nb, nil
			}
			for {
				conflict := s.propagate()
				if conflict == nil {
					break
				}
				s.Stats.NbConflicts++
				if !s.backtrack() {
					s.status = Unsat
					return nb, nil
				}
			}
		}
	}
}

// SolveAll returns every satisfying assignment of the problem.
// The returned set is empty if the problem is unsatisfiable. Ordering
// reflects discovery order and is deterministic for a given problem.
func (s *Solver) SolveAll() ([][]bool, error) {
	var models [][]bool
	_, err := s.enumerate(func(m []bool) { models = append(models, m) }, nil)
	return models, err
}

// Enumerate returns the total number of models for the given problem.
// If models is non-nil, each model is written to it as soon as it is
// discovered, and the channel is closed at the end of the call.
// Closing stop aborts the enumeration; the count found so far is returned
// and the solver's status is Aborted.
func (s *Solver) Enumerate(models chan<- []bool, stop <-chan struct{}) (int, error) {
	if models != nil {
		defer close(models)
	}
	var emit func([]bool)
	if models != nil {
		emit = func(m []bool) { models <- m }
	}
	return s.enumerate(emit, stop)
}

// CountModels returns the total number of models for the given problem.
func (s *Solver) CountModels() (int, error) {
	return s.enumerate(nil, nil)
}
