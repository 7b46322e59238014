/*
Package solver gives access to a simple SAT solver over CNF formulas.
Its input can be either a DIMACS CNF stream or a solver.Problem object
containing the set of clauses to be solved.

No matter the input format, the solver.Solver will solve the problem and
indicate whether it is satisfiable or not. In the former case, it can
provide a model, i.e a set of bindings for all variables that makes the
formula true, or enumerate every such model.

Describing a problem

A problem can be described in several ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the
following content:

    p cnf 2 2
    1 2 0
    -1 -2 0

the programmer can create the Problem by doing:

    pb, err := solver.ParseCNF(f)

The parser is strict: the header must come first, every clause line must be
0-terminated, the number of clause lines must match the header, and a
literal referencing a variable beyond the declared count is rejected with
ErrOutOfRangeLiteral.

2. create the equivalent list of lists of literals:

    pb := solver.ParseSlice([][]int{{1, 2}, {-1, -2}})

or, when the total number of variables cannot be inferred from the clauses:

    pb := solver.NewProblem(3, [][]int{{1, 2}, {-1, -2}})

Solving a problem

To solve a problem, one creates a solver with said problem. The Solve
method searches for one model and returns the corresponding status:

    s := solver.New(pb)
    if s.Solve() == solver.Sat {
        m := s.Model()
        ...
    }

The search is a plain chronological backtracking loop with unit
propagation: branch on the lowest free variable, true first, undo the
latest decision on conflict. There is no clause learning and no restarting,
which keeps results reproducible for a fixed input.

To find every model instead, use SolveAll or Enumerate; after each model is
found a blocking clause is added so the search moves on to a different
assignment. Blocking clauses stay local to the solver: the Problem itself
is never modified.

A caller needing a time or step bound can set the Limit hook, which is
consulted before every decision; when it returns true the search ends with
the distinct Aborted status instead of a result.
*/
package solver
