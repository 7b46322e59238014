/*
Package sop models boolean functions in sum-of-products form and converts
them into CNF problems that the solver package can decide.

A Function is a disjunction of product Terms, each a conjunction of
Literals over variables 1..NbVars. Functions can be built programmatically:

	f := sop.New(3,
		sop.Term{sop.Pos(1), sop.Pos(2)}, // AB
		sop.Term{sop.Neg(1), sop.Pos(3)}, // A'C
	)

or parsed from the usual text notation:

	f, err := sop.ParseString("AB + A'C")

Convert produces an equisatisfiable CNF problem using one auxiliary
variable per term, keeping the encoding linear in the size of the input.
Solve and SolveAll wrap conversion and search, and always project results
back onto the function's own variables, discarding auxiliary bindings.

Two functions over the same variable space can be combined by Xor, whose
result is satisfiable exactly when the functions differ somewhere;
Equivalent packages that check.
*/
package sop
