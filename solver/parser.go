package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseCNF parses a DIMACS CNF stream and returns the corresponding Problem.
// This is the sole entry point for externally authored CNF input, so it is
// strict: the "p cnf" header must precede any clause, each clause line must
// be 0-terminated, every literal must reference a declared variable and the
// number of clause lines must match the header.
func ParseCNF(f io.Reader) (*Problem, error) {
	var (
		scanner            = bufio.NewScanner(f)
		nbVars, nbClauses  int
		clauses            [][]int
		headerSeen, capped bool
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' { // Ignore blank lines & comments
			continue
		}
		if line[0] == 'p' {
			if headerSeen {
				return nil, &ParseError{Line: lineNo, Err: errors.New("duplicate problem header")}
			}
			var err error
			if nbVars, nbClauses, err = parseHeader(line, lineNo); err != nil {
				return nil, err
			}
			headerSeen = true
			clauses = make([][]int, 0, nbClauses)
			continue
		}
		if !headerSeen {
			return nil, &ParseError{Line: lineNo, Err: errors.Errorf("clause %q found before the problem header", line)}
		}
		if len(clauses) == nbClauses {
			capped = true
			continue // Keep scanning so the error reports the total count
		}
		clause, err := parseClauseLine(line, lineNo, nbVars)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read DIMACS input")
	}
	if !headerSeen {
		return nil, &ParseError{Err: ErrEmptyInput}
	}
	if capped || len(clauses) != nbClauses {
		return nil, &ParseError{Err: errors.Errorf("header declared %d clauses but the input holds a different number", nbClauses)}
	}
	return NewProblem(nbVars, clauses), nil
}

func parseHeader(line string, lineNo int) (nbVars, nbClauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return 0, 0, &ParseError{Line: lineNo, Err: errors.Errorf("invalid header %q", line)}
	}
	if nbVars, err = strconv.Atoi(fields[2]); err != nil || nbVars < 0 {
		return 0, 0, &ParseError{Line: lineNo, Err: errors.Errorf("nbvars is not a valid count: %q", fields[2])}
	}
	if nbClauses, err = strconv.Atoi(fields[3]); err != nil || nbClauses < 0 {
		return 0, 0, &ParseError{Line: lineNo, Err: errors.Errorf("nbclauses is not a valid count: %q", fields[3])}
	}
	return nbVars, nbClauses, nil
}

func parseClauseLine(line string, lineNo, nbVars int) ([]int, error) {
	fields := strings.Fields(line)
	if fields[len(fields)-1] != "0" {
		return nil, &ParseError{Line: lineNo, Err: errors.New("clause line not terminated by 0")}
	}
	lits := make([]int, 0, len(fields)-1)
	for _, field := range fields[:len(fields)-1] {
		val, err := strconv.Atoi(field)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: errors.Errorf("invalid literal %q", field)}
		}
		if val == 0 {
			return nil, &ParseError{Line: lineNo, Err: errors.New("literal 0 in the middle of a clause")}
		}
		if val > nbVars || -val > nbVars {
			return nil, &ParseError{Line: lineNo, Err: errors.Wrapf(ErrOutOfRangeLiteral, "literal %d for a problem with %d vars", val, nbVars)}
		}
		lits = append(lits, val)
	}
	return lits, nil
}
