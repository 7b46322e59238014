package sop

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads one boolean function in SoP notation from r.
// A function occupies a single line: product terms joined by '+', literals
// inside a term either adjacent or joined by '.' or '*', negation written
// as a postfix quote (A') or a prefix '!' or '~'. Variables are single
// letters (AB + A'C) or indexed (x1.x2 + ~x3); the two styles cannot be
// mixed within one function. Blank lines and lines starting with '#' are
// ignored.
func Parse(r io.Reader) (*Function, error) {
	scanner := bufio.NewScanner(r)
	line := ""
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		if line != "" {
			return nil, &ParseError{Err: errors.New("more than one function in input")}
		}
		line = text
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read SoP input")
	}
	if line == "" {
		return nil, &ParseError{Err: ErrEmptyInput}
	}
	return ParseString(line)
}

// ParseString parses a single function written in SoP notation.
func ParseString(line string) (*Function, error) {
	raw, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	return resolve(raw)
}

// A rawLit is a literal as it appears in the text, before variable indices
// are settled: either a one-letter name or an explicit x<idx> index.
type rawLit struct {
	name string
	idx  int
	neg  bool
}

func tokenize(line string) ([][]rawLit, error) {
	var (
		terms      [][]rawLit
		cur        []rawLit
		pendingNeg bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		pos := i + 1
		switch {
		case ch == ' ' || ch == '\t':
		case ch == '+':
			if pendingNeg {
				return nil, &ParseError{Pos: pos, Err: errors.New("dangling negation before '+'")}
			}
			if len(cur) == 0 {
				return nil, &ParseError{Pos: pos, Err: errors.New("empty product term")}
			}
			terms = append(terms, cur)
			cur = nil
		case ch == '.' || ch == '*':
			if len(cur) == 0 || pendingNeg {
				return nil, &ParseError{Pos: pos, Err: errors.Errorf("unexpected %q", string(ch))}
			}
		case ch == '!' || ch == '~':
			if pendingNeg {
				return nil, &ParseError{Pos: pos, Err: errors.New("double prefix negation")}
			}
			pendingNeg = true
		case ch == '\'':
			if len(cur) == 0 || pendingNeg {
				return nil, &ParseError{Pos: pos, Err: errors.New("negation quote with no literal before it")}
			}
			cur[len(cur)-1].neg = !cur[len(cur)-1].neg
		case isLetter(ch):
			lit := rawLit{neg: pendingNeg}
			pendingNeg = false
			if (ch == 'x' || ch == 'X') && i+1 < len(runes) && isDigit(runes[i+1]) {
				idx := 0
				for i+1 < len(runes) && isDigit(runes[i+1]) {
					i++
					idx = 10*idx + int(runes[i]-'0')
				}
				if idx == 0 {
					return nil, &ParseError{Pos: pos, Err: errors.New("variable index must be >= 1")}
				}
				lit.idx = idx
			} else {
				lit.name = string(ch)
			}
			cur = append(cur, lit)
		default:
			return nil, &ParseError{Pos: pos, Err: errors.Errorf("unexpected character %q", string(ch))}
		}
	}
	if pendingNeg {
		return nil, &ParseError{Pos: len(runes), Err: errors.New("dangling negation at end of input")}
	}
	if len(cur) == 0 {
		if len(terms) == 0 {
			return nil, &ParseError{Err: ErrEmptyInput}
		}
		return nil, &ParseError{Pos: len(runes), Err: errors.New("trailing '+' with no term after it")}
	}
	return append(terms, cur), nil
}

// resolve assigns dense variable indices: named variables are numbered in
// order of first appearance, indexed ones keep their index.
func resolve(raw [][]rawLit) (*Function, error) {
	indexed, named := false, false
	for _, term := range raw {
		for _, l := range term {
			if l.idx > 0 {
				indexed = true
			} else {
				named = true
			}
		}
	}
	if indexed && named {
		return nil, &ParseError{Err: errors.New("cannot mix named (A) and indexed (x1) variables")}
	}
	var (
		names   []string
		nameIdx = make(map[string]int)
		nbVars  int
	)
	terms := make([]Term, len(raw))
	for i, term := range raw {
		t := make(Term, len(term))
		for j, l := range term {
			v := l.idx
			if named {
				var ok bool
				if v, ok = nameIdx[l.name]; !ok {
					names = append(names, l.name)
					v = len(names)
					nameIdx[l.name] = v
				}
			}
			if v > nbVars {
				nbVars = v
			}
			t[j] = Literal{Var: v, Neg: l.neg}
		}
		terms[i] = t
	}
	f := New(nbVars, terms...)
	f.Names = names
	return f, nil
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
