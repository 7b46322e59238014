package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCNF(t *testing.T) {
	const input = `c a sample problem
p cnf 3 3
1 -2 0
2 3 0

-1 -3 0
`
	pb, err := ParseCNF(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, pb.NbVars)
	require.Len(t, pb.Clauses, 3)
	assert.Equal(t, []int{1, -2}, pb.Clauses[0].Ints())
	assert.Equal(t, []int{2, 3}, pb.Clauses[1].Ints())
	assert.Equal(t, []int{-1, -3}, pb.Clauses[2].Ints())
	assert.Equal(t, Indet, pb.Status)
}

func TestParseCNFErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error // expected errors.Is target, nil if any ParseError will do
	}{
		{"empty input", "", ErrEmptyInput},
		{"comments only", "c nothing here\n", ErrEmptyInput},
		{"clause before header", "1 2 0\n", nil},
		{"fewer clauses than declared", "p cnf 2 2\n1 2 0\n", nil},
		{"more clauses than declared", "p cnf 2 1\n1 2 0\n-1 -2 0\n", nil},
		{"unterminated clause", "p cnf 2 1\n1 2\n", nil},
		{"truncated last clause", "p cnf 2 2\n1 2 0\n-1 -2\n", nil},
		{"literal out of range", "p cnf 2 1\n1 3 0\n", ErrOutOfRangeLiteral},
		{"negative literal out of range", "p cnf 2 1\n-3 1 0\n", ErrOutOfRangeLiteral},
		{"zero inside clause", "p cnf 2 1\n1 0 2 0\n", nil},
		{"bad token", "p cnf 2 1\nfoo bar 0\n", nil},
		{"bad header counts", "p cnf two 1\n1 0\n", nil},
		{"duplicate header", "p cnf 1 0\np cnf 1 0\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCNF(strings.NewReader(tt.input))
			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
			}
		})
	}
}

func TestParseSlice(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {-1, -2}, {3}})
	assert.Equal(t, 3, pb.NbVars)
	assert.Len(t, pb.Clauses, 3)
	assert.Equal(t, Indet, pb.Status)
}

func TestParseSliceEmptyClause(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {}})
	assert.Equal(t, Unsat, pb.Status)
}

func TestEncodeDimacs(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {-1, -2}})
	assert.Equal(t, "p cnf 2 2\n1 2 0\n-1 -2 0\n", pb.CNF())
}

func TestDimacsRoundTrip(t *testing.T) {
	problems := []*Problem{
		NewProblem(4, [][]int{{1, -2, 3}, {4}, {-1, -4}}),
		NewProblem(2, [][]int{{1, 2}, {-1, -2}}),
		NewProblem(3, nil), // no clauses at all
		NewProblem(1, [][]int{{-1}}),
	}
	for _, pb := range problems {
		pb2, err := ParseCNF(strings.NewReader(pb.CNF()))
		require.NoError(t, err)
		assert.Equal(t, pb.NbVars, pb2.NbVars)
		require.Len(t, pb2.Clauses, len(pb.Clauses))
		for i := range pb.Clauses {
			assert.Equal(t, pb.Clauses[i].Ints(), pb2.Clauses[i].Ints())
		}
	}
}

func TestNewProblemPanicsOnBadLiteral(t *testing.T) {
	assert.Panics(t, func() { NewProblem(2, [][]int{{3}}) })
	assert.Panics(t, func() { NewProblem(2, [][]int{{1, 0}}) })
}
