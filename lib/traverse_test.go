package lib

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseTree(t *testing.T, expression string) *Tree {
	tree, err := Parse(expression)
	require.NoError(t, err, expression)
	return tree
}

func TestTraversals(t *testing.T) {
	cases := []struct {
		in, prefix, infix, postfix string
	}{
		{"7", "7", "7", "7"},
		{"3 + 4 * 2", "+ 3 * 4 2", "(3+(4*2))", "3 4 2 * +"},
		{"(3 + 4) * 2", "* + 3 4 2", "((3+4)*2)", "3 4 + 2 *"},
		{"8 / 2 / 2", "/ / 8 2 2", "((8/2)/2)", "8 2 / 2 /"},
		{"10 % 3", "% 10 3", "(10%3)", "10 3 %"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			tree := parseTree(t, tc.in)
			require.Equal(t, tc.prefix, tree.Prefix())
			require.Equal(t, tc.infix, tree.Infix())
			require.Equal(t, tc.postfix, tree.Postfix())
		})
	}
}

func TestTraversalsEmptyTree(t *testing.T) {
	tree := NewTree()
	require.Equal(t, "", tree.Prefix())
	require.Equal(t, "", tree.Infix())
	require.Equal(t, "", tree.Postfix())
}

func TestInfixRoundTrip(t *testing.T) {
	tree := parseTree(t, "12*(2+6*6)+16/4-90/1")
	again := parseTree(t, tree.Infix())
	require.Equal(t, tree.Postfix(), again.Postfix())
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		in  string
		out int
	}{
		{"7", 7},
		{"3 + 4 * 2", 11},
		{"(3 + 4) * 2", 14},
		{"10 % 3", 1},
		{"8 / 2 / 2", 2},
		{"5 - 2 - 1", 2},
		{"7 / 2", 3},
		{"1 - 8 / 3", -1},
		{"(1 - 8) / 3", -2},
		{"(1 - 8) % 3", -1},
		{"2 * 3 % 4", 2},
		{"100 - 10 * 3 + 4", 74},
		{"12*(2+6*6)+16/4-90/1", 370},
		{"((2 + 3) * (4 - 1)) % 7", 1},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			value, err := parseTree(t, tc.in).Evaluate()
			require.NoError(t, err)
			require.Equal(t, tc.out, value)
		})
	}
}

func TestEvaluateEagerGroupFlush(t *testing.T) {
	value, err := parseTree(t, "1 - (2 + 3) * 4").Evaluate()
	require.NoError(t, err)
	require.Equal(t, -16, value)
}

func TestEvaluateDivideByZero(t *testing.T) {
	for _, in := range []string{"6 / 0", "6 % 0", "1 + 6 / (3 - 3)"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseTree(t, in).Evaluate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrArithmetic), err.Error())
		})
	}
}

func TestEvaluateLiteralOverflow(t *testing.T) {
	_, err := parseTree(t, "99999999999999999999999 + 1").Evaluate()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedExpression))
}

func TestEvaluateEmptyTree(t *testing.T) {
	_, err := NewTree().Evaluate()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrStructural))
}

func TestEvaluateOverflow(t *testing.T) {
	cases := []string{
		"9999999999 * 9999999999",
		"9223372036854775807 + 1",
		"0 - 9223372036854775807 - 2",
		"(0 - 9223372036854775807 - 1) / (0 - 1)",
		"(0 - 1) * (0 - 9223372036854775807 - 1)",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := parseTree(t, in).Evaluate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrArithmetic), err.Error())
		})
	}
}

func TestEvaluateAtIntLimits(t *testing.T) {
	value, err := parseTree(t, "9223372036854775806 + 1").Evaluate()
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, value)

	value, err = parseTree(t, "0 - 9223372036854775807 - 1").Evaluate()
	require.NoError(t, err)
	require.Equal(t, math.MinInt, value)

	value, err = parseTree(t, "(0 - 9223372036854775807 - 1) % (0 - 1)").Evaluate()
	require.NoError(t, err)
	require.Equal(t, 0, value)
}
