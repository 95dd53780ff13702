package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedExpression covers input the converter cannot make sense
	// of: unmatched parentheses, unknown characters, empty groups.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrArithmetic is returned for division or modulo by zero.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrStructural means the postfix sequence does not describe a tree of
	// binary operators.
	ErrStructural = errors.New("structural error")
)

func malformedf(msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedExpression, fmt.Sprintf(msg, args...))
}

func arithmeticf(msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrArithmetic, fmt.Sprintf(msg, args...))
}

func structuralf(msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrStructural, fmt.Sprintf(msg, args...))
}

func tokenString(index int, tok Token) string {
	return fmt.Sprintf("%d -> %s", index, tokenValueString(tok))
}

func tokenValueString(tok Token) string {
	switch tok.tokType {
	case tokenTypeWord:
		return fmt.Sprintf("word: %q", tok.Value)
	case tokenTypeNumber:
		return fmt.Sprintf("number: %s", tok.Value)
	default:
		return tok.Value
	}
}
