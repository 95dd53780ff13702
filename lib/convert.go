package lib

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// ToPostfix reorders infix tokens into postfix order with an operator stack.
//
// It differs from textbook shunting-yard in one place: after a ")" closes a
// group, an operator sitting directly under the matching "(" is popped right
// away instead of waiting for the next comparison. So "1 - (2 + 3) * 4"
// becomes [1, 2, 3, +, -, 4, *]. Tree shape depends on this.
func ToPostfix(tokens TokenReader) ([]Token, error) {
	postfix := []Token{}
	operators := arraystack.New()
	index := -1
	expectOperand := true

	for {
		tok, done := tokens.Next()
		if done {
			break
		}
		index++

		switch {
		case tok.IsLiteral():
			postfix = append(postfix, tok)
			expectOperand = false

		case tok.IsOperator():
			if expectOperand {
				return nil, malformedf("missing operand before <%s>", tokenString(index, tok))
			}
			if next, done := tokens.Peek(); done || next.IsOperator() || next.tokType == tokenTypeRParen {
				return nil, malformedf("missing operand after <%s>", tokenString(index, tok))
			}
			for {
				top, ok := peekToken(operators)
				if !ok || !top.IsOperator() || precedence(top) > precedence(tok) {
					break
				}
				operators.Pop()
				postfix = append(postfix, top)
			}
			operators.Push(tok)
			expectOperand = true

		case tok.tokType == tokenTypeLParen:
			if next, done := tokens.Peek(); !done && next.tokType == tokenTypeRParen {
				return nil, malformedf("empty parentheses at %s", tokenString(index, tok))
			}
			operators.Push(tok)
			expectOperand = true

		case tok.tokType == tokenTypeRParen:
			for {
				top, ok := popToken(operators)
				if !ok {
					return nil, malformedf("unmatched ')' at %s", tokenString(index, tok))
				}
				if top.tokType == tokenTypeLParen {
					break
				}
				postfix = append(postfix, top)
			}
			if top, ok := peekToken(operators); ok && top.IsOperator() {
				operators.Pop()
				postfix = append(postfix, top)
			}
			expectOperand = false

		default:
			return nil, malformedf("unrecognized token <%s>", tokenString(index, tok))
		}
	}

	if index < 0 {
		return nil, malformedf("empty expression")
	}

	for !operators.Empty() {
		top, _ := popToken(operators)
		if top.tokType == tokenTypeLParen {
			return nil, malformedf("unmatched '(' in expression")
		}
		postfix = append(postfix, top)
	}

	return postfix, nil
}

// precedence ranks operators; a lower rank binds tighter.
func precedence(tok Token) int {
	switch tok.tokType {
	case tokenTypeAsterisk, tokenTypeSlash, tokenTypePercent:
		return 1
	case tokenTypePlus, tokenTypeMinus:
		return 2
	default:
		return 100
	}
}

func peekToken(stack *arraystack.Stack) (Token, bool) {
	value, ok := stack.Peek()
	if !ok {
		return Token{}, false
	}
	return value.(Token), true
}

func popToken(stack *arraystack.Stack) (Token, bool) {
	value, ok := stack.Pop()
	if !ok {
		return Token{}, false
	}
	return value.(Token), true
}
