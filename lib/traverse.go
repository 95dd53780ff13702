package lib

import (
	"math"
	"strconv"
	"strings"
)

// Prefix renders the tree operator first, e.g. "+ 3 * 4 2".
func (t *Tree) Prefix() string {
	tokens := []string{}
	prefixRecursive(t.Root, &tokens)
	return strings.Join(tokens, " ")
}

func prefixRecursive(current *Node, tokens *[]string) {
	if current == nil {
		return
	}
	*tokens = append(*tokens, current.Token.Value)
	prefixRecursive(current.Left, tokens)
	prefixRecursive(current.Right, tokens)
}

// Infix renders the tree with every operator and its operands wrapped in
// parentheses, e.g. "(3+(4*2))". Leaves print bare.
func (t *Tree) Infix() string {
	var sb strings.Builder
	infixRecursive(t.Root, &sb)
	return sb.String()
}

func infixRecursive(current *Node, sb *strings.Builder) {
	if current == nil {
		return
	}
	if current.Left != nil {
		sb.WriteString("(")
		infixRecursive(current.Left, sb)
	}
	sb.WriteString(current.Token.Value)
	if current.Right != nil {
		infixRecursive(current.Right, sb)
		sb.WriteString(")")
	}
}

// Postfix renders the tree operands first, e.g. "3 4 2 * +".
func (t *Tree) Postfix() string {
	tokens := []string{}
	postfixRecursive(t.Root, &tokens)
	return strings.Join(tokens, " ")
}

func postfixRecursive(current *Node, tokens *[]string) {
	if current == nil {
		return
	}
	postfixRecursive(current.Left, tokens)
	postfixRecursive(current.Right, tokens)
	*tokens = append(*tokens, current.Token.Value)
}

// Evaluate computes the integer value of the tree. Division truncates toward
// zero and the sign of a remainder follows the dividend. Results that do not
// fit in an int are an ErrArithmetic, never wrapped around.
func (t *Tree) Evaluate() (int, error) {
	if t.Root == nil {
		return 0, structuralf("cannot evaluate an empty tree")
	}
	return evaluateRecursive(t.Root)
}

func evaluateRecursive(current *Node) (int, error) {
	if current.isLeaf() {
		value, err := strconv.Atoi(current.Token.Value)
		if err != nil {
			return 0, malformedf("bad integer literal %q", current.Token.Value)
		}
		return value, nil
	}

	if current.Left == nil || current.Right == nil {
		return 0, structuralf("operator %s is missing an operand", current.Token.Value)
	}

	left, err := evaluateRecursive(current.Left)
	if err != nil {
		return 0, err
	}
	right, err := evaluateRecursive(current.Right)
	if err != nil {
		return 0, err
	}

	switch current.Token.tokType {
	case tokenTypePlus:
		if (right > 0 && left > math.MaxInt-right) || (right < 0 && left < math.MinInt-right) {
			return 0, arithmeticf("overflow in %d + %d", left, right)
		}
		return left + right, nil
	case tokenTypeMinus:
		if (right < 0 && left > math.MaxInt+right) || (right > 0 && left < math.MinInt+right) {
			return 0, arithmeticf("overflow in %d - %d", left, right)
		}
		return left - right, nil
	case tokenTypeAsterisk:
		product := left * right
		if left != 0 && (product/left != right || (left == -1 && right == math.MinInt)) {
			return 0, arithmeticf("overflow in %d * %d", left, right)
		}
		return product, nil
	case tokenTypeSlash:
		if right == 0 {
			return 0, arithmeticf("division by zero in %d / %d", left, right)
		}
		if left == math.MinInt && right == -1 {
			return 0, arithmeticf("overflow in %d / %d", left, right)
		}
		return left / right, nil
	case tokenTypePercent:
		if right == 0 {
			return 0, arithmeticf("modulo by zero in %d %% %d", left, right)
		}
		return left % right, nil
	}

	return 0, structuralf("unknown operator <%s>", current.Token.Value)
}
