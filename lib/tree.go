package lib

import (
	"fmt"

	errortree "github.com/Konstantin8105/errors"
)

// Node is one token in an expression tree. Leaves hold literals and interior
// nodes hold operators with both children set.
type Node struct {
	Token Token
	Left  *Node
	Right *Node
}

func (n *Node) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree owns the root of an expression tree. The zero value is an empty tree
// ready for Build.
type Tree struct {
	Root *Node
}

func NewTree() *Tree {
	return &Tree{}
}

// Parse runs the whole pipeline on an infix expression.
func Parse(expression string) (*Tree, error) {
	postfix, err := ToPostfix(Tokenize(expression))
	if err != nil {
		return nil, err
	}
	return Build(postfix)
}

// Build makes a new tree from a postfix sequence.
func Build(postfix []Token) (*Tree, error) {
	t := NewTree()
	if err := t.Build(postfix); err != nil {
		return nil, err
	}
	return t, nil
}

// Build fills an empty tree from a postfix sequence. Tokens are inserted last
// first, each one at the first free slot found by probing right before left
// and only descending into operators. On failure the tree stays empty.
func (t *Tree) Build(postfix []Token) error {
	if t.Root != nil {
		return structuralf("tree is already built")
	}
	if len(postfix) == 0 {
		return structuralf("empty postfix sequence")
	}

	for i := len(postfix) - 1; i >= 0; i-- {
		if !t.insert(t.Root, postfix[i]) {
			t.Root = nil
			return structuralf("no place to attach <%s>", tokenString(i, postfix[i]))
		}
	}

	if err := t.validate(); err != nil {
		t.Root = nil
		return err
	}
	return nil
}

func (t *Tree) insert(current *Node, tok Token) bool {
	if t.Root == nil {
		t.Root = &Node{Token: tok}
		return true
	}

	if current.Right == nil {
		current.Right = &Node{Token: tok}
		return true
	}

	if current.Right.Token.IsOperator() {
		if t.insert(current.Right, tok) {
			return true
		}
	}

	if current.Left == nil {
		current.Left = &Node{Token: tok}
		return true
	}

	if current.Left.Token.IsOperator() {
		if t.insert(current.Left, tok) {
			return true
		}
	}

	return false
}

// validate collects every node that breaks the operator/literal shape rules.
func (t *Tree) validate() error {
	et := errortree.New("invalid expression tree")
	var walk func(n *Node, path string)
	walk = func(n *Node, path string) {
		if n == nil {
			return
		}
		switch {
		case n.Token.IsOperator():
			if n.Left == nil || n.Right == nil {
				et.Add(fmt.Errorf("operator %s at %s is missing an operand", n.Token.Value, path))
			}
		case n.Token.IsLiteral():
			if !n.isLeaf() {
				et.Add(fmt.Errorf("literal %s at %s has children", n.Token.Value, path))
			}
		default:
			et.Add(fmt.Errorf("token <%s> at %s is not a literal or operator", n.Token.Value, path))
		}
		walk(n.Left, path+"L")
		walk(n.Right, path+"R")
	}
	walk(t.Root, "root/")

	if et.IsError() {
		return fmt.Errorf("%w: %v", ErrStructural, et)
	}
	return nil
}
