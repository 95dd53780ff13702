package lib

import (
	"fmt"
	"io"
)

// Report walks an expression through every stage and writes one line per
// stage to w, finishing with the tree drawn by Display. It stops at the first
// error.
func Report(w io.Writer, expression string) error {
	fmt.Fprintf(w, "Original Expression: %s\n", expression)

	infix := Tokens(expression)
	fmt.Fprintf(w, "Infix Tokens: %s\n", FormatTokens(infix))

	postfix, err := ToPostfix(NewTokenSlice(infix))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Postfix Tokens: %s\n", FormatTokens(postfix))

	tree, err := Build(postfix)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Build: complete")

	fmt.Fprintf(w, "Prefix: %s\n", tree.Prefix())
	fmt.Fprintf(w, "Infix: %s\n", tree.Infix())
	fmt.Fprintf(w, "Postfix: %s\n", tree.Postfix())

	value, err := tree.Evaluate()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Evaluate: %d\n", value)

	fmt.Fprintln(w, "Display:")
	if err := tree.Display(w); err != nil {
		return err
	}
	fmt.Fprintln(w, "Display: complete")
	return nil
}
