package lib

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const displayIndent = "    "

// Display writes the tree turned on its side: the right subtree above its
// parent, the left subtree below, one level of indentation per depth.
//
//	    2
//	*
//	        4
//	    +
//	        3
func (t *Tree) Display(w io.Writer) error {
	if t.Root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return displayRecursive(w, t.Root, 0)
}

func displayRecursive(w io.Writer, current *Node, depth int) error {
	if current == nil {
		return nil
	}
	if err := displayRecursive(w, current.Right, depth+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(displayIndent, depth), current.Token.Value); err != nil {
		return err
	}
	return displayRecursive(w, current.Left, depth+1)
}

// Dump writes the raw node structure, for debugging.
func (t *Tree) Dump(w io.Writer) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
	}
	cfg.Fdump(w, t.Root)
}
