package tree

import (
	"fmt"
	"io"
	"os"
)

// Fprint writes the tree rooted at n to w, one node per line, indented two
// spaces per level. Operators with a payload print it after their name.
func Fprint(w io.Writer, n *Node, indent int) {
	if n == nil {
		return
	}

	for i := 0; i < indent; i++ {
		io.WriteString(w, "  ")
	}

	name := n.Op.String()
	switch n.Op {
	case OpConst:
		fmt.Fprintf(w, "%s(%d)\n", name, n.Value)
	case OpInput:
		fmt.Fprintf(w, "%s[%d]\n", name, n.Value)
	case OpMemRead, OpMemWrite:
		fmt.Fprintf(w, "%s[mem%d]\n", name, n.Value)
	case OpLibrary, OpFuncCall, OpParam:
		fmt.Fprintf(w, "%s[%d]\n", name, n.Value)
	default:
		fmt.Fprintf(w, "%s\n", name)
	}

	for _, child := range n.Children {
		Fprint(w, child, indent+1)
	}
}

// Print writes the tree to standard output.
func Print(n *Node, indent int) {
	Fprint(os.Stdout, n, indent)
}
