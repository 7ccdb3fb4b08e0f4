package lib

import (
	"math/rand"

	"github.com/thebitbrine/tree-gp/tree"
)

// Inject walks a freshly varied tree and, with probability 1/20 at each
// Int-returning node, overwrites the node with a reference to a random
// library entry: a terminal for zero-parameter entries, a call with fresh
// random argument subtrees otherwise. Nothing below a rewritten node is
// visited. The chosen entry's use count is bumped.
func Inject(rng *rand.Rand, root *tree.Node, l *Library, numInputs int) {
	if l == nil || l.Len() == 0 {
		return
	}
	injectCalls(rng, root, l, numInputs, 0)
}

func injectCalls(rng *rand.Rand, n *tree.Node, l *Library, numInputs, depth int) {
	if n == nil || depth > tree.MaxDepth {
		return
	}

	if tree.Info(n.Op).Return == tree.Int && rng.Intn(20) == 0 {
		idx := rng.Intn(l.Len())
		e := l.Entry(idx)
		if e.NumParams == 0 {
			n.Op = tree.OpLibrary
			n.Children = nil
		} else {
			n.Op = tree.OpFuncCall
			n.Children = make([]*tree.Node, e.NumParams)
			for i := range n.Children {
				n.Children[i] = tree.RandomTree(rng, depth+1, tree.Int, numInputs)
			}
		}
		n.Value = int32(idx)
		n.Type = tree.Int
		e.Uses++
		return
	}

	for _, child := range n.Children {
		injectCalls(rng, child, l, numInputs, depth+1)
	}
}
