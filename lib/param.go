package lib

import (
	"github.com/thebitbrine/tree-gp/tree"
)

// Parameterise abstracts a candidate body over its inputs. The distinct
// input indices of the subtree, in order of first encounter during pre-order
// traversal and capped at tree.MaxChildren, become the parameter list; the
// returned deep copy has each mapped INPUT rewritten to the PARAM at its
// position. Unmapped inputs are left alone and keep reading the caller's
// actual inputs. A body with no inputs parameterises to a zero-parameter
// library terminal.
func Parameterise(n *tree.Node) (*tree.Node, int) {
	inputMap := make([]int32, 0, tree.MaxChildren)
	collectInputs(n, &inputMap)
	return rewriteInputs(n, inputMap), len(inputMap)
}

func collectInputs(n *tree.Node, inputMap *[]int32) {
	if n == nil || len(*inputMap) >= tree.MaxChildren {
		return
	}
	if n.Op == tree.OpInput && paramIndex(*inputMap, n.Value) < 0 {
		*inputMap = append(*inputMap, n.Value)
	}
	for _, child := range n.Children {
		collectInputs(child, inputMap)
	}
}

func rewriteInputs(n *tree.Node, inputMap []int32) *tree.Node {
	if n == nil {
		return nil
	}
	if n.Op == tree.OpInput {
		if i := paramIndex(inputMap, n.Value); i >= 0 {
			return tree.New(tree.OpParam, int32(i))
		}
	}
	c := &tree.Node{
		Op:    n.Op,
		Value: n.Value,
		Type:  n.Type,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*tree.Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = rewriteInputs(child, inputMap)
		}
	}
	return c
}

func paramIndex(inputMap []int32, value int32) int {
	for i, v := range inputMap {
		if v == value {
			return i
		}
	}
	return -1
}
