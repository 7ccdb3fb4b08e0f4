package tree

import (
	"math/rand"
)

// Mutate returns a mutated deep copy of parent. Each node of the copy is
// replaced, with probability 1/5, by a fresh random subtree whose type is
// chosen by coin flip at the replacement site. The child carries fresh
// metadata and an unevaluated fitness.
func Mutate(rng *rand.Rand, parent *Program, numInputs int) *Program {
	return NewProgram(mutateTree(rng, parent.Root, 0, numInputs))
}

func mutateTree(rng *rand.Rand, n *Node, depth, numInputs int) *Node {
	if n == nil {
		return nil
	}

	if rng.Intn(5) == 0 {
		t := Void
		if rng.Intn(2) == 0 {
			t = Int
		}
		return RandomTree(rng, depth, t, numInputs)
	}

	c := &Node{
		Op:    n.Op,
		Value: n.Value,
		Type:  n.Type,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = mutateTree(rng, child, depth+1, numInputs)
		}
	}
	return c
}
