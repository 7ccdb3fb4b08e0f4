package tree

import (
	"math/rand"
)

// Crossover deep-copies p1, picks a uniform-random node in the copy and a
// uniform-random donor subtree in p2, and overwrites the former with a deep
// copy of the latter. Type correctness is not enforced at the join: the
// interpreter's 0-default absorbs type-mixed splices.
func Crossover(rng *rand.Rand, p1, p2 *Program) *Program {
	child := p1.Root.Copy()

	point := pickNode(rng, child)
	donor := pickNode(rng, p2.Root)
	if point != nil && donor != nil {
		replaceNode(point, donor)
	}

	return NewProgram(child)
}

// pickNode selects a node uniformly at random by reservoir sampling: the
// k-th node of the pre-order traversal displaces the current pick with
// probability 1/k.
func pickNode(rng *rand.Rand, root *Node) *Node {
	var chosen *Node
	k := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		k++
		if rng.Intn(k) == 0 {
			chosen = n
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return chosen
}

// replaceNode overwrites target's contents with a deep copy of donor's.
// The old children are dropped with the old contents.
func replaceNode(target, donor *Node) {
	target.Op = donor.Op
	target.Type = donor.Type
	target.Value = donor.Value
	if len(donor.Children) == 0 {
		target.Children = nil
		return
	}
	target.Children = make([]*Node, len(donor.Children))
	for i, child := range donor.Children {
		target.Children[i] = child.Copy()
	}
}
