package tree

import (
	"github.com/chewxy/math32"
)

// Unevaluated is the fitness sentinel carried by programs that have not been
// scored since they were created or varied.
var Unevaluated = math32.Inf(-1)

// A Program is a root node plus memoised structural metadata and the fitness
// assigned by the most recent evaluation.
type Program struct {
	Root    *Node
	Fitness float32
	Size    int
	Depth   int
}

// NewProgram wraps root in a Program with fresh metadata and an unevaluated
// fitness.
func NewProgram(root *Node) *Program {
	p := &Program{
		Root:    root,
		Fitness: Unevaluated,
	}
	p.UpdateMetadata()
	return p
}

// Copy returns a deep copy of p, fitness included.
func (p *Program) Copy() *Program {
	if p == nil {
		return nil
	}
	return &Program{
		Root:    p.Root.Copy(),
		Fitness: p.Fitness,
		Size:    p.Size,
		Depth:   p.Depth,
	}
}

// UpdateMetadata recomputes the memoised size and depth from the root.
func (p *Program) UpdateMetadata() {
	p.Size = p.Root.Size()
	p.Depth = p.Root.Depth()
}
