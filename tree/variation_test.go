package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebitbrine/tree-gp/tree"
)

// mutate.go
// -------------------------

func TestMutateLeavesParentIntact(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	parent := tree.RandomProgram(rng, 2)
	snapshot := parent.Root.Copy()

	for i := 0; i < 20; i++ {
		child := tree.Mutate(rng, parent, 2)
		checkArities(t, child.Root)
		assert.Equal(t, tree.Unevaluated, child.Fitness)
		assert.Equal(t, child.Root.Size(), child.Size)
	}
	assert.True(t, tree.Equal(snapshot, parent.Root))
}

func TestMutateEventuallyChanges(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	parent := tree.RandomProgram(rng, 2)

	changed := false
	for i := 0; i < 50 && !changed; i++ {
		child := tree.Mutate(rng, parent, 2)
		changed = !tree.Equal(parent.Root, child.Root)
	}
	assert.True(t, changed)
}

func TestMutateDeterministic(t *testing.T) {
	parent := tree.RandomProgram(rand.New(rand.NewSource(12)), 2)

	a := tree.Mutate(rand.New(rand.NewSource(99)), parent, 2)
	b := tree.Mutate(rand.New(rand.NewSource(99)), parent, 2)
	assert.True(t, tree.Equal(a.Root, b.Root))
}

// cross.go
// -------------------------

func TestCrossoverLeavesParentsIntact(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	p1 := tree.RandomProgram(rng, 2)
	p2 := tree.RandomProgram(rng, 2)
	s1 := p1.Root.Copy()
	s2 := p2.Root.Copy()

	for i := 0; i < 20; i++ {
		child := tree.Crossover(rng, p1, p2)
		require.NotNil(t, child.Root)
		checkArities(t, child.Root)
		assert.Equal(t, tree.Unevaluated, child.Fitness)
	}
	assert.True(t, tree.Equal(s1, p1.Root))
	assert.True(t, tree.Equal(s2, p2.Root))
}

func TestCrossoverMixes(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	p1 := tree.NewProgram(bin(tree.OpAdd, con(1), con(2)))
	p2 := tree.NewProgram(bin(tree.OpMul, con(8), con(9)))

	differed := false
	for i := 0; i < 50 && !differed; i++ {
		child := tree.Crossover(rng, p1, p2)
		differed = !tree.Equal(child.Root, p1.Root)
	}
	assert.True(t, differed, "no crossover produced new material")
}

func TestCrossoverDeterministic(t *testing.T) {
	src := rand.New(rand.NewSource(22))
	p1 := tree.RandomProgram(src, 2)
	p2 := tree.RandomProgram(src, 2)

	a := tree.Crossover(rand.New(rand.NewSource(7)), p1, p2)
	b := tree.Crossover(rand.New(rand.NewSource(7)), p1, p2)
	assert.True(t, tree.Equal(a.Root, b.Root))
}
