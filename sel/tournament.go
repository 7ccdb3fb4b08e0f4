package sel

import (
	"math/rand"

	"github.com/thebitbrine/tree-gp/tree"
)

// Tournament draws size contenders uniformly at random, with replacement,
// and returns the one with the highest fitness. Comparison is strict, so the
// first-seen contender wins ties.
func Tournament(rng *rand.Rand, programs []*tree.Program, size int) *tree.Program {
	var best *tree.Program
	for i := 0; i < size; i++ {
		p := programs[rng.Intn(len(programs))]
		if p == nil {
			continue
		}
		if best == nil || p.Fitness > best.Fitness {
			best = p
		}
	}
	return best
}
