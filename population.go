package treegp

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thebitbrine/tree-gp/lib"
	"github.com/thebitbrine/tree-gp/tree"
)

// Engine parameters.
const (
	PopSize        = 2000
	TournamentSize = 7
	EliteSize      = 20
	LibraryCadence = 5 // generations between library updates
)

// A FitnessFunc scores one program; higher is better. It is called from
// multiple goroutines at once, so it must not share mutable state between
// calls, and it must not retain the program beyond its own return.
type FitnessFunc func(p *tree.Program) float32

// A Population holds the current generation, the learned library, and the
// best individual seen so far. It is lazily filled with random programs on
// the first call to EvolveGeneration.
type Population struct {
	mu sync.Mutex // guards best and bestFitness during parallel evaluation

	programs    []*tree.Program
	library     *lib.Library
	best        *tree.Program
	bestFitness float32
	generation  int
	avgFitness  float32
	numInputs   int
	stats       Stats

	rng     *rand.Rand
	workers int
	log     *zap.Logger
}

// New constructs an empty population. A nil opts asks for defaults.
func New(opts *Options) *Population {
	if opts == nil {
		opts = &Options{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Population{
		programs:    make([]*tree.Program, PopSize),
		library:     lib.New(),
		bestFitness: tree.Unevaluated,
		rng:         rand.New(rand.NewSource(seed)),
		workers:     workers,
		log:         log,
	}
}

// Execute runs a program once against ctx, resolving library references
// through the population's library.
func (p *Population) Execute(prog *tree.Program, ctx *tree.Context) {
	tree.ExecProgram(prog, ctx, p.library)
}

// Best returns the best individual seen so far. Callers must treat it as
// read-only; it is the population's own copy.
func (p *Population) Best() *tree.Program {
	return p.best
}

// BestFitness returns the highest fitness ever observed. It never decreases
// across a run.
func (p *Population) BestFitness() float32 {
	return p.bestFitness
}

// Generation returns the number of completed generations.
func (p *Population) Generation() int {
	return p.generation
}

// AvgFitness returns the mean fitness of the last evaluation.
func (p *Population) AvgFitness() float32 {
	return p.avgFitness
}

// LastStats returns the fitness statistics of the last evaluation.
func (p *Population) LastStats() Stats {
	return p.stats
}

// Library returns the learned library.
func (p *Population) Library() *lib.Library {
	return p.library
}

// Programs returns the current generation. The slice is shared with the
// population; callers must not mutate it while a generation is evolving.
func (p *Population) Programs() []*tree.Program {
	return p.programs
}
