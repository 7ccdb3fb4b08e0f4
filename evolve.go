package treegp

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thebitbrine/tree-gp/lib"
	"github.com/thebitbrine/tree-gp/sel"
	"github.com/thebitbrine/tree-gp/tree"
)

// EvolveGeneration advances the population by one generation: evaluate
// fitness in parallel, carry the elites over, breed the remainder by
// tournament-selected crossover and mutation, and periodically refresh the
// library from the elites of the new generation.
func (p *Population) EvolveGeneration(fn FitnessFunc, numInputs int) {
	p.numInputs = numInputs

	if p.programs[0] == nil {
		for i := range p.programs {
			p.programs[i] = tree.RandomProgram(p.rng, numInputs)
		}
	}

	p.evaluate(fn)

	next := make([]*tree.Program, PopSize)
	p.extractElites(next)

	for i := EliteSize; i < PopSize; i++ {
		if p.rng.Intn(10) < 7 {
			p1 := sel.Tournament(p.rng, p.programs, TournamentSize)
			p2 := sel.Tournament(p.rng, p.programs, TournamentSize)
			next[i] = tree.Crossover(p.rng, p1, p2)
		} else {
			parent := sel.Tournament(p.rng, p.programs, TournamentSize)
			child := tree.Mutate(p.rng, parent, numInputs)
			if p.library.Len() > 0 && p.rng.Intn(3) == 0 {
				lib.Inject(p.rng, child.Root, p.library, numInputs)
				child.UpdateMetadata()
			}
			next[i] = child
		}
	}

	p.programs = next

	if p.generation%LibraryCadence == 0 {
		lib.Update(p.library, p.programs)
		p.log.Info("library updated",
			zap.Int("generation", p.generation),
			zap.Int("entries", p.library.Len()))
	}

	p.generation++
	p.log.Debug("generation complete",
		zap.Int("generation", p.generation),
		zap.Float32("best", p.bestFitness),
		zap.Float32("avg", p.avgFitness),
		zap.Int("library", p.library.Len()))
}

// evaluate scores every program, partitioned into contiguous chunks, one
// worker goroutine per chunk. Workers race only on the best-update, which
// runs under the population mutex on strict improvement.
func (p *Population) evaluate(fn FitnessFunc) {
	workers := p.workers
	if workers > PopSize {
		workers = PopSize
	}
	chunk := PopSize / workers

	partial := make([]Stats, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = PopSize
		}
		g.Go(func() error {
			var s Stats
			for i := start; i < end; i++ {
				prog := p.programs[i]
				if prog == nil {
					continue
				}
				fit := fn(prog)
				prog.Fitness = fit
				s = s.Insert(float64(fit))

				p.mu.Lock()
				if fit > p.bestFitness {
					p.best = prog.Copy()
					p.bestFitness = fit
				}
				p.mu.Unlock()
			}
			partial[w] = s
			return nil
		})
	}
	_ = g.Wait()

	var total Stats
	for _, s := range partial {
		total = total.Merge(s)
	}
	p.stats = total
	p.avgFitness = float32(total.Mean())
}

// extractElites deep-copies the EliteSize fittest programs into the front of
// next by repeated max-scan. Scanned-out slots are sentinel-marked to exclude
// them from later scans; their fitnesses are cached aside and restored, since
// the old generation still feeds tournament selection.
func (p *Population) extractElites(next []*tree.Program) {
	chosen := make([]int, 0, EliteSize)
	saved := make([]float32, 0, EliteSize)

	for i := 0; i < EliteSize; i++ {
		bestIdx := -1
		for j := range p.programs {
			if p.programs[j] == nil {
				continue
			}
			if bestIdx < 0 || p.programs[j].Fitness > p.programs[bestIdx].Fitness {
				bestIdx = j
			}
		}
		if bestIdx < 0 {
			break
		}
		next[i] = p.programs[bestIdx].Copy()
		chosen = append(chosen, bestIdx)
		saved = append(saved, p.programs[bestIdx].Fitness)
		p.programs[bestIdx].Fitness = tree.Unevaluated
	}

	for i, idx := range chosen {
		p.programs[idx].Fitness = saved[i]
	}
}
