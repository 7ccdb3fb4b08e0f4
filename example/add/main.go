package main

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	treegp "github.com/thebitbrine/tree-gp"
	"github.com/thebitbrine/tree-gp/tree"
)

const (
	cases   = 20
	target  = float32(cases) // every case correct
	maxGens = 1000
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	pop := treegp.New(&treegp.Options{Logger: logger})

	// Score a program by how many random (a, b) pairs it maps to a+b.
	fitness := func(prog *tree.Program) float32 {
		correct := 0
		for i := 0; i < cases; i++ {
			a := rand.Int31n(20) - 10
			b := rand.Int31n(20) - 10

			var ctx tree.Context
			ctx.SetInputs(a, b)
			pop.Execute(prog, &ctx)

			if ctx.NumOutputs > 0 && ctx.Outputs[0] == a+b {
				correct++
			}
		}
		return float32(correct)
	}

	fmt.Println("Learning addition: output = a + b")

	for gen := 0; gen < maxGens; gen++ {
		pop.EvolveGeneration(fitness, 2)

		if gen%10 == 0 || pop.BestFitness() >= target {
			fmt.Printf("Gen %4d: Best=%.1f Avg=%.1f Size=%d LibSize=%d\n",
				gen, pop.BestFitness(), pop.AvgFitness(),
				pop.Best().Size, pop.Library().Len())
		}

		if pop.BestFitness() >= target {
			fmt.Println("\nSolved! Best solution:")
			tree.Print(pop.Best().Root, 0)
			return
		}
	}

	fmt.Println("\nNo exact solution; best so far:")
	tree.Print(pop.Best().Root, 0)
}
