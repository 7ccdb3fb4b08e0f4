package main

import (
	"fmt"

	"go.uber.org/zap"

	treegp "github.com/thebitbrine/tree-gp"
	"github.com/thebitbrine/tree-gp/tree"
)

const (
	target  = 7.9 // all 8 cases, with float slack
	maxGens = 500
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	pop := treegp.New(&treegp.Options{Logger: logger})

	// 3-bit even parity: output 1 iff b0^b1^b2 == 0, over all 8 cases.
	fitness := func(prog *tree.Program) float32 {
		correct := 0
		for c := 0; c < 8; c++ {
			b0 := int32(c & 1)
			b1 := int32(c >> 1 & 1)
			b2 := int32(c >> 2 & 1)
			expected := int32(1)
			if b0^b1^b2 != 0 {
				expected = 0
			}

			var ctx tree.Context
			ctx.SetInputs(b0, b1, b2)
			pop.Execute(prog, &ctx)

			if ctx.NumOutputs > 0 && ctx.Outputs[0] == expected {
				correct++
			}
		}
		return float32(correct)
	}

	fmt.Println("3-bit even parity")

	for gen := 0; gen < maxGens; gen++ {
		pop.EvolveGeneration(fitness, 3)

		if gen%25 == 0 || pop.BestFitness() >= target {
			fmt.Printf("Gen %4d: Best=%.1f Avg=%.1f Size=%d\n",
				gen, pop.BestFitness(), pop.AvgFitness(), pop.Best().Size)
		}

		if pop.BestFitness() >= target {
			fmt.Println("\nSolved! Best solution:")
			tree.Print(pop.Best().Root, 0)
			return
		}
	}

	fmt.Printf("\nBest fitness after %d generations: %.1f\n", maxGens, pop.BestFitness())
	tree.Print(pop.Best().Root, 0)
}
