package main

import (
	"fmt"

	"go.uber.org/zap"

	treegp "github.com/thebitbrine/tree-gp"
	"github.com/thebitbrine/tree-gp/tree"
)

const (
	target  = 64
	maxGens = 500
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	pop := treegp.New(&treegp.Options{Logger: logger})

	// 6-bit multiplexer: inputs are 2 address bits then 4 data bits; the
	// expected output is the addressed data bit. All 64 cases per score.
	fitness := func(prog *tree.Program) float32 {
		correct := 0
		for c := 0; c < 64; c++ {
			var in [6]int32
			for i := range in {
				in[i] = int32(c >> i & 1)
			}
			addr := in[0] | in[1]<<1
			expected := in[2+addr]

			var ctx tree.Context
			ctx.SetInputs(in[:]...)
			pop.Execute(prog, &ctx)

			if ctx.NumOutputs > 0 && ctx.Outputs[0] == expected {
				correct++
			}
		}
		return float32(correct)
	}

	fmt.Println("6-bit multiplexer: output = data[address]")

	for gen := 0; gen < maxGens; gen++ {
		pop.EvolveGeneration(fitness, 6)

		if gen%25 == 0 || pop.BestFitness() >= target {
			fmt.Printf("Gen %4d: Best=%.1f Avg=%.1f Size=%d LibSize=%d\n",
				gen, pop.BestFitness(), pop.AvgFitness(),
				pop.Best().Size, pop.Library().Len())

			lib := pop.Library()
			if lib.Len() > 0 {
				fmt.Printf("  Library (%d entries):\n", lib.Len())
				for i := 0; i < lib.Len() && i < 5; i++ {
					e := lib.Entry(i)
					fmt.Printf("    %s (params=%d, uses=%d):\n", e.Name, e.NumParams, e.Uses)
					tree.Print(e.Body, 3)
				}
			}
		}

		if pop.BestFitness() >= target {
			fmt.Println("\nSolved! Best solution:")
			tree.Print(pop.Best().Root, 0)
			return
		}
	}

	fmt.Printf("\nBest fitness after %d generations: %.1f\n", maxGens, pop.BestFitness())
}
