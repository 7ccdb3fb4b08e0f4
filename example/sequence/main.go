package main

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	treegp "github.com/thebitbrine/tree-gp"
	"github.com/thebitbrine/tree-gp/tree"
)

const (
	episodes = 10
	steps    = 5
	target   = 98
	maxGens  = 2000
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	pop := treegp.New(&treegp.Options{Logger: logger})

	// Running accumulator: the same Context is reused across the steps of an
	// episode, so memory written at step t is visible at step t+1. The
	// expected output at each step is the running sum of the inputs so far.
	fitness := func(prog *tree.Program) float32 {
		totalError := float32(0)
		for ep := 0; ep < episodes; ep++ {
			var ctx tree.Context
			var sum int32
			for s := 0; s < steps; s++ {
				x := rand.Int31n(10)
				ctx.SetInputs(x)
				pop.Execute(prog, &ctx)

				sum += x
				var got int32
				if ctx.NumOutputs > 0 {
					got = ctx.Outputs[0]
				}
				diff := got - sum
				if diff < 0 {
					diff = -diff
				}
				totalError += float32(diff)
			}
		}
		avgError := totalError / (episodes * steps)
		return 100 - avgError - float32(prog.Size)*0.01
	}

	fmt.Println("Sequence accumulation: output the running sum of inputs")

	for gen := 0; gen < maxGens; gen++ {
		pop.EvolveGeneration(fitness, 1)

		if gen%50 == 0 || pop.BestFitness() >= target {
			fmt.Printf("Gen %4d: Best=%.1f Avg=%.1f Size=%d Depth=%d\n",
				gen, pop.BestFitness(), pop.AvgFitness(),
				pop.Best().Size, pop.Best().Depth)
		}

		if pop.BestFitness() >= target {
			fmt.Println("\nSolved! Solution tree:")
			tree.Print(pop.Best().Root, 0)

			fmt.Println("\nTesting on sequence [3, 5, 2, 7, 1]:")
			var ctx tree.Context
			var sum int32
			for _, x := range []int32{3, 5, 2, 7, 1} {
				ctx.SetInputs(x)
				pop.Execute(pop.Best(), &ctx)

				sum += x
				var got int32
				if ctx.NumOutputs > 0 {
					got = ctx.Outputs[0]
				}
				status := "OK"
				if got != sum {
					status = "WRONG"
				}
				fmt.Printf("  Input=%d, Expected=%d, Got=%d %s\n", x, sum, got, status)
			}
			return
		}
	}

	fmt.Printf("\nBest fitness after %d generations: %.1f\n", maxGens, pop.BestFitness())
}
