package tree

import (
	"math/rand"
)

// Operators eligible for random sampling, by return type. Library references
// never appear here; injection is a separate step applied to offspring.
var (
	randomIntOps  = []OpCode{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpAnd, OpOr, OpXor, OpNot, OpIfGT}
	randomVoidOps = []OpCode{OpOutput, OpSeq, OpMemWrite}
)

// RandomTree generates a type-correct random tree for the required type.
// Generation turns terminal with probability 1/3 below the root and always
// at MaxDepth.
func RandomTree(rng *rand.Rand, depth int, required Type, numInputs int) *Node {
	if depth >= MaxDepth || (depth > 0 && rng.Intn(3) == 0) {
		return randomTerminal(rng, depth, required, numInputs)
	}

	var ops []OpCode
	if required == Int {
		ops = randomIntOps
	} else {
		ops = randomVoidOps
	}
	op := ops[rng.Intn(len(ops))]

	var value int32
	if op == OpMemWrite {
		value = int32(rng.Intn(MaxMemory))
	}
	n := New(op, value)
	info := Info(op)
	for i := 0; i < info.Arity; i++ {
		n.Children[i] = RandomTree(rng, depth+1, info.Args[i], numInputs)
	}
	return n
}

func randomTerminal(rng *rand.Rand, depth int, required Type, numInputs int) *Node {
	if required == Int {
		switch choice := rng.Intn(3); {
		case choice == 0 && numInputs > 0:
			return New(OpInput, int32(rng.Intn(numInputs)))
		case choice == 1:
			return New(OpMemRead, int32(rng.Intn(MaxMemory)))
		default:
			return New(OpConst, int32(rng.Intn(20)-10))
		}
	}

	// Void: a memory write or, more often, an output statement.
	if rng.Intn(3) == 0 {
		w := New(OpMemWrite, int32(rng.Intn(MaxMemory)))
		w.Children[0] = RandomTree(rng, depth+1, Int, numInputs)
		return w
	}
	out := New(OpOutput, 0)
	out.Children[0] = RandomTree(rng, depth+1, Int, numInputs)
	return out
}

// RandomProgram generates a random program. The root is always
// SEQ(OUTPUT(...), OUTPUT(CONST 0)) so every program produces at least one
// observable output when run.
func RandomProgram(rng *rand.Rand, numInputs int) *Program {
	root := New(OpSeq, 0)
	root.Children[0] = New(OpOutput, 0)
	root.Children[0].Children[0] = RandomTree(rng, 0, Int, numInputs)
	root.Children[1] = New(OpOutput, 0)
	root.Children[1].Children[0] = New(OpConst, 0)
	return NewProgram(root)
}
