package tree

// A Context is the scratchpad for one program run: the inputs the program
// reads, the outputs it appends, its memory cells, and the argument stack
// used by parameterised library calls.
//
// Contexts are caller-owned and must not be shared between goroutines.
// Memory persists across executions for as long as the caller reuses the
// same Context; the engine never clears it. That persistence is the only
// channel for state between successive runs of a program.
type Context struct {
	Inputs     [MaxInputs]int32
	NumInputs  int
	Outputs    [MaxOutputs]int32
	NumOutputs int
	Memory     [MaxMemory]int32

	// argument stack for nested library calls
	args      [MaxChildren * 4]int32
	argSP     int
	argBase   int
	callDepth int
}

// SetInputs installs vals as the context's inputs, dropping any beyond
// MaxInputs.
func (ctx *Context) SetInputs(vals ...int32) {
	n := copy(ctx.Inputs[:], vals)
	ctx.NumInputs = n
}

// ClearMemory zeroes the memory cells. Harnesses call this between episodes;
// the engine itself never does.
func (ctx *Context) ClearMemory() {
	ctx.Memory = [MaxMemory]int32{}
}
