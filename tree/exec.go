package tree

// A Resolver supplies library bodies to the interpreter. A nil body means
// the index is out of range and the reference evaluates to 0.
type Resolver interface {
	Body(index int) *Node
}

// maxCallDepth bounds nested library resolutions. Entry bodies can come to
// reference one another through slot reuse; past this depth a reference
// evaluates to 0 instead of recursing.
const maxCallDepth = 16

// ExecProgram runs a program once against ctx. Outputs are reset before the
// run; memory is left alone so callers can carry state across runs.
func ExecProgram(p *Program, ctx *Context, lib Resolver) {
	ctx.NumOutputs = 0
	if p != nil && p.Root != nil {
		Exec(p.Root, ctx, lib)
	}
}

// Exec evaluates the tree rooted at n and returns its value. Evaluation is
// strict and depth-first except for OpIfGT, which evaluates exactly one
// branch. Every out-of-range index and every division by zero yields 0.
func Exec(n *Node, ctx *Context, lib Resolver) int32 {
	if n == nil {
		return 0
	}

	switch n.Op {
	case OpAdd:
		return Exec(n.Children[0], ctx, lib) + Exec(n.Children[1], ctx, lib)

	case OpSub:
		return Exec(n.Children[0], ctx, lib) - Exec(n.Children[1], ctx, lib)

	case OpMul:
		return Exec(n.Children[0], ctx, lib) * Exec(n.Children[1], ctx, lib)

	case OpDiv:
		a := Exec(n.Children[0], ctx, lib)
		b := Exec(n.Children[1], ctx, lib)
		if b == 0 {
			return 0
		}
		return a / b

	case OpMod:
		a := Exec(n.Children[0], ctx, lib)
		b := Exec(n.Children[1], ctx, lib)
		if b == 0 {
			return 0
		}
		return a % b

	case OpAnd:
		return Exec(n.Children[0], ctx, lib) & Exec(n.Children[1], ctx, lib)

	case OpOr:
		return Exec(n.Children[0], ctx, lib) | Exec(n.Children[1], ctx, lib)

	case OpXor:
		return Exec(n.Children[0], ctx, lib) ^ Exec(n.Children[1], ctx, lib)

	case OpNot:
		return ^Exec(n.Children[0], ctx, lib)

	case OpConst:
		return n.Value

	case OpInput:
		idx := int(n.Value)
		if 0 <= idx && idx < ctx.NumInputs {
			return ctx.Inputs[idx]
		}
		return 0

	case OpOutput:
		val := Exec(n.Children[0], ctx, lib)
		if ctx.NumOutputs < MaxOutputs {
			ctx.Outputs[ctx.NumOutputs] = val
			ctx.NumOutputs++
		}
		return 0

	case OpIfGT:
		a := Exec(n.Children[0], ctx, lib)
		b := Exec(n.Children[1], ctx, lib)
		if a > b {
			return Exec(n.Children[2], ctx, lib)
		}
		return Exec(n.Children[3], ctx, lib)

	case OpSeq:
		Exec(n.Children[0], ctx, lib)
		Exec(n.Children[1], ctx, lib)
		return 0

	case OpMemRead:
		idx := int(n.Value)
		if 0 <= idx && idx < MaxMemory {
			return ctx.Memory[idx]
		}
		return 0

	case OpMemWrite:
		idx := int(n.Value)
		val := Exec(n.Children[0], ctx, lib)
		if 0 <= idx && idx < MaxMemory {
			ctx.Memory[idx] = val
		}
		return 0

	case OpLibrary:
		if lib == nil {
			return 0
		}
		body := lib.Body(int(n.Value))
		if body == nil || ctx.callDepth >= maxCallDepth {
			return 0
		}
		ctx.callDepth++
		ret := Exec(body, ctx, lib)
		ctx.callDepth--
		return ret

	case OpFuncCall:
		if lib == nil {
			return 0
		}
		body := lib.Body(int(n.Value))
		if body == nil || ctx.callDepth >= maxCallDepth {
			return 0
		}
		if ctx.argSP+len(n.Children) > len(ctx.args) {
			return 0
		}
		savedSP, savedBase := ctx.argSP, ctx.argBase
		// Arguments evaluate left to right against the caller's frame.
		for _, arg := range n.Children {
			v := Exec(arg, ctx, lib)
			ctx.args[ctx.argSP] = v
			ctx.argSP++
		}
		ctx.argBase = savedSP
		ctx.callDepth++
		ret := Exec(body, ctx, lib)
		ctx.callDepth--
		ctx.argSP, ctx.argBase = savedSP, savedBase
		return ret

	case OpParam:
		idx := ctx.argBase + int(n.Value)
		if n.Value >= 0 && idx < ctx.argSP {
			return ctx.args[idx]
		}
		return 0

	default:
		return 0
	}
}
