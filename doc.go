// Package treegp is a genetic programming engine over typed integer
// expression trees. It evolves a fixed-size population of programs under a
// caller-supplied fitness function, and mines elite individuals for reusable
// subtree abstractions — parameterised library functions that are fed back
// to later generations as new operators.
//
// The engine is a library: callers construct a Population, drive it one
// generation at a time with EvolveGeneration, and decide for themselves when
// to stop. See the example directory for task harnesses.
package treegp
