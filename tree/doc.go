// Package tree provides the typed expression trees evolved by the engine:
// the opcode set, the nodes and programs built from it, the interpreter that
// runs them, and the random-generation, mutation, and crossover operators.
//
// Trees are owned recursive data. Every node exclusively owns its children,
// and every operator that moves genetic material between containers does so
// by deep copy, so destroying or mutating one program never disturbs another.
package tree
