// Package lib implements the learned library of reusable subtree
// abstractions. Candidate subtrees are mined from elite programs every few
// generations, abstracted over their input references, scored, and inserted
// as new operators that later offspring can call.
package lib
