package lib

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/thebitbrine/tree-gp/tree"
)

// MaxLibrary is the fixed capacity of a library.
const MaxLibrary = 32

// An Entry is one learned abstraction. The body's input references have
// already been rewritten to parameter references; NumParams fixes the call
// arity. Entries with zero parameters are invoked as terminals.
type Entry struct {
	Name       string
	Body       *tree.Node
	Uses       int
	AvgFitness float32 // fitness of the elite the entry was mined from
	NumParams  int
	ParamTypes [tree.MaxChildren]tree.Type
}

// A Library holds up to MaxLibrary entries. No entry aliases another's tree
// storage, and no entry aliases any program in the population.
type Library struct {
	entries []*Entry
}

// New returns an empty library.
func New() *Library {
	return &Library{entries: make([]*Entry, 0, MaxLibrary)}
}

// Len returns the number of entries.
func (l *Library) Len() int {
	return len(l.entries)
}

// Entry returns the i-th entry, or nil if i is out of range.
func (l *Library) Entry(i int) *Entry {
	if i < 0 || len(l.entries) <= i {
		return nil
	}
	return l.entries[i]
}

// Body returns the i-th entry's body, or nil if i is out of range.
// It implements tree.Resolver.
func (l *Library) Body(i int) *tree.Node {
	if e := l.Entry(i); e != nil {
		return e.Body
	}
	return nil
}

// Contains reports whether body is structurally equal to any entry's body.
func (l *Library) Contains(body *tree.Node) bool {
	for _, e := range l.entries {
		if tree.Equal(e.Body, body) {
			return true
		}
	}
	return false
}

// Add inserts a deep copy of body as a new entry with a single use. When the
// library is full, the least-used entry (first seen on ties) is evicted to
// make room.
func (l *Library) Add(body *tree.Node, name string, fitness float32, numParams int) {
	e := &Entry{
		Name:       name,
		Body:       body.Copy(),
		Uses:       1,
		AvgFitness: fitness,
		NumParams:  numParams,
	}
	if len(l.entries) < MaxLibrary {
		l.entries = append(l.entries, e)
		return
	}

	minIdx := 0
	for i := 1; i < len(l.entries); i++ {
		if l.entries[i].Uses < l.entries[minIdx].Uses {
			minIdx = i
		}
	}
	l.entries[minIdx] = e
}

// Prune evicts the weakest quarter of a full library. Entries are ranked by
// uses weighted by the fitness of their source elite; the bottom 25% are
// dropped and the remainder shifted down.
func (l *Library) Prune() {
	if len(l.entries) < MaxLibrary {
		return
	}
	score := func(e *Entry) float32 {
		return float32(e.Uses) * math32.Max(e.AvgFitness, 0.1)
	}
	sort.SliceStable(l.entries, func(i, j int) bool {
		return score(l.entries[i]) > score(l.entries[j])
	})
	keep := len(l.entries) - len(l.entries)/4
	l.entries = l.entries[:keep]
}

// Decay multiplies every entry's use counter by 0.98, truncating. Entries
// that stop being injected drift toward eviction.
func (l *Library) Decay() {
	for _, e := range l.entries {
		e.Uses = int(float64(e.Uses) * 0.98)
	}
}
