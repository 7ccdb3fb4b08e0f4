package lib

import (
	"fmt"
	"sort"

	"github.com/thebitbrine/tree-gp/tree"
)

// Mining tunables.
const (
	minCandidateSize = 5
	maxCandidateSize = 12
	maxCandidates    = 100
	eliteScan        = 5   // programs mined per update
	similarityCutoff = 0.7 // candidates closer than this to an entry are dropped
	insertLimit      = 5   // entries added per update
)

// a candidate pairs a subtree with the fitness of the elite it came from.
type candidate struct {
	node    *tree.Node
	fitness float32
	quality int
}

// Update mines programs for new library entries. The fittest eligible
// programs are scanned for mid-sized subtrees; survivors of the novelty
// filters are quality-ranked, parameterised, and inserted. A full library is
// then competitively pruned, and every entry's use count decays.
func Update(l *Library, programs []*tree.Program) {
	sorted := make([]*tree.Program, 0, len(programs))
	for _, p := range programs {
		if p != nil {
			sorted = append(sorted, p)
		}
	}
	if len(sorted) == 0 {
		return
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})

	best := sorted[0].Fitness
	worst := sorted[len(sorted)-1].Fitness
	threshold := best - 0.2*(best-worst)

	var cands []candidate
	positives := 0
	for i := 0; i < len(sorted) && i < eliteScan; i++ {
		p := sorted[i]
		if p.Fitness < threshold {
			break
		}
		if p.Fitness > 0 {
			positives++
		}
		extractSubtrees(p.Root, p.Fitness, &cands)
	}

	for i := range cands {
		cands[i].quality = quality(cands[i].node.Size(), positives)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].quality > cands[j].quality
	})

	added := 0
	for _, c := range cands {
		if added >= insertLimit {
			break
		}
		if c.quality <= 0 {
			break
		}
		if !admissible(l, c.node) {
			continue
		}
		body, numParams := Parameterise(c.node)
		l.Add(body, fmt.Sprintf("lib%d", l.Len()), c.fitness, numParams)
		added++
	}

	l.Prune()
	l.Decay()
}

// extractSubtrees collects every subtree of root whose node count lies in
// the candidate size band, up to the global candidate cap.
func extractSubtrees(n *tree.Node, fitness float32, cands *[]candidate) {
	if n == nil || len(*cands) >= maxCandidates {
		return
	}
	if size := n.Size(); minCandidateSize <= size && size <= maxCandidateSize {
		*cands = append(*cands, candidate{node: n, fitness: fitness})
	}
	for _, child := range n.Children {
		extractSubtrees(child, fitness, cands)
	}
}

// admissible rejects trivial candidates and those the library already covers,
// exactly or by similarity. Parameterisation changes input nodes only, so
// novelty is judged on the raw candidate against the abstracted bodies.
func admissible(l *Library, n *tree.Node) bool {
	if n.Size() < minCandidateSize || len(n.Children) == 0 {
		return false
	}
	if containsParam(n) {
		// A parameter reference only means something under the call frame
		// that bound it; abstracted out of context it would dangle.
		return false
	}
	if l.Contains(n) {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if tree.Similarity(n, l.Body(i)) > similarityCutoff {
			return false
		}
	}
	return true
}

func containsParam(n *tree.Node) bool {
	if n == nil {
		return false
	}
	if n.Op == tree.OpParam {
		return true
	}
	for _, child := range n.Children {
		if containsParam(child) {
			return true
		}
	}
	return false
}

// quality scores a candidate by size, with a small bonus per positive-fitness
// elite examined this update.
func quality(size, positives int) int {
	q := 0
	switch {
	case size < minCandidateSize:
		q -= 20
	case size <= 10:
		q += 10
	}
	if size > 15 {
		q -= 10
	}
	return q + positives
}
