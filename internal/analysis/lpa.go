package analysis

import (
	"cmp"
	"math"
	"slices"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// LabelPropagationDetector finds residue communities with the Label
// Propagation Algorithm.
type LabelPropagationDetector struct {
	MaxIterations int
}

func NewLabelPropagationDetector() *LabelPropagationDetector {
	return &LabelPropagationDetector{
		MaxIterations: 20,
	}
}

// Detect returns communities of at least two residues, each sorted ascending
// and ordered by their smallest residue. Nodes are visited in ascending order
// and ties go to the largest label, so the result is deterministic.
func (d *LabelPropagationDetector) Detect(edges model.EdgeTable) [][]int {
	g := newAdjacency(edges)
	if len(g.nodes) == 0 {
		return nil
	}

	labels := make(map[int]int, len(g.nodes))
	for _, n := range g.nodes {
		labels[n] = n
	}

	for iter := 0; iter < d.MaxIterations; iter++ {
		changeCount := 0

		for _, u := range g.nodes {
			neighbors := g.adj[u]
			if len(neighbors) == 0 {
				continue
			}

			labelCounts := make(map[int]int)
			maxCount := 0
			for v, weight := range neighbors {
				label := labels[v]
				labelCounts[label] += weight
				maxCount = max(maxCount, labelCounts[label])
			}

			bestLabel := labels[u]
			if labelCounts[bestLabel] != maxCount {
				bestLabel = math.MinInt
				for label, count := range labelCounts {
					if count == maxCount && label > bestLabel {
						bestLabel = label
					}
				}
			}

			if labels[u] != bestLabel {
				labels[u] = bestLabel
				changeCount++
			}
		}

		if changeCount == 0 {
			break
		}
	}

	clusters := make(map[int][]int)
	for _, n := range g.nodes {
		clusters[labels[n]] = append(clusters[labels[n]], n)
	}

	var communities [][]int
	for _, cluster := range clusters {
		if len(cluster) >= 2 {
			communities = append(communities, cluster)
		}
	}
	slices.SortFunc(communities, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })

	return communities
}
