// Package analysis computes graph properties of a contact network.
package analysis

import (
	"slices"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// adjacency is an undirected view of an edge table. Parallel edges add weight.
type adjacency struct {
	nodes []int
	adj   map[int]map[int]int
}

func newAdjacency(edges model.EdgeTable) *adjacency {
	g := &adjacency{nodes: edges.Nodes(), adj: make(map[int]map[int]int)}
	for _, n := range g.nodes {
		g.adj[n] = make(map[int]int)
	}
	for _, e := range edges {
		if e.A == e.B {
			continue
		}
		g.adj[e.A][e.B]++
		g.adj[e.B][e.A]++
	}
	return g
}

// Degree returns the number of distinct neighbours of every residue.
func Degree(edges model.EdgeTable) map[int]int {
	g := newAdjacency(edges)
	deg := make(map[int]int, len(g.nodes))
	for _, n := range g.nodes {
		deg[n] = len(g.adj[n])
	}
	return deg
}

// Components returns the connected components, each sorted ascending, ordered
// by their smallest residue.
func Components(edges model.EdgeTable) [][]int {
	g := newAdjacency(edges)
	visited := make(map[int]bool, len(g.nodes))

	var components [][]int
	for _, n := range g.nodes {
		if visited[n] {
			continue
		}
		var component []int
		g.dfs(n, visited, &component)
		slices.Sort(component)
		components = append(components, component)
	}
	return components
}

func (g *adjacency) dfs(u int, visited map[int]bool, component *[]int) {
	visited[u] = true
	*component = append(*component, u)
	for v := range g.adj[u] {
		if !visited[v] {
			g.dfs(v, visited, component)
		}
	}
}

// Summary is the analysis reported alongside a network.
type Summary struct {
	Nodes       int         `json:"nodes"`
	Edges       int         `json:"edges"`
	Degree      map[int]int `json:"degree"`
	MaxDegree   int         `json:"max_degree"`
	Components  [][]int     `json:"components"`
	Communities [][]int     `json:"communities"`
}

func Summarize(edges model.EdgeTable) Summary {
	deg := Degree(edges)
	s := Summary{
		Nodes:       len(deg),
		Edges:       len(edges),
		Degree:      deg,
		Components:  Components(edges),
		Communities: NewLabelPropagationDetector().Detect(edges),
	}
	for _, d := range deg {
		s.MaxDegree = max(s.MaxDegree, d)
	}
	return s
}
