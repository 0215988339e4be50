package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an undirected simple graph with node IDs 0..n-1.
// It is immutable after construction: the generator is the only writer.
type Graph struct {
	n   int
	und *simple.UndirectedGraph
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return g.n
}

// EdgeCount returns the number of undirected edges in the graph.
func (g *Graph) EdgeCount() int {
	return g.und.Edges().Len()
}

// NodeIDs returns all node identifiers in ascending order.
func (g *Graph) NodeIDs() []int64 {
	ids := make([]int64, g.n)
	for i := range ids {
		ids[i] = int64(i)
	}
	return ids
}

// HasEdge reports whether an edge exists between u and v.
func (g *Graph) HasEdge(u, v int64) bool {
	return g.und.HasEdgeBetween(u, v)
}

// Degree returns the number of neighbors of the given node.
func (g *Graph) Degree(id int64) int {
	return g.und.From(id).Len()
}

// Degrees returns the degree of every node, indexed by node ID.
func (g *Graph) Degrees() []int {
	degrees := make([]int, g.n)
	for i := 0; i < g.n; i++ {
		degrees[i] = g.Degree(int64(i))
	}
	return degrees
}

// Neighbors returns the neighbors of the given node in ascending ID order.
// Sorting matters: gonum's iterator order is map-random, and traversal
// order must be stable for byte-identical results across runs.
func (g *Graph) Neighbors(id int64) []int64 {
	it := g.und.From(id)
	neighbors := make([]int64, 0, it.Len())
	for it.Next() {
		neighbors = append(neighbors, it.Node().ID())
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	return neighbors
}

// Edges returns all undirected edges as (u, v) pairs with u < v,
// sorted ascending by u then v.
func (g *Graph) Edges() [][2]int64 {
	it := g.und.Edges()
	edges := make([][2]int64, 0, it.Len())
	for it.Next() {
		e := it.Edge()
		u, v := e.From().ID(), e.To().ID()
		if u > v {
			u, v = v, u
		}
		edges = append(edges, [2]int64{u, v})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}
