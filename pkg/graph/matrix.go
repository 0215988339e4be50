package graph

import "gonum.org/v1/gonum/mat"

// AdjacencyMatrix builds the symmetric n×n 0/1 adjacency matrix of the
// graph: 1 where an edge exists, 0 elsewhere, zero diagonal.
func (g *Graph) AdjacencyMatrix() *mat.SymDense {
	a := mat.NewSymDense(g.n, nil)
	for _, e := range g.Edges() {
		a.SetSym(int(e[0]), int(e[1]), 1)
	}
	return a
}
