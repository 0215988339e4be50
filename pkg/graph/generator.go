package graph

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/graph/simple"
)

var (
	// ErrInvalidNodeCount is returned when the requested node count is not positive.
	ErrInvalidNodeCount = errors.New("node count must be positive")

	// ErrInvalidProbability is returned when the edge probability is outside [0, 1].
	ErrInvalidProbability = errors.New("edge probability must be in [0, 1]")

	// ErrInvalidEdge is returned when an explicit edge references a missing
	// node or is a self-loop.
	ErrInvalidEdge = errors.New("edge endpoints must be distinct existing nodes")
)

// NewFromEdges builds a graph with nodes 0..n-1 and the given undirected
// edges. Duplicate pairs collapse to a single edge.
func NewFromEdges(n int, edges [][2]int64) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidNodeCount, n)
	}

	und := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		und.AddNode(simple.Node(i))
	}

	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v || u < 0 || v < 0 || u >= int64(n) || v >= int64(n) {
			return nil, fmt.Errorf("%w: (%d, %d) with n=%d", ErrInvalidEdge, u, v, n)
		}
		und.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}

	return &Graph{n: n, und: und}, nil
}

// NewErdosRenyi generates an Erdős–Rényi G(n, p) random graph: every
// unordered pair of distinct nodes gets an edge independently with
// probability p. The pair iteration order (ascending i, then ascending j)
// and the seeded source together guarantee that equal (n, p, seed) always
// produce the identical edge set.
func NewErdosRenyi(n int, p float64, seed int64) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidNodeCount, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%v", ErrInvalidProbability, p)
	}

	und := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		und.AddNode(simple.Node(i))
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				und.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return &Graph{n: n, und: und}, nil
}
