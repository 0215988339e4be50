package algorithms

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dkemp/netspect/pkg/graph"
)

// ErrIllDefined is returned when eigenvector centrality has no unique
// dominant eigenvector, which happens on empty graphs and on disconnected
// graphs whose components tie for the leading eigenvalue.
var ErrIllDefined = errors.New("eigenvector centrality is ill-defined for this graph")

// spectralGapTolerance decides when two leading eigenvalues count as tied.
const spectralGapTolerance = 1e-10

// EigenvectorCentrality computes eigenvector centrality for all nodes via a
// direct eigendecomposition of the adjacency matrix. The score vector is the
// Perron eigenvector of the largest eigenvalue, sign-fixed to be nonnegative
// and normalised so its squared entries sum to 1.
func EigenvectorCentrality(g *graph.Graph) (map[int64]float64, error) {
	n := g.NodeCount()

	a := g.AdjacencyMatrix()

	var eig mat.EigenSym
	if ok := eig.Factorize(a, true); !ok {
		return nil, fmt.Errorf("adjacency matrix eigendecomposition failed")
	}

	// EigenSym returns eigenvalues in ascending order; the dominant one is
	// last. For a nonnegative symmetric matrix the spectral radius equals
	// the largest eigenvalue, so no magnitude comparison is needed.
	values := eig.Values(nil)
	dominant := values[n-1]

	if n == 1 || dominant-values[n-2] < spectralGapTolerance {
		return nil, fmt.Errorf("%w: leading eigenvalues tied at %v", ErrIllDefined, dominant)
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// LAPACK may hand back the eigenvector with either overall sign.
	vec := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		vec[i] = vectors.At(i, n-1)
		sum += vec[i]
	}
	if sum < 0 {
		for i := range vec {
			vec[i] = -vec[i]
		}
	}

	// A genuinely mixed-sign dominant eigenvector means the graph violates
	// the Perron-Frobenius positivity assumption (disconnected input).
	norm := 0.0
	for i := range vec {
		if vec[i] < -spectralGapTolerance {
			return nil, fmt.Errorf("%w: dominant eigenvector is not entrywise nonnegative", ErrIllDefined)
		}
		norm += vec[i] * vec[i]
	}
	norm = math.Sqrt(norm)

	scores := make(map[int64]float64, n)
	for i := 0; i < n; i++ {
		scores[int64(i)] = vec[i] / norm
	}

	return scores, nil
}
