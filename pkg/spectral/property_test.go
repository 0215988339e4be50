package spectral

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dkemp/netspect/pkg/graph"
)

// TestEnergyInvariants uses property-based testing to verify spectrum invariants
func TestEnergyInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: energy is nonnegative and the spectrum has n entries
	properties.Property("energy is nonnegative with a full spectrum", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			g, err := graph.NewErdosRenyi(n, p, seed)
			if err != nil {
				return false
			}

			result, err := Energy(g)
			if err != nil {
				return false
			}
			return result.Energy >= 0 && len(result.Eigenvalues) == n
		},
		gen.IntRange(1, 30),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	// Property 2: adjacency eigenvalues of a simple graph sum to zero
	// (zero trace), so the energy equals twice the sum of positive ones
	properties.Property("spectrum sums to zero", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			g, err := graph.NewErdosRenyi(n, p, seed)
			if err != nil {
				return false
			}

			result, err := Energy(g)
			if err != nil {
				return false
			}

			sum := 0.0
			for _, v := range result.Eigenvalues {
				sum += v
			}
			return math.Abs(sum) < 1e-8
		},
		gen.IntRange(1, 30),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
