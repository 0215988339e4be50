package algorithms

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dkemp/netspect/pkg/graph"
)

// TestCentralityInvariants uses property-based testing to verify invariants
// that hold for any generated graph
func TestCentralityInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: every measure scores exactly the node set
	properties.Property("score domain equals the node set", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			g, err := graph.NewErdosRenyi(n, p, seed)
			if err != nil {
				return false
			}

			for _, scores := range []map[int64]float64{
				DegreeCentrality(g),
				ClosenessCentrality(g),
				BetweennessCentrality(g),
			} {
				if len(scores) != n {
					return false
				}
				for _, id := range g.NodeIDs() {
					if _, ok := scores[id]; !ok {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	// Property 2: degree and closeness scores stay in [0, 1]
	properties.Property("normalised scores stay in [0, 1]", prop.ForAll(
		func(n int, p float64, seed int64) bool {
			g, err := graph.NewErdosRenyi(n, p, seed)
			if err != nil {
				return false
			}

			for _, scores := range []map[int64]float64{
				DegreeCentrality(g),
				ClosenessCentrality(g),
			} {
				for _, score := range scores {
					if score < 0 || score > 1 {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	// Property 3: topK returns min(k, n) entries in descending score order
	properties.Property("topK length is min(k, n) and order is descending", prop.ForAll(
		func(n int, p float64, seed int64, k int) bool {
			g, err := graph.NewErdosRenyi(n, p, seed)
			if err != nil {
				return false
			}

			scores := DegreeCentrality(g)
			ranked, err := TopK(scores, k)
			if err != nil {
				return false
			}

			want := k
			if want > n {
				want = n
			}
			if len(ranked) != want {
				return false
			}
			for i := 1; i < len(ranked); i++ {
				if ranked[i].Score > ranked[i-1].Score {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Float64Range(0, 1),
		gen.Int64(),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}
