// Package report assembles analysis results into an immutable record and
// hands it to pluggable visualization and text sinks.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkemp/netspect/pkg/algorithms"
	"github.com/dkemp/netspect/pkg/spectral"
)

// Parameters records the generator inputs a report was produced from.
type Parameters struct {
	Nodes           int     `json:"nodes"`
	EdgeProbability float64 `json:"edge_probability"`
	Seed            int64   `json:"seed"`
}

// Centralities bundles the four score mappings, one entry per node each.
type Centralities struct {
	Degree      map[int64]float64
	Closeness   map[int64]float64
	Betweenness map[int64]float64
	Eigenvector map[int64]float64
}

// AnalysisReport is the final output of one analysis run. It is assembled
// once and never mutated afterwards.
type AnalysisReport struct {
	RunID          string                  `json:"run_id"`
	GeneratedAt    time.Time               `json:"generated_at"`
	Params         Parameters              `json:"params"`
	TopDegree      []algorithms.RankedNode `json:"top_degree"`
	TopCloseness   []algorithms.RankedNode `json:"top_closeness"`
	TopBetweenness []algorithms.RankedNode `json:"top_betweenness"`
	TopEigenvector []algorithms.RankedNode `json:"top_eigenvector"`
	Energy         *spectral.EnergyResult  `json:"energy"`
}

// Assemble ranks the top k nodes for each centrality measure and packages
// them with the spectral result. It performs no computation beyond ranking.
func Assemble(params Parameters, centralities Centralities, energy *spectral.EnergyResult, k int) (*AnalysisReport, error) {
	topDegree, err := algorithms.TopK(centralities.Degree, k)
	if err != nil {
		return nil, fmt.Errorf("ranking degree centrality: %w", err)
	}
	topCloseness, err := algorithms.TopK(centralities.Closeness, k)
	if err != nil {
		return nil, fmt.Errorf("ranking closeness centrality: %w", err)
	}
	topBetweenness, err := algorithms.TopK(centralities.Betweenness, k)
	if err != nil {
		return nil, fmt.Errorf("ranking betweenness centrality: %w", err)
	}
	topEigenvector, err := algorithms.TopK(centralities.Eigenvector, k)
	if err != nil {
		return nil, fmt.Errorf("ranking eigenvector centrality: %w", err)
	}

	return &AnalysisReport{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Params:         params,
		TopDegree:      topDegree,
		TopCloseness:   topCloseness,
		TopBetweenness: topBetweenness,
		TopEigenvector: topEigenvector,
		Energy:         energy,
	}, nil
}
