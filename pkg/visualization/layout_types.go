package visualization

import (
	"github.com/dkemp/netspect/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // RNG seed so repeated layouts are reproducible
}

// DefaultLayoutConfig returns a layout configuration suitable for
// networks of up to a few hundred nodes.
func DefaultLayoutConfig() *LayoutConfig {
	return &LayoutConfig{
		Width:      800,
		Height:     600,
		Iterations: 50,
		Padding:    50,
	}
}

// Layout interface for different layout algorithms
type Layout interface {
	ComputeLayout(g *graph.Graph) (map[int64]Position, error)
}
