package visualization

import (
	"math"

	"github.com/dkemp/netspect/pkg/graph"
)

// CircularLayout arranges nodes in a circle, in ascending node-ID order.
// This is the "raw" structural view: positions depend only on node count.
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &CircularLayout{config: config}
}

// ComputeLayout arranges nodes in a circle
func (cl *CircularLayout) ComputeLayout(g *graph.Graph) (map[int64]Position, error) {
	nodeIDs := g.NodeIDs()
	positions := make(map[int64]Position, len(nodeIDs))

	if len(nodeIDs) == 0 {
		return positions, nil
	}

	centerX := cl.config.Width / 2
	centerY := cl.config.Height / 2
	radius := math.Min(centerX, centerY) - cl.config.Padding

	angleStep := 2 * math.Pi / float64(len(nodeIDs))

	for i, nodeID := range nodeIDs {
		angle := float64(i) * angleStep
		positions[nodeID] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions, nil
}
