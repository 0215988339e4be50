package visualization

import (
	"math"
	"testing"

	"github.com/dkemp/netspect/pkg/graph"
)

// testGraph builds a small path graph for layout tests
func testGraph(t *testing.T, n int, edges [][2]int64) *graph.Graph {
	t.Helper()

	g, err := graph.NewFromEdges(n, edges)
	if err != nil {
		t.Fatalf("Failed to build test graph: %v", err)
	}
	return g
}

// TestForceDirectedLayout tests the force-directed layout algorithm
func TestForceDirectedLayout(t *testing.T) {
	g := testGraph(t, 3, [][2]int64{{0, 1}, {1, 2}})

	layout := NewForceDirectedLayout(&LayoutConfig{
		Width:      800,
		Height:     600,
		Iterations: 50,
		Padding:    50,
	})

	positions, err := layout.ComputeLayout(g)
	if err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}

	if len(positions) != 3 {
		t.Fatalf("Expected 3 positions, got %d", len(positions))
	}

	for id, pos := range positions {
		if pos.X < 0 || pos.X > 800 || pos.Y < 0 || pos.Y > 600 {
			t.Errorf("Node %d position (%f, %f) outside canvas", id, pos.X, pos.Y)
		}
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			t.Errorf("Node %d has NaN position", id)
		}
	}
}

// TestForceDirectedLayout_Deterministic tests that a fixed seed reproduces positions
func TestForceDirectedLayout_Deterministic(t *testing.T) {
	g := testGraph(t, 6, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})

	config := &LayoutConfig{Width: 800, Height: 600, Iterations: 30, Padding: 50, Seed: 42}

	first, err := NewForceDirectedLayout(config).ComputeLayout(g)
	if err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}
	second, err := NewForceDirectedLayout(config).ComputeLayout(g)
	if err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}

	for id, pos := range first {
		if second[id] != pos {
			t.Errorf("Node %d: position differs between runs: %+v vs %+v", id, pos, second[id])
		}
	}
}

// TestForceDirectedLayout_SingleNode tests that one node is centered
func TestForceDirectedLayout_SingleNode(t *testing.T) {
	g := testGraph(t, 1, nil)

	layout := NewForceDirectedLayout(&LayoutConfig{Width: 800, Height: 600})

	positions, err := layout.ComputeLayout(g)
	if err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}

	pos := positions[0]
	if pos.X != 400 || pos.Y != 300 {
		t.Errorf("Expected centered position (400, 300), got (%f, %f)", pos.X, pos.Y)
	}
}

// TestCircularLayout tests circular node placement
func TestCircularLayout(t *testing.T) {
	g := testGraph(t, 8, nil)

	layout := NewCircularLayout(&LayoutConfig{Width: 800, Height: 600, Padding: 50})

	positions, err := layout.ComputeLayout(g)
	if err != nil {
		t.Fatalf("ComputeLayout failed: %v", err)
	}

	if len(positions) != 8 {
		t.Fatalf("Expected 8 positions, got %d", len(positions))
	}

	// All nodes should sit on the same circle around the canvas center
	radius := math.Min(400, 300) - 50
	for id, pos := range positions {
		dx := pos.X - 400
		dy := pos.Y - 300
		dist := math.Sqrt(dx*dx + dy*dy)
		if math.Abs(dist-radius) > 1e-9 {
			t.Errorf("Node %d at distance %f from center, expected %f", id, dist, radius)
		}
	}
}

// TestDegreeHistogram tests bucket count and value conversion
func TestDegreeHistogram(t *testing.T) {
	values, buckets := DegreeHistogram([]int{1, 3, 3, 5, 2})

	if len(values) != 5 {
		t.Errorf("Expected 5 values, got %d", len(values))
	}
	if buckets != 5 {
		t.Errorf("Expected 5 buckets for degrees 1..5, got %d", buckets)
	}
	if values[1] != 3.0 {
		t.Errorf("Expected values[1] = 3.0, got %f", values[1])
	}
}

// TestDegreeHistogram_Empty tests the empty degree sequence
func TestDegreeHistogram_Empty(t *testing.T) {
	values, buckets := DegreeHistogram(nil)

	if values != nil || buckets != 0 {
		t.Errorf("Expected empty histogram, got %v with %d buckets", values, buckets)
	}
}
