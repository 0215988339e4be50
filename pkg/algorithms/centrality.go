package algorithms

import (
	"container/list"

	"github.com/dkemp/netspect/pkg/graph"
)

// DegreeCentrality computes degree centrality for all nodes:
// the fraction of the other n-1 nodes each node is connected to.
// A single-node graph has no possible neighbors, so its score is 0.
func DegreeCentrality(g *graph.Graph) map[int64]float64 {
	n := g.NodeCount()
	scores := make(map[int64]float64, n)

	for _, id := range g.NodeIDs() {
		if n > 1 {
			scores[id] = float64(g.Degree(id)) / float64(n-1)
		} else {
			scores[id] = 0.0
		}
	}

	return scores
}

// bfsDistances returns hop distances from source to every reachable node,
// including distance 0 for the source itself.
func bfsDistances(g *graph.Graph, source int64) map[int64]int {
	distance := map[int64]int{source: 0}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v := queue.Remove(queue.Front()).(int64)
		for _, w := range g.Neighbors(v) {
			if _, seen := distance[w]; !seen {
				distance[w] = distance[v] + 1
				queue.PushBack(w)
			}
		}
	}

	return distance
}

// ClosenessCentrality computes closeness centrality for all nodes.
// For node v with r reachable nodes (including itself) and total shortest-path
// distance d to them, the score is ((r-1)/d) * ((r-1)/(n-1)). The second
// factor is the Wasserman-Faust correction, which penalises nodes whose
// component covers only part of the graph. Isolated nodes score 0.
func ClosenessCentrality(g *graph.Graph) map[int64]float64 {
	n := g.NodeCount()
	scores := make(map[int64]float64, n)

	for _, source := range g.NodeIDs() {
		distance := bfsDistances(g, source)

		totalDistance := 0
		for _, dist := range distance {
			totalDistance += dist
		}

		reachable := len(distance)
		if totalDistance > 0 && n > 1 {
			closeness := float64(reachable-1) / float64(totalDistance)
			scores[source] = closeness * float64(reachable-1) / float64(n-1)
		} else {
			scores[source] = 0.0
		}
	}

	return scores
}

// BetweennessCentrality computes betweenness centrality for all nodes using
// Brandes' algorithm with fractional shortest-path counting: when multiple
// shortest s-t paths exist, each carries an equal share of the pair's weight.
// Iterating every source counts every unordered pair twice, so the
// 2/((n-1)(n-2)) undirected normalisation reduces to 1/((n-1)(n-2)) here.
func BetweennessCentrality(g *graph.Graph) map[int64]float64 {
	nodeIDs := g.NodeIDs()
	n := len(nodeIDs)

	scores := make(map[int64]float64, n)
	for _, id := range nodeIDs {
		scores[id] = 0.0
	}

	for _, source := range nodeIDs {
		stack := make([]int64, 0, n)
		predecessors := make(map[int64][]int64, n)
		sigma := make(map[int64]float64, n)
		distance := make(map[int64]int, n)

		for _, id := range nodeIDs {
			sigma[id] = 0.0
			distance[id] = -1
		}
		sigma[source] = 1.0
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(int64)
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				if distance[w] < 0 {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of pair dependencies in reverse BFS order
		delta := make(map[int64]float64, n)
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				scores[w] += delta[w]
			}
		}
	}

	if n > 2 {
		normFactor := 1.0 / float64((n-1)*(n-2))
		for id := range scores {
			scores[id] *= normFactor
		}
	}

	return scores
}
