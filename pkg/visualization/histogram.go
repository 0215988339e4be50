package visualization

// DegreeHistogram converts a degree sequence into histogram values with one
// bucket per integer degree from the minimum to the maximum observed, the
// shape a renderer needs for a degree-distribution chart.
func DegreeHistogram(degrees []int) (values []float64, buckets int) {
	if len(degrees) == 0 {
		return nil, 0
	}

	values = make([]float64, len(degrees))
	minDeg, maxDeg := degrees[0], degrees[0]
	for i, d := range degrees {
		values[i] = float64(d)
		if d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
	}

	return values, maxDeg - minDeg + 1
}
