package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkemp/netspect/pkg/algorithms"
	"github.com/dkemp/netspect/pkg/graph"
	"github.com/dkemp/netspect/pkg/visualization"
)

// LayoutMode tags a structural rendering request.
type LayoutMode string

const (
	// LayoutRaw is a plain structural view with no physics.
	LayoutRaw LayoutMode = "raw"
	// LayoutForceDirected is a spring-embedder view.
	LayoutForceDirected LayoutMode = "force_directed"
)

// VisualizationSink receives the four chart data shapes the pipeline emits.
// Rendering is entirely the sink's concern.
type VisualizationSink interface {
	RenderGraph(g *graph.Graph, mode LayoutMode, positions map[int64]visualization.Position, title string) error
	RenderHistogram(values []float64, buckets int, title string) error
	RenderBarChart(entries []algorithms.RankedNode, title string) error
	RenderLineChart(values []float64, title string) error
}

// TextSink receives the assembled report for human-readable output.
type TextSink interface {
	WriteReport(r *AnalysisReport) error
}

// NopVisualizationSink discards everything (useful when only the text
// report is wanted).
type NopVisualizationSink struct{}

func (NopVisualizationSink) RenderGraph(*graph.Graph, LayoutMode, map[int64]visualization.Position, string) error {
	return nil
}
func (NopVisualizationSink) RenderHistogram([]float64, int, string) error         { return nil }
func (NopVisualizationSink) RenderBarChart([]algorithms.RankedNode, string) error { return nil }
func (NopVisualizationSink) RenderLineChart([]float64, string) error              { return nil }

// ConsoleTextSink renders the report as one line per metric plus one for
// the graph energy.
type ConsoleTextSink struct {
	Writer io.Writer
}

// NewConsoleTextSink creates a text sink writing to w
func NewConsoleTextSink(w io.Writer) *ConsoleTextSink {
	return &ConsoleTextSink{Writer: w}
}

// WriteReport writes the human-readable summary
func (s *ConsoleTextSink) WriteReport(r *AnalysisReport) error {
	lines := []struct {
		label   string
		entries []algorithms.RankedNode
	}{
		{"Degree", r.TopDegree},
		{"Closeness", r.TopCloseness},
		{"Betweenness", r.TopBetweenness},
		{"Eigenvector", r.TopEigenvector},
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(s.Writer, "Top-%d by %s: %s\n", len(line.entries), line.label, formatEntries(line.entries)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(s.Writer, "Graph Energy: %.6f\n", r.Energy.Energy)
	return err
}

func formatEntries(entries []algorithms.RankedNode) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("(%d, %.4f)", e.ID, e.Score)
	}
	return out
}

// chartSeries is the wire shape JSONLineSink emits, one JSON object per
// chart, for piping to an external renderer.
type chartSeries struct {
	Kind      string                  `json:"kind"`
	Title     string                  `json:"title"`
	Mode      LayoutMode              `json:"mode,omitempty"`
	Nodes     []int64                 `json:"nodes,omitempty"`
	Edges     [][2]int64              `json:"edges,omitempty"`
	Positions map[int64][2]float64    `json:"positions,omitempty"`
	Values    []float64               `json:"values,omitempty"`
	Buckets   int                     `json:"buckets,omitempty"`
	Entries   []algorithms.RankedNode `json:"entries,omitempty"`
}

// JSONLineSink is a VisualizationSink that marshals each chart as a single
// JSON line to an io.Writer.
type JSONLineSink struct {
	enc *json.Encoder
}

// NewJSONLineSink creates a JSON-line visualization sink writing to w
func NewJSONLineSink(w io.Writer) *JSONLineSink {
	return &JSONLineSink{enc: json.NewEncoder(w)}
}

func (s *JSONLineSink) RenderGraph(g *graph.Graph, mode LayoutMode, positions map[int64]visualization.Position, title string) error {
	pos := make(map[int64][2]float64, len(positions))
	for id, p := range positions {
		pos[id] = [2]float64{p.X, p.Y}
	}
	return s.enc.Encode(chartSeries{
		Kind:      "graph",
		Title:     title,
		Mode:      mode,
		Nodes:     g.NodeIDs(),
		Edges:     g.Edges(),
		Positions: pos,
	})
}

func (s *JSONLineSink) RenderHistogram(values []float64, buckets int, title string) error {
	return s.enc.Encode(chartSeries{Kind: "histogram", Title: title, Values: values, Buckets: buckets})
}

func (s *JSONLineSink) RenderBarChart(entries []algorithms.RankedNode, title string) error {
	return s.enc.Encode(chartSeries{Kind: "bar", Title: title, Entries: entries})
}

func (s *JSONLineSink) RenderLineChart(values []float64, title string) error {
	return s.enc.Encode(chartSeries{Kind: "line", Title: title, Values: values})
}
