// Package pipeline wires graph generation, centrality computation, spectral
// analysis, ranking and reporting into a single synchronous run.
package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/dkemp/netspect/pkg/algorithms"
	"github.com/dkemp/netspect/pkg/config"
	"github.com/dkemp/netspect/pkg/graph"
	"github.com/dkemp/netspect/pkg/logging"
	"github.com/dkemp/netspect/pkg/metrics"
	"github.com/dkemp/netspect/pkg/report"
	"github.com/dkemp/netspect/pkg/spectral"
	"github.com/dkemp/netspect/pkg/visualization"
)

// chartTopK is how many nodes each bar chart shows. The text report keeps
// the shorter top list configured via Config.TopK.
const chartTopK = 10

// Stage names used in error messages, logs and metrics labels.
const (
	stageGeneration = "generation"
	stageCentrality = "centrality"
	stageSpectral   = "spectral analysis"
	stageRanking    = "ranking"
	stageReporting  = "reporting"
)

// Options configures an Analyzer. Zero-value fields fall back to nop
// implementations (and a console text sink on stdout).
type Options struct {
	Logger            logging.Logger
	Metrics           *metrics.Registry
	VisualizationSink report.VisualizationSink
	TextSink          report.TextSink
}

// Analyzer runs the analysis pipeline against injected sinks.
type Analyzer struct {
	logger   logging.Logger
	metrics  *metrics.Registry
	vizSink  report.VisualizationSink
	textSink report.TextSink
}

// NewAnalyzer creates an analyzer with the given options
func NewAnalyzer(opts Options) *Analyzer {
	a := &Analyzer{
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		vizSink:  opts.VisualizationSink,
		textSink: opts.TextSink,
	}
	if a.logger == nil {
		a.logger = logging.NewNopLogger()
	}
	if a.metrics == nil {
		a.metrics = metrics.NewRegistry()
	}
	if a.vizSink == nil {
		a.vizSink = report.NopVisualizationSink{}
	}
	if a.textSink == nil {
		a.textSink = report.NewConsoleTextSink(os.Stdout)
	}
	return a
}

// AnalyzeNetwork runs one analysis with explicit parameters and all other
// settings at their defaults.
func (a *Analyzer) AnalyzeNetwork(n int, p float64, seed int64) (*report.AnalysisReport, error) {
	cfg := config.Default()
	cfg.Nodes = n
	cfg.EdgeProbability = p
	cfg.Seed = seed
	return a.Analyze(cfg)
}

// Analyze runs the full pipeline for the given configuration. Any stage
// failure aborts the run; there are no partial reports.
func (a *Analyzer) Analyze(cfg *config.Config) (*report.AnalysisReport, error) {
	start := time.Now()

	result, err := a.run(cfg)
	if err != nil {
		a.metrics.RecordRun("error", time.Since(start))
		a.logger.Error("analysis failed", logging.Error(err))
		return nil, err
	}

	a.metrics.RecordRun("success", time.Since(start))
	return result, nil
}

func (a *Analyzer) run(cfg *config.Config) (*report.AnalysisReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s failed: %w", stageGeneration, err)
	}

	// Generation
	stage := logging.StartStage(a.logger, "graph generated",
		logging.Stage(stageGeneration), logging.Seed(cfg.Seed))
	g, err := graph.NewErdosRenyi(cfg.Nodes, cfg.EdgeProbability, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", stageGeneration, err)
	}
	a.metrics.RecordStage(stageGeneration, stage.End())
	a.metrics.UpdateGraphMetrics(g.NodeCount(), g.EdgeCount())
	a.logger.Info("graph ready", logging.Nodes(g.NodeCount()), logging.Edges(g.EdgeCount()))

	// Centrality measures
	stage = logging.StartStage(a.logger, "centralities computed", logging.Stage(stageCentrality))
	centralities := report.Centralities{
		Degree:      algorithms.DegreeCentrality(g),
		Closeness:   algorithms.ClosenessCentrality(g),
		Betweenness: algorithms.BetweennessCentrality(g),
	}
	centralities.Eigenvector, err = algorithms.EigenvectorCentrality(g)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", stageCentrality, err)
	}
	a.metrics.RecordStage(stageCentrality, stage.End())

	// Spectral analysis
	stage = logging.StartStage(a.logger, "spectrum computed", logging.Stage(stageSpectral))
	energy, err := spectral.Energy(g)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", stageSpectral, err)
	}
	a.metrics.RecordStage(stageSpectral, stage.End())
	a.metrics.GraphEnergy.Set(energy.Energy)

	// Ranking and assembly
	stage = logging.StartStage(a.logger, "report assembled", logging.Stage(stageRanking))
	params := report.Parameters{Nodes: cfg.Nodes, EdgeProbability: cfg.EdgeProbability, Seed: cfg.Seed}
	result, err := report.Assemble(params, centralities, energy, cfg.TopK)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", stageRanking, err)
	}
	a.metrics.RecordStage(stageRanking, stage.End())

	// Emission to sinks
	stage = logging.StartStage(a.logger, "report emitted", logging.Stage(stageReporting))
	if err := a.emitVisualizations(cfg, g, centralities, energy); err != nil {
		return nil, fmt.Errorf("%s failed: %w", stageReporting, err)
	}
	if err := a.textSink.WriteReport(result); err != nil {
		return nil, fmt.Errorf("%s failed: %w", stageReporting, err)
	}
	a.metrics.RecordStage(stageReporting, stage.End())

	return result, nil
}

// emitVisualizations delivers the chart series in their fixed order: raw
// layout, force-directed layout, degree histogram, four top-k bar charts,
// then the eigenvalue spectrum.
func (a *Analyzer) emitVisualizations(cfg *config.Config, g *graph.Graph, centralities report.Centralities, energy *spectral.EnergyResult) error {
	layoutCfg := &visualization.LayoutConfig{
		Width:      cfg.Layout.Width,
		Height:     cfg.Layout.Height,
		Iterations: cfg.Layout.Iterations,
		Padding:    cfg.Layout.Padding,
		Seed:       cfg.Seed,
	}

	rawPositions, err := visualization.NewCircularLayout(layoutCfg).ComputeLayout(g)
	if err != nil {
		return err
	}
	if err := a.vizSink.RenderGraph(g, report.LayoutRaw, rawPositions, "Raw friendship network"); err != nil {
		return err
	}

	forcePositions, err := visualization.NewForceDirectedLayout(layoutCfg).ComputeLayout(g)
	if err != nil {
		return err
	}
	if err := a.vizSink.RenderGraph(g, report.LayoutForceDirected, forcePositions, "Force-directed layout"); err != nil {
		return err
	}

	histValues, histBuckets := visualization.DegreeHistogram(g.Degrees())
	if err := a.vizSink.RenderHistogram(histValues, histBuckets, "Degree distribution"); err != nil {
		return err
	}

	barCharts := []struct {
		scores map[int64]float64
		title  string
	}{
		{centralities.Degree, "Top users by degree centrality"},
		{centralities.Closeness, "Top users by closeness centrality"},
		{centralities.Betweenness, "Top users by betweenness centrality"},
		{centralities.Eigenvector, "Top users by eigenvector centrality"},
	}
	for _, chart := range barCharts {
		entries, err := algorithms.TopK(chart.scores, chartTopK)
		if err != nil {
			return err
		}
		if err := a.vizSink.RenderBarChart(entries, chart.title); err != nil {
			return err
		}
	}

	spectrum := make([]float64, len(energy.Eigenvalues))
	for i, v := range energy.Eigenvalues {
		if v < 0 {
			v = -v
		}
		spectrum[i] = v
	}
	return a.vizSink.RenderLineChart(spectrum, "Eigenvalue spectrum")
}
