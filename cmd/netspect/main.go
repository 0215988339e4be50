package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dkemp/netspect/pkg/config"
	"github.com/dkemp/netspect/pkg/logging"
	"github.com/dkemp/netspect/pkg/metrics"
	"github.com/dkemp/netspect/pkg/pipeline"
	"github.com/dkemp/netspect/pkg/report"
)

func main() {
	var (
		configFile = flag.String("config", "", "Optional YAML config file")
		nodes      = flag.Int("nodes", config.DefaultNodes, "Number of nodes in the generated network")
		prob       = flag.Float64("prob", config.DefaultEdgeProbability, "Edge probability in [0, 1]")
		seed       = flag.Int64("seed", config.DefaultSeed, "Random seed for reproducible generation")
		topK       = flag.Int("top", config.DefaultTopK, "How many top nodes the report lists per metric")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error")
		emitJSON   = flag.Bool("json", false, "Emit chart series as JSON lines on stdout")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netspect: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, nodes, prob, seed, topK, logLevel)

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	var vizSink report.VisualizationSink = report.NopVisualizationSink{}
	if *emitJSON {
		vizSink = report.NewJSONLineSink(os.Stdout)
	}

	analyzer := pipeline.NewAnalyzer(pipeline.Options{
		Logger:            logger,
		Metrics:           metrics.NewRegistry(),
		VisualizationSink: vizSink,
		TextSink:          report.NewConsoleTextSink(os.Stdout),
	})

	result, err := analyzer.Analyze(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netspect: %v\n", err)
		os.Exit(1)
	}

	logger.Info("analysis complete",
		logging.String("run_id", result.RunID),
		logging.Float64("energy", result.Energy.Energy))
}

// loadConfig reads the config file when given, defaults otherwise
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cfg *config.Config, nodes *int, prob *float64, seed *int64, topK *int, logLevel *string) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nodes":
			cfg.Nodes = *nodes
		case "prob":
			cfg.EdgeProbability = *prob
		case "seed":
			cfg.Seed = *seed
		case "top":
			cfg.TopK = *topK
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
}
