// Command outreach generates the grant outreach email sequence. For
// every (recipient, event) pair in the selected stages it runs the
// eligibility engine and, for approved pairs, produces subject/body via
// the generative backend or the deterministic per-stage templates.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundingforward/outreach/internal/batch"
	"github.com/fundingforward/outreach/internal/config"
	"github.com/fundingforward/outreach/internal/engine"
	"github.com/fundingforward/outreach/internal/generator"
	"github.com/fundingforward/outreach/internal/pkg/logger"
	"github.com/fundingforward/outreach/internal/stage"
	"github.com/fundingforward/outreach/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "config.yaml", "Path to config file (optional)")
		stageID     = flag.String("stage", "", "Generate a single stage (0, 1, 3, 5, 6, 7a, 7b)")
		allStages   = flag.Bool("all", false, "Generate all seven stages")
		noAI        = flag.Bool("no-ai", false, "Skip the generative backend, use deterministic templates")
		provider    = flag.String("provider", "", "Generation provider: groq or bedrock")
		recipients  = flag.String("recipients", "", "Override recipients file path")
		events      = flag.String("events", "", "Override events file path")
		output      = flag.String("output", "", "Override output directory")
		exportText  = flag.Bool("export-text", false, "Also write per-email .txt files plus index and summary report")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	if *verbose {
		logger.SetLevel(logger.DEBUG)
	}

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		logger.Error("failed to load config", "path", *configPath, "error", err)
		return 1
	}
	if *recipients != "" {
		cfg.Paths.RecipientsFile = *recipients
	}
	if *events != "" {
		cfg.Paths.EventsFile = *events
	}
	if *output != "" {
		cfg.Paths.OutputDir = *output
	}
	if *provider != "" {
		cfg.Generation.Provider = *provider
	}

	stages, err := selectStages(*stageID, *allStages)
	if err != nil {
		logger.Error("invalid stage selection", "error", err)
		return 1
	}

	recs, err := storage.LoadRecipients(cfg.Paths.RecipientsFile)
	if err != nil {
		logger.Error("cannot load recipients", "path", cfg.Paths.RecipientsFile, "error", err)
		return 1
	}
	evts, err := storage.LoadEvents(cfg.Paths.EventsFile)
	if err != nil {
		logger.Error("cannot load events", "path", cfg.Paths.EventsFile, "error", err)
		return 1
	}
	logger.Info("input loaded", "recipients", len(recs), "events", len(evts), "stages", fmt.Sprint(stages))

	ctx := context.Background()

	eng := engine.New(engine.Config{
		TopicMatchThreshold: cfg.Engine.TopicMatchThreshold,
		DeadlineFailClosed:  cfg.Engine.DeadlineFailClosed,
		EngagementHigh:      cfg.Engine.EngagementHigh,
		EngagementLow:       cfg.Engine.EngagementLow,
		Zone:                engine.ReferenceZone(cfg.Engine.ReferenceTimezone),
	})
	gen := generator.New(selectBackend(ctx, cfg, *noAI))
	store := storage.New(cfg.Paths.OutputDir)

	orch := batch.New(eng, gen, store, nil)
	stats, outputs, err := orch.Run(ctx, recs, evts, stages)
	if err != nil {
		logger.Error("run failed", "error", err)
		return 1
	}

	if *exportText {
		if err := store.ExportText(outputs, storage.PairNames(recs, evts)); err != nil {
			logger.Error("text export failed", "error", err)
			return 1
		}
	}

	printSummary(stats)
	return 0
}

// selectStages resolves the -stage/-all flags. Default is stage 1, the
// indoctrination email.
func selectStages(stageID string, all bool) ([]string, error) {
	switch {
	case all && stageID != "":
		return nil, fmt.Errorf("-all and -stage are mutually exclusive")
	case all:
		return stage.All(), nil
	case stageID != "":
		if !stage.Known(stageID) {
			logger.Warn("unknown stage, generic template will be used", "stage", stageID)
		}
		return []string{stageID}, nil
	default:
		return []string{"1"}, nil
	}
}

// selectBackend builds the generative backend, or returns nil when
// generation is disabled or unconfigured. A nil backend is not an
// error: the generator degrades to deterministic templates.
func selectBackend(ctx context.Context, cfg *config.Config, noAI bool) generator.Backend {
	if noAI || !cfg.Generation.AIEnabled() {
		logger.Info("generative backend disabled, using deterministic templates")
		return nil
	}

	switch cfg.Generation.Provider {
	case "bedrock":
		backend, err := generator.NewBedrockBackend(ctx, cfg.Bedrock)
		if err != nil {
			logger.Warn("bedrock unavailable, falling back to deterministic templates", "error", err)
			return nil
		}
		return backend
	default:
		if cfg.Groq.APIKey == "" {
			logger.Warn("GROQ_API_KEY not set, falling back to deterministic templates")
			return nil
		}
		return generator.NewGroqBackend(cfg.Groq)
	}
}

func printSummary(stats batch.Stats) {
	fmt.Println("=========================================================")
	fmt.Println(" GENERATION SUMMARY")
	fmt.Println("=========================================================")
	fmt.Printf("  Total pairs: %d\n", stats.Total)
	fmt.Printf("  Generated:   %d\n", stats.Generated)
	fmt.Printf("  Blocked:     %d\n", stats.Blocked)
	if len(stats.ByReason) > 0 {
		fmt.Println("  Block reasons:")
		for reason, n := range stats.ByReason {
			fmt.Printf("    - %s: %d\n", reason, n)
		}
	}
	fmt.Println("=========================================================")
}
