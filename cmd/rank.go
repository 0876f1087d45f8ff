package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/magnetar/internal/config"
	"github.com/papapumpkin/magnetar/internal/corpus"
	"github.com/papapumpkin/magnetar/internal/rank"
	"github.com/papapumpkin/magnetar/internal/report"
	"github.com/papapumpkin/magnetar/internal/ui"
)

var rankCmd = &cobra.Command{
	Use:   "rank <corpus-dir>",
	Short: "Rank the pages of a corpus directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func init() {
	addRankFlags(rankCmd)
	rankCmd.Flags().String("format", "", "report format: text, json, or toml")
	rankCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(rankCmd)
}

// addRankFlags registers the estimator-tuning flags shared by the rank and
// watch commands.
func addRankFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("damping", 0, "override damping factor")
	cmd.Flags().Int("samples", 0, "override sample count")
	cmd.Flags().Float64("tolerance", 0, "override convergence tolerance")
	cmd.Flags().Int("max-iterations", 0, "override iteration ceiling")
	cmd.Flags().Uint64("seed", 0, "seed the sampler for reproducible runs")
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New(cfg.Verbose)

	run, err := executeRun(args[0], cfg, printer)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return report.Write(out, run, cfg.Format)
}

// applyFlagOverrides applies CLI flag values to the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetFloat64("damping"); v > 0 {
		cfg.Damping = v
	}
	if v, _ := cmd.Flags().GetInt("samples"); v > 0 {
		cfg.Samples = v
	}
	if v, _ := cmd.Flags().GetFloat64("tolerance"); v > 0 {
		cfg.Tolerance = v
	}
	if v, _ := cmd.Flags().GetInt("max-iterations"); v > 0 {
		cfg.MaxIterations = v
	}
	if v, _ := cmd.Flags().GetUint64("seed"); v > 0 {
		cfg.Seed = v
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

// executeRun loads the corpus and runs both estimators over it.
func executeRun(dir string, cfg config.Config, printer *ui.Printer) (report.Run, error) {
	g, err := corpus.Load(dir)
	if err != nil {
		return report.Run{}, err
	}
	printer.CorpusLoaded(dir, g.Len(), g.LinkCount())

	sopts := rank.SamplerOptions{Damping: cfg.Damping, Samples: cfg.Samples}
	if cfg.Seed != 0 {
		sopts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	start := time.Now()
	sampled, err := rank.Sample(g, sopts)
	if err != nil {
		return report.Run{}, fmt.Errorf("sampling: %w", err)
	}
	printer.SamplingDone(cfg.Samples, time.Since(start))

	start = time.Now()
	iterated, err := rank.Iterate(g, rank.IteratorOptions{
		Damping:       cfg.Damping,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return report.Run{}, fmt.Errorf("iterating: %w", err)
	}
	printer.IterationDone(time.Since(start))

	return report.Run{
		Corpus:    dir,
		Damping:   cfg.Damping,
		Samples:   cfg.Samples,
		Tolerance: cfg.Tolerance,
		Sampled:   sampled,
		Iterated:  iterated,
	}, nil
}
