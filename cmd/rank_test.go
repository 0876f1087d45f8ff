package cmd

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/magnetar/internal/config"
	"github.com/papapumpkin/magnetar/internal/corpus"
	"github.com/papapumpkin/magnetar/internal/report"
	"github.com/papapumpkin/magnetar/internal/ui"
)

// writeCorpus lays down a small three-page corpus and returns its directory.
func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"a.html": `<a href="b.html">B</a><a href="c.html">C</a>`,
		"b.html": `<a href="a.html">A</a>`,
		"c.html": ``,
	}
	for name, body := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func testConfig() config.Config {
	return config.Config{
		Damping:       0.85,
		Samples:       500,
		Tolerance:     0.001,
		MaxIterations: 100,
		Seed:          11,
		Format:        "text",
	}
}

func TestRankCmdArity(t *testing.T) {
	t.Parallel()
	if err := rankCmd.Args(rankCmd, nil); err == nil {
		t.Error("no arguments accepted, want usage error")
	}
	if err := rankCmd.Args(rankCmd, []string{"a", "b"}); err == nil {
		t.Error("two arguments accepted, want usage error")
	}
	if err := rankCmd.Args(rankCmd, []string{"corpus"}); err != nil {
		t.Errorf("one argument rejected: %v", err)
	}
}

func TestExecuteRun(t *testing.T) {
	t.Parallel()
	dir := writeCorpus(t)

	run, err := executeRun(dir, testConfig(), ui.New(false))
	if err != nil {
		t.Fatalf("executeRun: %v", err)
	}
	if run.Corpus != dir || run.Samples != 500 {
		t.Errorf("run metadata = %+v, want corpus dir and sample count", run)
	}
	for name, table := range map[string]map[string]float64{"sampled": run.Sampled, "iterated": run.Iterated} {
		var sum float64
		for _, r := range table {
			sum += r
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s ranks sum to %v, want 1.0", name, sum)
		}
		if len(table) != 3 {
			t.Errorf("%s table covers %d pages, want 3", name, len(table))
		}
	}
}

func TestExecuteRunEmptyCorpus(t *testing.T) {
	t.Parallel()
	_, err := executeRun(t.TempDir(), testConfig(), ui.New(false))
	if !errors.Is(err, corpus.ErrEmptyCorpus) {
		t.Errorf("got %v, want ErrEmptyCorpus", err)
	}
}

func TestExecuteRunReportText(t *testing.T) {
	t.Parallel()
	dir := writeCorpus(t)

	run, err := executeRun(dir, testConfig(), ui.New(false))
	if err != nil {
		t.Fatalf("executeRun: %v", err)
	}
	var b strings.Builder
	if err := report.WriteText(&b, run); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "PageRank Results from Sampling (n = 500)") {
		t.Errorf("sampling header missing from report:\n%s", out)
	}
	if !strings.Contains(out, "PageRank Results from Iteration") {
		t.Errorf("iteration header missing from report:\n%s", out)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	t.Parallel()
	cmd := &cobra.Command{}
	addRankFlags(cmd)
	cmd.Flags().String("format", "", "")

	for flag, value := range map[string]string{
		"damping":        "0.5",
		"samples":        "1234",
		"max-iterations": "7",
		"seed":           "99",
		"format":         "toml",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("setting --%s: %v", flag, err)
		}
	}

	cfg := testConfig()
	applyFlagOverrides(cmd, &cfg)

	if cfg.Damping != 0.5 {
		t.Errorf("Damping = %v, want 0.5", cfg.Damping)
	}
	if cfg.Samples != 1234 {
		t.Errorf("Samples = %d, want 1234", cfg.Samples)
	}
	if cfg.MaxIterations != 7 {
		t.Errorf("MaxIterations = %d, want 7", cfg.MaxIterations)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if cfg.Format != "toml" {
		t.Errorf("Format = %q, want toml", cfg.Format)
	}
	// Tolerance flag untouched keeps the config value.
	if cfg.Tolerance != 0.001 {
		t.Errorf("Tolerance = %v, want 0.001", cfg.Tolerance)
	}
}
