package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/magnetar/internal/config"
	"github.com/papapumpkin/magnetar/internal/corpus"
	"github.com/papapumpkin/magnetar/internal/report"
	"github.com/papapumpkin/magnetar/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <corpus-dir>",
	Short: "Re-rank a corpus whenever its pages change",
	Long: `Runs both estimators once, then watches the corpus directory and
re-runs them on every page change until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addRankFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New(cfg.Verbose)
	dir := args[0]

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rankOnce(cmd, dir, cfg, printer); err != nil {
		printer.Error(err.Error())
		return err
	}

	w, err := corpus.NewWatcher(dir)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	printer.WatchStart(dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-w.Changes:
			printer.Rescan(change.Page)
			if err := rankOnce(cmd, dir, cfg, printer); err != nil {
				// A transiently empty or half-written corpus is expected
				// mid-edit; report it and keep watching.
				if errors.Is(err, corpus.ErrEmptyCorpus) {
					printer.Error(err.Error())
					continue
				}
				printer.Error(err.Error())
				return err
			}
		}
	}
}

func rankOnce(cmd *cobra.Command, dir string, cfg config.Config, printer *ui.Printer) error {
	run, err := executeRun(dir, cfg, printer)
	if err != nil {
		return err
	}
	return report.WriteText(cmd.OutOrStdout(), run)
}
