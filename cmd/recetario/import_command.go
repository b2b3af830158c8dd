package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"recetario/internal/catalog"
	"recetario/internal/importer"
	"recetario/internal/logging"
	"recetario/internal/notifications"
	"recetario/internal/storage"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var limit int

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Match images and import recipes into the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// One import at a time; concurrent runs would race on uploads
			// and upserts keyed by the same titles.
			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "recetario.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire import lock: %w", err)
			}
			if !locked {
				return errors.New("another import is already running")
			}
			defer func() { _ = lock.Unlock() }()

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			inputs, err := loadInputs(cfg)
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(inputs.Records) {
				inputs.Records = inputs.Records[:limit]
			}

			var objects storage.Store
			var records catalog.Store
			if !dryRun {
				if objects, err = buildObjectStore(cfg); err != nil {
					return err
				}
				if records, err = buildCatalogStore(cfg); err != nil {
					return err
				}
				defer func() { _ = records.Close() }()
			}

			runner, err := importer.New(importer.Options{
				Records:        inputs.Records,
				Candidates:     inputs.Candidates,
				Overrides:      inputs.Overrides,
				ImagesDir:      cfg.Paths.ImagesDir,
				MaxWidth:       cfg.Storage.MaxWidth,
				Objects:        objects,
				Catalog:        records,
				Throttle:       time.Duration(cfg.Importer.ThrottleMS) * time.Millisecond,
				RetryAttempts:  cfg.Importer.RetryAttempts,
				RetryBaseDelay: time.Duration(cfg.Importer.RetryBaseMS) * time.Millisecond,
				DryRun:         dryRun,
				Logger:         logger,
				Trace:          cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			notifier := notifications.NewService(cfg)
			if !dryRun {
				_ = notifier.NotifyRunStarted(runCtx, len(inputs.Records))
			}

			report, err := runner.Run(runCtx)
			if err != nil {
				if !dryRun {
					_ = notifier.NotifyRunFailed(cmd.Context(), err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			printReport(out, report, cfg.Paths.OverridesFile)

			if !dryRun {
				_ = notifier.NotifyRunCompleted(runCtx,
					report.Succeeded, report.Failed, len(report.Unresolved), report.Duration)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve matches without uploading or writing records")
	cmd.Flags().IntVar(&limit, "limit", 0, "Import only the first N manifest records")
	return cmd
}
