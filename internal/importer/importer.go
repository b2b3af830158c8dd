package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"recetario/internal/assets"
	"recetario/internal/catalog"
	"recetario/internal/logging"
	"recetario/internal/manifest"
	"recetario/internal/match"
	"recetario/internal/normalize"
	"recetario/internal/storage"
)

// Options configures a single import run. Records, Candidates, and
// Overrides are the already-loaded inputs; loading and precondition checks
// (missing manifest, missing image directory) happen before a Runner is
// built so a run never starts on broken inputs.
type Options struct {
	Records    []manifest.Record
	Candidates []string
	Overrides  map[string]string
	ImagesDir  string
	// MaxWidth is passed through to asset preparation; 0 uploads originals.
	MaxWidth int

	Objects storage.Store
	Catalog catalog.Store

	// Throttle is the fixed pause between records.
	Throttle       time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration

	// DryRun resolves matches without uploading or upserting.
	DryRun bool

	Logger *slog.Logger
	// Trace receives the per-record operator lines; nil discards them.
	Trace io.Writer
}

// Runner owns the mutable state of one run: the upload cache and the
// accumulating report. It is created at run start and discarded at run end;
// nothing is shared across runs except the external override table.
type Runner struct {
	opts        Options
	log         *slog.Logger
	trace       io.Writer
	uploadCache map[string]string
	report      *Report
}

// New validates options and builds a Runner.
func New(opts Options) (*Runner, error) {
	if !opts.DryRun {
		if opts.Objects == nil {
			return nil, errors.New("importer: object store is required")
		}
		if opts.Catalog == nil {
			return nil, errors.New("importer: catalog store is required")
		}
	}
	trace := opts.Trace
	if trace == nil {
		trace = io.Discard
	}
	return &Runner{
		opts:        opts,
		log:         logging.WithComponent(opts.Logger, "importer"),
		trace:       trace,
		uploadCache: make(map[string]string),
	}, nil
}

// Run executes the import pass and returns the consolidated report. The
// returned error is non-nil only for context cancellation; per-record
// failures are captured in the report instead.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	r.report = &Report{
		RunID:  uuid.NewString(),
		Total:  len(r.opts.Records),
		DryRun: r.opts.DryRun,
	}
	start := time.Now()

	r.log.Info("run started",
		"run_id", r.report.RunID,
		"records", len(r.opts.Records),
		"candidates", len(r.opts.Candidates),
		"overrides", len(r.opts.Overrides),
		"dry_run", r.opts.DryRun,
	)

	for i, rec := range r.opts.Records {
		if err := ctx.Err(); err != nil {
			r.report.Duration = time.Since(start)
			return r.report, err
		}
		r.processRecord(ctx, i, rec)

		if r.opts.Throttle > 0 && i < len(r.opts.Records)-1 {
			if err := sleepContext(ctx, r.opts.Throttle); err != nil {
				r.report.Duration = time.Since(start)
				return r.report, err
			}
		}
	}

	r.report.Duration = time.Since(start)
	r.log.Info("run finished",
		"run_id", r.report.RunID,
		"succeeded", r.report.Succeeded,
		"failed", r.report.Failed,
		"uploaded", r.report.Uploaded,
		"unresolved", len(r.report.Unresolved),
		"duration", r.report.Duration,
	)
	return r.report, nil
}

func (r *Runner) processRecord(ctx context.Context, index int, rec manifest.Record) {
	title := rec.Title()
	fmt.Fprintf(r.trace, "[%d/%d] %s\n", index+1, r.report.Total, title)

	result := match.Find(title, r.opts.Candidates, r.opts.Overrides)
	r.report.CountTier(result.Tier)

	var imageURL string
	if result.Matched() {
		fmt.Fprintf(r.trace, "    image %s (%s)\n", result.Asset, result.Tier)
		if !r.opts.DryRun {
			url, err := r.resolveAsset(ctx, result.Asset)
			if err != nil {
				r.report.UploadFailures++
				r.log.Error("asset upload failed", "title", title, "asset", result.Asset, "error", err)
				fmt.Fprintf(r.trace, "    upload failed: %v\n", err)
			} else {
				imageURL = url
			}
		}
	} else {
		fmt.Fprintf(r.trace, "    no image found (token %q)\n", normalize.Token(title))
		r.report.Unresolved = append(r.report.Unresolved, title)
		r.log.Warn("no image matched", "title", title)
	}

	if r.opts.DryRun {
		return
	}

	if err := r.opts.Catalog.Upsert(ctx, rec, imageURL); err != nil {
		r.report.Failed++
		r.log.Error("upsert failed", "title", title, "error", err)
		fmt.Fprintf(r.trace, "    upsert failed: %v\n", err)
		return
	}
	r.report.Succeeded++
}

// resolveAsset returns the public reference for filename, transferring the
// file at most once per run.
func (r *Runner) resolveAsset(ctx context.Context, filename string) (string, error) {
	if url, ok := r.uploadCache[filename]; ok {
		return url, nil
	}

	data, err := assets.Prepare(filepath.Join(r.opts.ImagesDir, filename), r.opts.MaxWidth)
	if err != nil {
		return "", err
	}

	var publicURL string
	err = withRetry(ctx, r.opts.RetryAttempts, r.opts.RetryBaseDelay, func(ctx context.Context) error {
		url, uploadErr := r.opts.Objects.Upload(ctx, filename, bytes.NewReader(data), assets.ContentType(filename))
		if uploadErr != nil {
			return uploadErr
		}
		publicURL = url
		return nil
	})
	if err != nil {
		return "", err
	}

	r.uploadCache[filename] = publicURL
	r.report.Uploaded++
	r.log.Debug("asset uploaded", "asset", filename, "ref", publicURL)
	return publicURL, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
