package main

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"

	"sortery/internal/app"
	"sortery/internal/config"
	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
	"sortery/internal/infra/exif"
	"sortery/internal/infra/fs"
	"sortery/internal/infra/timestamps"
	"sortery/internal/logging"
	"sortery/internal/presentation"
	"sortery/internal/tui"
)

// errReported marks a failure whose message was already written.
var errReported = errors.New("error already reported")

func execute(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	logger := logging.New(stderr, cfg.Verbose)
	filesystem := fs.NewOSFS()
	printer := presentation.NewPrinter(stdout, cfg.Verbose)
	errPrinter := presentation.NewPrinter(stderr, cfg.Verbose)

	source := domain.NewFileRef(cfg.SourceDir)
	target := domain.NewFileRef(cfg.TargetDir)

	if err := checkPaths(filesystem, errPrinter, source, target); err != nil {
		return err
	}

	planner := app.Planner{
		FS:     filesystem,
		Times:  timestamps.Reader{},
		Exif:   exif.Reader{},
		Logger: logger,
	}
	executor := app.Executor{FS: filesystem, Logger: logger}

	buildPlan := func(ctx context.Context, onScan app.ProgressFunc) (domain.SortPlan, error) {
		planner.OnProgress = onScan
		if cfg.Extract {
			return planner.BuildExtractPlan(ctx, source, target)
		}
		return planner.BuildPlan(ctx, source, target, cfg.Sort)
	}

	if cfg.TUI {
		_, err := tui.Run(ctx, tui.Config{
			SourceDir: source.String(),
			TargetDir: target.String(),
			Extract:   cfg.Extract,
			DryRun:    cfg.DryRun,
		}, tui.Engine{Plan: buildPlan, Execute: executor.Execute})
		return err
	}

	plan, err := buildPlan(ctx, nil)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		printer.PrintDryRun(plan)
		return nil
	}

	var bar *presentation.ProgressBar
	if cfg.Extract {
		bar = presentation.ExtractProgress(stdout)
	} else {
		bar = presentation.SortProgress(stdout)
	}

	if cfg.Extract {
		logger.Infof("Extracting %d items from %s into %s", plan.Total, source, target)
	} else {
		logger.Infof("Sorting %d items from %s into %s", plan.Total, source, target)
	}

	report, err := executor.Execute(ctx, plan, bar)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warnf("Interrupted after %d of %d moves", report.Moved, report.Total)
		}
		errPrinter.PrintError(err)
		errPrinter.PrintPartial(report)
		return errReported
	}

	if cfg.Extract {
		printer.PrintExtractSummary(report, target)
	} else {
		printer.PrintSortSummary(report, target)
	}
	return nil
}

// checkPaths reports every missing path before failing.
func checkPaths(filesystem app.FileSystem, printer presentation.Printer, paths ...domain.FileRef) error {
	missing := 0
	for _, path := range paths {
		ok, err := filesystem.Exists(path.String())
		if err == nil && ok {
			continue
		}
		if err == nil {
			err = iofs.ErrNotExist
		}
		printer.PrintError(appErrors.Wrap(appErrors.NotFound, "stat", path.String(), err))
		missing++
	}
	if missing > 0 {
		return errReported
	}
	return nil
}
