package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
	"sortery/internal/logging"
)

// ProgressFunc is called during scanning with the number of files visited.
type ProgressFunc func(scanned int)

type Planner struct {
	FS         FileSystem
	Times      TimeReader
	Exif       ExifReader
	Logger     logging.Logger
	OnProgress ProgressFunc
}

// Timestamp returns the selected timestamp of file, truncated to whole
// seconds in the local time zone.
func (p *Planner) Timestamp(ctx context.Context, file domain.FileRef, info fs.FileInfo, selector domain.TimestampSelector) (time.Time, error) {
	var (
		t   time.Time
		err error
	)
	if selector == domain.Taken {
		if p.Exif == nil {
			return time.Time{}, errors.New("planner requires Exif for the exif date type")
		}
		t, err = p.Exif.DateTimeOriginal(ctx, file.String())
	} else {
		t, err = p.Times.Timestamp(file.String(), info, selector)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return time.Time{}, err
		}
		return time.Time{}, appErrors.Wrap(appErrors.MetadataUnavailable, selector.String(), file.String(), err)
	}
	return time.Unix(t.Unix(), 0).In(time.Local), nil
}

// PlanDestination computes file's destination before collision resolution.
func (p *Planner) PlanDestination(ctx context.Context, targetRoot, file domain.FileRef, info fs.FileInfo, opts domain.SortOptions) (domain.FileRef, error) {
	t, err := p.Timestamp(ctx, file, info, opts.Selector)
	if err != nil {
		return domain.FileRef{}, err
	}
	return domain.Destination(targetRoot, file, t, opts.DateFormat, opts.PreserveName), nil
}

// BuildPlan walks sourceRoot once in lexical depth-first order and plans a
// move for every eligible file. Collision suffixes follow walk order.
func (p *Planner) BuildPlan(ctx context.Context, sourceRoot, targetRoot domain.FileRef, opts domain.SortOptions) (domain.SortPlan, error) {
	if p.FS == nil || p.Times == nil {
		return domain.SortPlan{}, errors.New("planner requires FS and Times")
	}
	if opts.DateFormat == "" {
		opts.DateFormat = domain.DefaultDateFormat
	}

	stop := p.Logger.Measure("Planning sort")
	defer stop()

	var plan domain.SortPlan
	assigned := make(map[domain.FileRef]struct{})
	scanned := 0
	skipped := 0

	err := p.FS.Walk(sourceRoot.String(), func(path string, info fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			return appErrors.Wrap(appErrors.IOFailure, "walk", path, walkErr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if info.IsDir() {
			return nil
		}

		scanned++
		if p.OnProgress != nil {
			p.OnProgress(scanned)
		}

		file := domain.NewFileRef(path)
		if !domain.IsSortable(file, opts.Exclude, opts.Only) {
			skipped++
			return nil
		}

		candidate, err := p.PlanDestination(ctx, targetRoot, file, info, opts)
		if err != nil {
			return err
		}
		destination := domain.ResolveCollision(candidate, assigned)
		if destination != candidate {
			p.Logger.Verbosef("Destination %s already planned, using %s", candidate, destination.Name())
		}
		assigned[destination] = struct{}{}
		plan.Add(domain.MoveItem{Source: file, Destination: destination})
		p.Logger.Move(file.String(), destination.String())
		return nil
	})
	if err != nil {
		return domain.SortPlan{}, err
	}

	p.Logger.Verbosef("Planned %d of %d files in %s (%d filtered out)", plan.Total, scanned, sourceRoot, skipped)
	return plan, nil
}

// BuildExtractPlan plans moving every immediate entry of sourceRoot into
// targetRoot, keeping names. Entries that are sourceRoot or targetRoot
// themselves are skipped.
func (p *Planner) BuildExtractPlan(ctx context.Context, sourceRoot, targetRoot domain.FileRef) (domain.SortPlan, error) {
	if p.FS == nil {
		return domain.SortPlan{}, errors.New("planner requires FS")
	}

	entries, err := p.FS.ReadDir(sourceRoot.String())
	if err != nil {
		return domain.SortPlan{}, appErrors.Wrap(appErrors.IOFailure, "read dir", sourceRoot.String(), err)
	}

	sourceAbs := absRef(sourceRoot)
	targetAbs := absRef(targetRoot)

	var plan domain.SortPlan
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return domain.SortPlan{}, err
		}
		entryRef := sourceRoot.Join(entry.Name())
		if abs := absRef(entryRef); abs == sourceAbs || abs == targetAbs {
			p.Logger.Verbosef("Skipping %s", entryRef)
			continue
		}
		plan.Add(domain.MoveItem{Source: entryRef, Destination: targetRoot.Join(entry.Name())})
	}

	p.Logger.Verbosef("Planned %d entries to extract from %s", plan.Total, sourceRoot)
	return plan, nil
}

func absRef(ref domain.FileRef) domain.FileRef {
	abs, err := filepath.Abs(ref.String())
	if err != nil {
		return ref
	}
	return domain.NewFileRef(abs)
}
