package app

import (
	"context"
	"errors"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
	"sortery/internal/logging"
)

type Executor struct {
	FS     FileSystem
	Logger logging.Logger
}

// Execute moves every planned item in order, creating destination
// directories as needed. It stops at the first failing item; moves done
// before it stay applied and are counted in the report.
func (e *Executor) Execute(ctx context.Context, plan domain.SortPlan, sink ProgressSink) (domain.ExecutionReport, error) {
	report := domain.ExecutionReport{Total: plan.Total}
	if e.FS == nil {
		return report, errors.New("executor requires FS")
	}

	stop := e.Logger.Measure("Executing plan")
	defer stop()

	state := domain.ProgressState{Total: plan.Total}
	ensured := map[domain.FileRef]bool{}

	for i := range plan.Items {
		item := plan.Items[i]
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		dir := item.Destination.Dir()
		if !ensured[dir] {
			if err := e.FS.MkdirAll(dir.String(), 0o755); err != nil {
				report.Failed = &item
				return report, appErrors.WrapMove(item.Source.String(), item.Destination.String(), err)
			}
			ensured[dir] = true
		}

		if err := e.FS.Rename(item.Source.String(), item.Destination.String()); err != nil {
			report.Failed = &item
			return report, appErrors.WrapMove(item.Source.String(), item.Destination.String(), err)
		}
		e.Logger.Move(item.Source.String(), item.Destination.String())

		report.Moved++
		state.Completed++
		if sink != nil {
			sink.SetProgress(state.Completed, state.Total)
		}
	}

	if sink != nil {
		sink.Complete()
	}
	return report, nil
}
