package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"sortery/internal/app"
	"sortery/internal/domain"
)

// Engine is the planning and execution work driven by the TUI.
type Engine struct {
	Plan    func(ctx context.Context, onScan app.ProgressFunc) (domain.SortPlan, error)
	Execute func(ctx context.Context, plan domain.SortPlan, sink app.ProgressSink) (domain.ExecutionReport, error)
}

// ProgressSender forwards executor progress into a running program.
type ProgressSender struct {
	Send func(tea.Msg)
}

func (s ProgressSender) SetProgress(done, total int) {
	s.Send(MoveProgressMsg{Current: done, Total: total})
}

func (s ProgressSender) Complete() {}

// ExecuteCmd runs the plan and reports the outcome as a message.
func ExecuteCmd(ctx context.Context, engine Engine, plan domain.SortPlan, sink app.ProgressSink) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.Execute(ctx, plan, sink)
		if err != nil {
			return ErrorMsg{Err: err, Report: &report}
		}
		return MoveDoneMsg{Report: report}
	}
}

// Run plans in the background while the program shows a spinner, then
// hands the plan to the model. It returns the final model and the error
// that stopped the run, if any.
func Run(ctx context.Context, cfg Config, engine Engine) (Model, error) {
	var program *tea.Program

	cfg.Execute = func(plan domain.SortPlan) tea.Cmd {
		return ExecuteCmd(ctx, engine, plan, ProgressSender{Send: program.Send})
	}
	program = tea.NewProgram(NewModel(cfg), tea.WithContext(ctx))

	go func() {
		plan, err := engine.Plan(ctx, func(scanned int) {
			program.Send(ScanProgressMsg{Scanned: scanned})
		})
		if err != nil {
			program.Send(ErrorMsg{Err: err})
			return
		}
		program.Send(PlanReadyMsg{Plan: plan})
	}()

	final, err := program.Run()
	if err != nil {
		return Model{}, err
	}
	model := final.(Model)
	return model, model.Err
}
