package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sortery/internal/domain"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseConfirm
	PhaseExecuting
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	PlanReadyMsg struct {
		Plan domain.SortPlan
	}
	ScanProgressMsg struct {
		Scanned int
	}
	MoveProgressMsg struct {
		Current int
		Total   int
	}
	MoveDoneMsg struct {
		Report domain.ExecutionReport
	}
	ErrorMsg struct {
		Err    error
		Report *domain.ExecutionReport
	}
	ConfirmMsg struct{ Confirmed bool }
	tickMsg    time.Time
)

// ExecuteFunc starts executing the plan. The returned command runs the
// moves and reports back with MoveProgressMsg and MoveDoneMsg or ErrorMsg.
type ExecuteFunc func(plan domain.SortPlan) tea.Cmd

type Config struct {
	SourceDir string
	TargetDir string
	Extract   bool
	DryRun    bool
	Execute   ExecuteFunc
}

type Model struct {
	config           Config
	Phase            Phase
	Plan             domain.SortPlan
	Report           domain.ExecutionReport
	spinner          spinner.Model
	progress         progress.Model
	scanned          int
	moveCurrent      int
	moveTotal        int
	confirmSelection bool // true = yes, false = no
	Err              error
	Quitting         bool
	width            int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ScanProgressMsg:
		m.scanned = msg.Scanned
		return m, nil

	case PlanReadyMsg:
		m.Plan = msg.Plan
		m.moveTotal = msg.Plan.Total
		if m.config.DryRun || msg.Plan.Total == 0 {
			m.Phase = PhaseDone
			return m, nil
		}
		m.Phase = PhaseConfirm
		return m, nil

	case ConfirmMsg:
		if !msg.Confirmed {
			m.Quitting = true
			return m, tea.Quit
		}
		m.Phase = PhaseExecuting
		if m.config.Execute != nil {
			return m, tea.Batch(tickCmd(), m.config.Execute(m.Plan))
		}
		return m, nil

	case MoveProgressMsg:
		m.moveCurrent = msg.Current
		m.moveTotal = msg.Total
		return m, nil

	case MoveDoneMsg:
		m.Phase = PhaseDone
		m.Report = msg.Report
		m.moveCurrent = msg.Report.Moved
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		if msg.Report != nil {
			m.Report = *msg.Report
		}
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExecuting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseExecuting {
			var cmds []tea.Cmd
			if m.moveTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.moveCurrent)/float64(m.moveTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitKey):
		if m.Phase == PhaseExecuting {
			// moves are not interruptible once started
			return m, nil
		}
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, yesKey):
		if m.Phase == PhaseConfirm {
			m.confirmSelection = true
		}
	case key.Matches(msg, noKey):
		if m.Phase == PhaseConfirm {
			m.confirmSelection = false
		}
	case key.Matches(msg, enterKey):
		if m.Phase == PhaseConfirm {
			confirmed := m.confirmSelection
			return m, func() tea.Msg {
				return ConfirmMsg{Confirmed: confirmed}
			}
		}
		if m.Phase == PhaseDone || m.Phase == PhaseError {
			return m, tea.Quit
		}
	}
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

