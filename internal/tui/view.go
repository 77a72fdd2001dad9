package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
	"sortery/internal/presentation"
)

// previewItems is how many planned moves the preview lists.
const previewItems = 6

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	sections := []string{m.header()}

	switch m.Phase {
	case PhaseScanning:
		sections = append(sections, m.scanningView())
	case PhaseConfirm:
		sections = append(sections, m.previewView(), m.confirmView())
	case PhaseExecuting:
		sections = append(sections, m.executingView())
	case PhaseDone:
		sections = append(sections, m.previewView())
		if !m.config.DryRun && m.Plan.Total > 0 {
			sections = append(sections, m.doneView())
		}
	case PhaseError:
		sections = append(sections, m.errorView())
	}

	sections = append(sections, helpStyle.Render(m.helpLine()))
	return strings.Join(sections, "\n\n")
}

func (m Model) mode() string {
	if m.config.Extract {
		return "Extracting"
	}
	return "Sorting"
}

func (m Model) header() string {
	subtitle := "files into YYYY/MM folders"
	if m.config.Extract {
		subtitle = "every entry up into the target"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("sortery")+" "+subtitleStyle.Render(strings.ToLower(m.mode())+" "+subtitle),
		faintStyle.Render("from "+displayPath(m.config.SourceDir)),
		faintStyle.Render("into "+displayPath(m.config.TargetDir)),
	)
}

func (m Model) scanningView() string {
	line := m.spinner.View() + " Scanning files..."
	if m.scanned > 0 {
		line += " " + countStyle.Render(fmt.Sprint(m.scanned))
	}
	return line
}

func (m Model) previewView() string {
	lines := []string{sectionStyle.Render(fmt.Sprintf("Plan: %d items", m.Plan.Total))}
	if m.Plan.Total == 0 {
		lines = append(lines, faintStyle.Render("  nothing to move"))
	}
	for _, line := range previewLines(m.Plan.Items, previewItems) {
		lines = append(lines, "  "+line)
	}
	if m.config.DryRun {
		lines = append(lines, panelStyle.Render("Dry Run: nothing was moved"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) confirmView() string {
	yes, no := buttonStyle, buttonStyle
	if m.confirmSelection {
		yes = yes.BorderForeground(moved).Background(yesColor)
	} else {
		no = no.BorderForeground(failure).Background(noColor)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yes.Render("Yes"), " ", no.Render("No"))
	return lipgloss.JoinVertical(lipgloss.Left,
		promptStyle.Render(fmt.Sprintf("Move %d items?", m.Plan.Total)),
		buttons,
	)
}

func (m Model) executingView() string {
	var fraction float64
	if m.moveTotal > 0 {
		fraction = float64(m.moveCurrent) / float64(m.moveTotal)
	}
	return strings.Join([]string{
		sectionStyle.Render(m.mode()),
		fmt.Sprintf("  %s %s...", m.spinner.View(), m.mode()),
		"  " + m.progress.ViewAs(fraction),
		fmt.Sprintf("  %s %s",
			countStyle.Render(fmt.Sprintf("%d/%d items", m.moveCurrent, m.moveTotal)),
			faintStyle.Render(fmt.Sprintf("(%.0f%%)", fraction*100)),
		),
	}, "\n")
}

func (m Model) doneView() string {
	target := domain.NewFileRef(m.config.TargetDir)
	msg := presentation.SortSummary(m.Report, target)
	if m.config.Extract {
		msg = presentation.ExtractSummary(m.Report, target)
	}
	return successStyle.Render(iconDone + " " + msg)
}

func (m Model) errorView() string {
	body := errorStyle.Render(iconFailed + " Error: " + appErrors.UserMessage(m.Err))
	if m.Report.Total > 0 {
		body += fmt.Sprintf("\n\nMoved %d of %d items before the failure.", m.Report.Moved, m.Report.Total)
	}
	return panelStyle.BorderForeground(failure).Render(body)
}

func (m Model) helpLine() string {
	switch m.Phase {
	case PhaseConfirm:
		return "y/n or ←/→ to choose • enter to confirm • q to quit"
	case PhaseExecuting:
		return "moving files, please wait"
	case PhaseDone, PhaseError:
		return "enter or q to exit"
	default:
		return "q to quit"
	}
}

// previewLines lists up to limit moves, eliding the middle of longer plans.
func previewLines(items []domain.MoveItem, limit int) []string {
	if len(items) <= limit {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, moveLine(item))
		}
		return lines
	}

	head := limit / 2
	tail := limit - head
	lines := make([]string, 0, limit+1)
	for _, item := range items[:head] {
		lines = append(lines, moveLine(item))
	}
	lines = append(lines, faintStyle.Render(fmt.Sprintf("... %d more ...", len(items)-limit)))
	for _, item := range items[len(items)-tail:] {
		lines = append(lines, moveLine(item))
	}
	return lines
}

func moveLine(item domain.MoveItem) string {
	return sourceStyle.Render(item.Source.Name()) + " " + iconMove + " " + destinationStyle.Render(item.Destination.String())
}

func displayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if rest, ok := strings.CutPrefix(path, home); ok {
		return "~" + rest
	}
	return path
}
