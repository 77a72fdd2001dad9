package presentation

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
)

type Printer struct {
	Writer   io.Writer
	Verbose  bool
	renderer *lipgloss.Renderer
}

// NewPrinter colors output only when writer is a terminal.
func NewPrinter(writer io.Writer, verbose bool) Printer {
	return Printer{
		Writer:   writer,
		Verbose:  verbose,
		renderer: lipgloss.NewRenderer(writer),
	}
}

func (p Printer) style(color lipgloss.Color) lipgloss.Style {
	if p.renderer == nil {
		return lipgloss.NewStyle()
	}
	return p.renderer.NewStyle().Foreground(color)
}

// PrintDryRun lists every planned move without touching the filesystem.
func (p Printer) PrintDryRun(plan domain.SortPlan) {
	for _, item := range plan.Items {
		fmt.Fprintln(p.Writer, p.dryRunLine(item))
	}
	if p.Verbose {
		fmt.Fprintf(p.Writer, "%d items would be moved.\n", plan.Total)
	}
}

func (p Printer) dryRunLine(item domain.MoveItem) string {
	from := p.style(lipgloss.Color("2")).Render(item.Source.String())
	to := p.style(lipgloss.Color("1")).Render(item.Destination.String())
	return fmt.Sprintf("Sorting %s to %s.", from, to)
}

func (p Printer) PrintSortSummary(report domain.ExecutionReport, target domain.FileRef) {
	fmt.Fprintln(p.Writer, SortSummary(report, target))
}

func (p Printer) PrintExtractSummary(report domain.ExecutionReport, target domain.FileRef) {
	fmt.Fprintln(p.Writer, ExtractSummary(report, target))
}

// PrintPartial tells how far a failed run got.
func (p Printer) PrintPartial(report domain.ExecutionReport) {
	fmt.Fprintf(p.Writer, "Moved %d of %d items before the failure.\n", report.Moved, report.Total)
}

func (p Printer) PrintError(err error) {
	label := p.style(lipgloss.Color("1")).Render("Error:")
	fmt.Fprintf(p.Writer, "%s %s\n", label, appErrors.UserMessage(err))
}

func SortSummary(report domain.ExecutionReport, target domain.FileRef) string {
	return fmt.Sprintf("Successfully sorted %d items by date into %s.", report.Moved, target)
}

func ExtractSummary(report domain.ExecutionReport, target domain.FileRef) string {
	return fmt.Sprintf("Successfully moved %d items to %s.", report.Moved, target)
}
