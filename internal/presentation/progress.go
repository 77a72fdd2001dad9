package presentation

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const barWidth = 20

// ProgressBar renders " label |████----| NN% done/total". Intermediate
// states are redrawn in place and only shown on a terminal; the completion
// line is always written.
type ProgressBar struct {
	Writer         io.Writer
	Label          string
	CompletedLabel string
	Interactive    bool
	total          int
}

func NewProgressBar(writer io.Writer, label, completedLabel string) *ProgressBar {
	return &ProgressBar{
		Writer:         writer,
		Label:          label,
		CompletedLabel: completedLabel,
		Interactive:    isTerminal(writer),
	}
}

func SortProgress(writer io.Writer) *ProgressBar {
	return NewProgressBar(writer, "Sorting...", "Done.")
}

func ExtractProgress(writer io.Writer) *ProgressBar {
	return NewProgressBar(writer, "Extracting...", "Completed.")
}

func (b *ProgressBar) SetProgress(done, total int) {
	b.total = total
	if !b.Interactive {
		return
	}
	fmt.Fprintf(b.Writer, " %s%s\r", FormatBar(b.Label, done, total), strings.Repeat(" ", 15))
}

func (b *ProgressBar) Complete() {
	fmt.Fprintf(b.Writer, "%s\n", FormatBar(b.CompletedLabel, b.total, b.total))
}

// FormatBar renders one state of the bar. A zero total renders as complete.
func FormatBar(label string, done, total int) string {
	filled, percent := barWidth, 100
	if total > 0 {
		filled = barWidth * done / total
		percent = 100 * done / total
	}
	if filled > barWidth {
		filled = barWidth
	}
	return fmt.Sprintf("%s |%s%s| %d%% %d/%d",
		label,
		strings.Repeat("█", filled),
		strings.Repeat("-", barWidth-filled),
		percent,
		done,
		total,
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
