package presentation

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
)

func TestPrintDryRunLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	var plan domain.SortPlan
	plan.Add(domain.MoveItem{
		Source:      domain.NewFileRef("/src/test.jpg"),
		Destination: domain.NewFileRef("/dst/2021/02/2021.jpg"),
	})
	plan.Add(domain.MoveItem{
		Source:      domain.NewFileRef("/src/test"),
		Destination: domain.NewFileRef("/dst/2021/02/2021 test."),
	})

	printer.PrintDryRun(plan)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "Sorting /src/test.jpg to /dst/2021/02/2021.jpg." {
		t.Fatalf("unexpected line %q", lines[0])
	}
	if lines[1] != "Sorting /src/test to /dst/2021/02/2021 test.." {
		t.Fatalf("unexpected line %q", lines[1])
	}
}

func TestSummaries(t *testing.T) {
	report := domain.ExecutionReport{Moved: 4, Total: 4}
	target := domain.NewFileRef("/dst")
	if got := SortSummary(report, target); got != "Successfully sorted 4 items by date into /dst." {
		t.Fatalf("unexpected sort summary %q", got)
	}
	if got := ExtractSummary(domain.ExecutionReport{Moved: 2, Total: 2}, target); got != "Successfully moved 2 items to /dst." {
		t.Fatalf("unexpected extract summary %q", got)
	}
}

func TestPrintErrorAndPartial(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)
	printer.PrintError(appErrors.WrapMove("/a", "/b", errors.New("cross-device link")))
	printer.PrintPartial(domain.ExecutionReport{Moved: 3, Total: 5})

	out := buf.String()
	if !strings.Contains(out, "Error: failed to move /a to /b.") {
		t.Fatalf("unexpected error output %q", out)
	}
	if !strings.Contains(out, "Moved 3 of 5 items before the failure.") {
		t.Fatalf("unexpected partial output %q", out)
	}
}

func TestFormatBar(t *testing.T) {
	tests := []struct {
		done, total int
		want        string
	}{
		{0, 4, "Sorting... |--------------------| 0% 0/4"},
		{1, 4, "Sorting... |█████---------------| 25% 1/4"},
		{4, 4, "Sorting... |████████████████████| 100% 4/4"},
		{0, 0, "Sorting... |████████████████████| 100% 0/0"},
	}
	for _, tt := range tests {
		if got := FormatBar("Sorting...", tt.done, tt.total); got != tt.want {
			t.Errorf("FormatBar(%d, %d) = %q, want %q", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBarNonInteractiveOnlyCompletes(t *testing.T) {
	var buf bytes.Buffer
	bar := SortProgress(&buf)
	bar.SetProgress(1, 2)
	bar.SetProgress(2, 2)
	bar.Complete()

	if got := buf.String(); got != "Done. |████████████████████| 100% 2/2\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestProgressBarInteractiveRedraws(t *testing.T) {
	var buf bytes.Buffer
	bar := ExtractProgress(&buf)
	bar.Interactive = true
	bar.SetProgress(1, 2)
	bar.Complete()

	out := buf.String()
	if !strings.Contains(out, " Extracting... |██████████----------| 50% 1/2") || !strings.Contains(out, "\r") {
		t.Fatalf("missing redraw: %q", out)
	}
	if !strings.HasSuffix(out, "Completed. |████████████████████| 100% 2/2\n") {
		t.Fatalf("missing completion: %q", out)
	}
}
