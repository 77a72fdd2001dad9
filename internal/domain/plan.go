package domain

type MoveItem struct {
	Source      FileRef
	Destination FileRef
}

// SortPlan is the ordered hand-off between planning and execution.
// Destinations are pairwise distinct and Total == len(Items).
type SortPlan struct {
	Items []MoveItem
	Total int
}

func (p *SortPlan) Add(item MoveItem) {
	p.Items = append(p.Items, item)
	p.Total++
}

// SortOptions carries the per-run settings of a date sort.
type SortOptions struct {
	Selector     TimestampSelector
	DateFormat   string
	PreserveName bool
	Exclude      ExtensionFilter
	Only         ExtensionFilter
}

// ProgressState holds the counters of one execution.
type ProgressState struct {
	Completed int
	Total     int
}

// ExecutionReport describes how far an execution got. Failed is set when
// the run stopped at that item.
type ExecutionReport struct {
	Moved  int
	Total  int
	Failed *MoveItem
}

func (r ExecutionReport) Complete() bool {
	return r.Failed == nil && r.Moved == r.Total
}
