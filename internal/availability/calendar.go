package availability

// Window is the span of days the booking calendar shows
type Window struct {
	Start Day `json:"start"`
	End   Day `json:"end"`
}

// NewWindow covers whole months, from the first of start's month to the end of the month months-1 later
func NewWindow(start Day, months int) Window {
	if months < 1 {
		months = 1
	}
	first := Day{Year: start.Year, Month: start.Month, Day: 1}
	nextMonth := first.Midnight(nil).AddDate(0, months, 0)
	return Window{
		Start: first,
		End:   DayOf(nextMonth, nil).AddDays(-1),
	}
}

func (w Window) Contains(d Day) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Cell is one rendered calendar day
type Cell struct {
	Date   Day    `json:"date"`
	Status Status `json:"status"`
}

// Calendar lists every day of the window in order. Available days are the complement of unavailable.
func (r Result) Calendar(w Window) []Cell {
	var cells []Cell
	for d := w.Start; !d.After(w.End); d = d.AddDays(1) {
		cells = append(cells, Cell{Date: d, Status: r.Status(d)})
	}
	return cells
}
