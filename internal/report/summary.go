package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bryan-cox/shiftplanner/internal/model"
	"github.com/bryan-cox/shiftplanner/internal/schedule"
)

// TextHeaderSummary heads the per-employee summary.
const TextHeaderSummary = "\nEmployee Summary"

// EmployeeSummary is how one employee fared in a run.
type EmployeeSummary struct {
	Name         string
	DaysAssigned int
	WeeklyDayCap int
	Unmet        []model.Day // preferred days left without a shift
}

// AtCap reports whether the employee reached the weekly day cap.
func (s EmployeeSummary) AtCap() bool {
	return s.DaysAssigned >= s.WeeklyDayCap
}

// Summarize returns one summary per employee, in scheduling order.
func Summarize(res *schedule.Result) []EmployeeSummary {
	summaries := make([]EmployeeSummary, 0, len(res.States))
	for _, st := range res.States {
		summaries = append(summaries, EmployeeSummary{
			Name:         st.Employee.Name,
			DaysAssigned: st.DaysAssigned(),
			WeeklyDayCap: res.Limits.WeeklyDayCap,
			Unmet:        st.Unmet(),
		})
	}
	return summaries
}

// PrintSummary prints the summaries to the writer.
func PrintSummary(out io.Writer, summaries []EmployeeSummary) {
	if len(summaries) == 0 {
		return
	}
	fmt.Fprintln(out, TextHeaderSummary)
	for _, s := range summaries {
		capNote := ""
		if s.AtCap() {
			capNote = " (weekly cap reached)"
		}
		fmt.Fprintf(out, "    • %s: %d/%d days%s\n", s.Name, s.DaysAssigned, s.WeeklyDayCap, capNote)
		if len(s.Unmet) == 0 {
			continue
		}
		days := make([]string, len(s.Unmet))
		for i, d := range s.Unmet {
			days[i] = d.String()
		}
		fmt.Fprintf(out, "        ◦ Unassigned: %s\n", strings.Join(days, ", "))
	}
}
