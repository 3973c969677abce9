// Package report renders generated rosters for display.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bryan-cox/shiftplanner/internal/model"
)

// Text output constants.
const (
	TextHeaderRoster = "Final Schedule:"
	TextEmptyCell    = "No employees assigned"
)

// PrintRoster prints every day in week order and every shift under it. Empty
// cells are printed with TextEmptyCell.
func PrintRoster(out io.Writer, roster *model.Roster) {
	fmt.Fprintln(out, TextHeaderRoster)
	for _, day := range model.Week {
		fmt.Fprintln(out, day)
		for _, shift := range model.Shifts {
			fmt.Fprintf(out, "  %s: %s\n", shift, cellText(roster.Assigned(day, shift)))
		}
		fmt.Fprintln(out)
	}
}

// RosterText returns the output of PrintRoster as a string.
func RosterText(roster *model.Roster) string {
	var b strings.Builder
	PrintRoster(&b, roster)
	return b.String()
}

func cellText(names []string) string {
	if len(names) == 0 {
		return TextEmptyCell
	}
	return strings.Join(names, ", ")
}
