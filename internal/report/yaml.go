package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bryan-cox/shiftplanner/internal/model"
)

// RosterDocument is the YAML form of a roster. Every cell is present.
type RosterDocument struct {
	Days []DayDocument `yaml:"days"`
}

// DayDocument lists the names assigned to each shift of one day.
type DayDocument struct {
	Day       model.Day `yaml:"day"`
	Morning   []string  `yaml:"morning"`
	Afternoon []string  `yaml:"afternoon"`
	Evening   []string  `yaml:"evening"`
}

// NewRosterDocument converts a roster into its YAML form.
func NewRosterDocument(roster *model.Roster) RosterDocument {
	doc := RosterDocument{Days: make([]DayDocument, 0, model.DaysPerWeek)}
	for _, day := range model.Week {
		doc.Days = append(doc.Days, DayDocument{
			Day:       day,
			Morning:   cell(roster, day, model.ShiftMorning),
			Afternoon: cell(roster, day, model.ShiftAfternoon),
			Evening:   cell(roster, day, model.ShiftEvening),
		})
	}
	return doc
}

func cell(roster *model.Roster, day model.Day, shift model.Shift) []string {
	names := roster.Assigned(day, shift)
	if names == nil {
		return []string{}
	}
	return names
}

// WriteYAML writes the roster as a YAML document.
func WriteYAML(out io.Writer, roster *model.Roster) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(NewRosterDocument(roster)); err != nil {
		return fmt.Errorf("could not encode roster: %w", err)
	}
	return enc.Close()
}
