// Package model defines the core data structures for shiftplanner.
package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shift is a schedulable unit of work on a given day.
type Shift int

// Shift constants. ShiftNone is only meaningful inside a Preference.
const (
	ShiftNone Shift = iota
	ShiftMorning
	ShiftAfternoon
	ShiftEvening
)

// Shifts lists the schedulable shifts in display order.
var Shifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftEvening}

var shiftNames = [...]string{"None", "Morning", "Afternoon", "Evening"}

func (s Shift) String() string {
	if s < ShiftNone || s > ShiftEvening {
		return fmt.Sprintf("Shift(%d)", int(s))
	}
	return shiftNames[s]
}

// Schedulable reports whether s can appear in a roster.
func (s Shift) Schedulable() bool {
	return s >= ShiftMorning && s <= ShiftEvening
}

// ParseShift parses a shift name, ignoring case.
func ParseShift(name string) (Shift, error) {
	for i, n := range shiftNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Shift(i), nil
		}
	}
	return ShiftNone, fmt.Errorf("unknown shift %q", name)
}

// MarshalYAML encodes a shift as its lower-case name.
func (s Shift) MarshalYAML() (interface{}, error) {
	return strings.ToLower(s.String()), nil
}

// UnmarshalYAML decodes a shift from its name.
func (s *Shift) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseShift(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// Day is a calendar weekday. The zero value is Monday.
type Day int

// Day constants in canonical order.
const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of days in Week.
const DaysPerWeek = 7

// Week is the canonical weekday order. Every iteration over days uses it.
var Week = [DaysPerWeek]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Valid reports whether d is one of the seven weekdays.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseDay parses a full or three-letter day name, ignoring case.
func ParseDay(name string) (Day, error) {
	name = strings.TrimSpace(name)
	for i, n := range dayNames {
		if strings.EqualFold(name, n) || strings.EqualFold(name, n[:3]) {
			return Day(i), nil
		}
	}
	return Monday, fmt.Errorf("unknown day %q", name)
}

// MarshalYAML encodes a day as its lower-case name.
func (d Day) MarshalYAML() (interface{}, error) {
	return strings.ToLower(d.String()), nil
}

// UnmarshalYAML decodes a day from its name.
func (d *Day) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDay(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// Preference is an employee's ranked pair of shifts for one day.
type Preference struct {
	First  Shift `yaml:"first"`
	Second Shift `yaml:"second"`
}

// IsEmpty returns true when neither choice names a shift.
func (p Preference) IsEmpty() bool {
	return p.First == ShiftNone && p.Second == ShiftNone
}

// Candidates returns the shifts worth trying, best first. The second choice
// is dropped when it repeats the first.
func (p Preference) Candidates() []Shift {
	var out []Shift
	if p.First != ShiftNone {
		out = append(out, p.First)
	}
	if p.Second != ShiftNone && p.Second != p.First {
		out = append(out, p.Second)
	}
	return out
}

// Allows reports whether s is one of the ranked choices.
func (p Preference) Allows(s Shift) bool {
	return s != ShiftNone && (s == p.First || s == p.Second)
}

func (p Preference) String() string {
	return p.First.String() + "/" + p.Second.String()
}

// PreferenceTable maps days to preferences. The zero value is an empty table.
type PreferenceTable struct {
	entries map[Day]Preference
}

// Set registers the preference for a day, replacing any earlier entry.
func (t *PreferenceTable) Set(day Day, pref Preference) {
	if t.entries == nil {
		t.entries = make(map[Day]Preference, DaysPerWeek)
	}
	t.entries[day] = pref
}

// Get returns the preference for a day and whether one was registered.
func (t PreferenceTable) Get(day Day) (Preference, bool) {
	p, ok := t.entries[day]
	return p, ok
}

// Days returns the days with a registered preference, in Week order.
func (t PreferenceTable) Days() []Day {
	var days []Day
	for _, d := range Week {
		if _, ok := t.entries[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// View returns a copy of the table keyed by day.
func (t PreferenceTable) View() map[Day]Preference {
	view := make(map[Day]Preference, len(t.entries))
	for d, p := range t.entries {
		view[d] = p
	}
	return view
}

// Len returns the number of days with a registered preference.
func (t PreferenceTable) Len() int {
	return len(t.entries)
}

// Employee holds identity and shift preferences. Per-run assignment state is
// kept by the scheduler, not here.
type Employee struct {
	ID          string
	Name        string
	Preferences PreferenceTable
}

// NewEmployee creates an employee with an empty preference table.
func NewEmployee(id, name string) *Employee {
	return &Employee{ID: id, Name: name}
}

// SetPreference registers the preference for a day.
func (e *Employee) SetPreference(day Day, pref Preference) {
	e.Preferences.Set(day, pref)
}

// Limits are the scheduling constraints applied to a run.
type Limits struct {
	SeatCapacity int `yaml:"seat_capacity"` // employees per (day, shift)
	WeeklyDayCap int `yaml:"weekly_day_cap"`
}

// Default limits.
const (
	DefaultSeatCapacity = 2
	DefaultWeeklyDayCap = 5
)

// DefaultLimits returns two seats per shift and five days per employee.
func DefaultLimits() Limits {
	return Limits{SeatCapacity: DefaultSeatCapacity, WeeklyDayCap: DefaultWeeklyDayCap}
}

// Validate returns an error if either limit is not positive.
func (l Limits) Validate() error {
	if l.SeatCapacity <= 0 {
		return fmt.Errorf("seat capacity must be positive, got %d", l.SeatCapacity)
	}
	if l.WeeklyDayCap <= 0 {
		return fmt.Errorf("weekly day cap must be positive, got %d", l.WeeklyDayCap)
	}
	return nil
}
