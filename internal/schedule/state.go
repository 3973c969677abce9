package schedule

import "github.com/bryan-cox/shiftplanner/internal/model"

// State is the assignment state of one employee for one run.
type State struct {
	Employee *model.Employee
	shifts   map[model.Day]model.Shift
	days     int
}

func newState(emp *model.Employee) *State {
	s := &State{Employee: emp}
	s.Reset()
	return s
}

// Reset clears every assignment and zeroes the day count.
func (s *State) Reset() {
	s.shifts = make(map[model.Day]model.Shift, model.DaysPerWeek)
	s.days = 0
}

// Shift returns the shift assigned on a day, if any.
func (s *State) Shift(day model.Day) (model.Shift, bool) {
	shift, ok := s.shifts[day]
	return shift, ok
}

// DaysAssigned returns the number of days with an assignment.
func (s *State) DaysAssigned() int {
	return s.days
}

// Assignments returns a copy of the day to shift assignments.
func (s *State) Assignments() map[model.Day]model.Shift {
	out := make(map[model.Day]model.Shift, len(s.shifts))
	for d, sh := range s.shifts {
		out[d] = sh
	}
	return out
}

// Unmet returns the days, in Week order, where the employee asked for a shift
// but got none.
func (s *State) Unmet() []model.Day {
	var days []model.Day
	for _, d := range s.Employee.Preferences.Days() {
		pref, _ := s.Employee.Preferences.Get(d)
		if pref.IsEmpty() {
			continue
		}
		if _, ok := s.shifts[d]; !ok {
			days = append(days, d)
		}
	}
	return days
}

func (s *State) assign(day model.Day, shift model.Shift) {
	s.shifts[day] = shift
	s.days++
}
