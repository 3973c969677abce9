// Package schedule assigns employees to weekly shifts.
//
// Generation is a single greedy pass: employees are visited in registration
// order and each takes the first of its ranked shifts that still has a free
// seat, day by day from Monday to Sunday. Nothing is reassigned afterwards, so
// earlier employees win contested seats.
package schedule

import (
	"log/slog"

	"github.com/bryan-cox/shiftplanner/internal/model"
)

// Result is the outcome of one scheduling run.
type Result struct {
	Roster *model.Roster
	States []*State // in the order employees were given
	Limits model.Limits
}

// State returns the run state of the employee with the given ID.
func (r *Result) State(id string) (*State, bool) {
	for _, s := range r.States {
		if s.Employee.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Engine generates rosters under fixed limits.
type Engine struct {
	limits model.Limits
	logger *slog.Logger
}

// NewEngine returns an engine. A nil logger uses slog.Default().
func NewEngine(limits model.Limits, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{limits: limits, logger: logger}
}

// Limits returns the limits the engine schedules under.
func (e *Engine) Limits() model.Limits {
	return e.limits
}

// Generate builds a roster from scratch for the given employees.
func Generate(employees []*model.Employee, limits model.Limits) *Result {
	return NewEngine(limits, nil).Generate(employees)
}

// Generate builds a roster from scratch. Employees earlier in the slice get
// first pick of contested seats. It never fails; the roster may be sparse.
func (e *Engine) Generate(employees []*model.Employee) *Result {
	res := &Result{
		Roster: model.NewRoster(e.limits.SeatCapacity),
		States: make([]*State, len(employees)),
		Limits: e.limits,
	}
	// Assignment state starts empty on every run.
	for i, emp := range employees {
		res.States[i] = newState(emp)
	}

	for _, st := range res.States {
		if st.DaysAssigned() >= e.limits.WeeklyDayCap {
			continue
		}
		e.assignEmployee(res.Roster, st)
	}

	e.logger.Debug("roster generated",
		"employees", len(employees),
		"seats_filled", res.Roster.Len(),
		"seat_capacity", e.limits.SeatCapacity,
		"weekly_day_cap", e.limits.WeeklyDayCap)
	return res
}

func (e *Engine) assignEmployee(roster *model.Roster, st *State) {
	emp := st.Employee
	for _, day := range model.Week {
		if st.DaysAssigned() >= e.limits.WeeklyDayCap {
			e.logger.Debug("weekly cap reached", "employee", emp.Name, "day", day.String())
			return
		}
		pref, ok := emp.Preferences.Get(day)
		if !ok || pref.IsEmpty() {
			continue
		}
		if _, taken := st.Shift(day); taken {
			continue
		}

		assigned := false
		for _, shift := range pref.Candidates() {
			if roster.TryAssign(day, shift, emp.Name) {
				st.assign(day, shift)
				assigned = true
				e.logger.Debug("shift assigned", "employee", emp.Name, "day", day.String(), "shift", shift.String())
				break
			}
		}
		if !assigned {
			e.logger.Debug("no seat available", "employee", emp.Name, "day", day.String(), "preference", pref.String())
		}
	}
}
