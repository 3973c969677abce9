package schedule

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/bryan-cox/shiftplanner/internal/model"
)

// ErrEmptyName is returned when an employee is registered without a name.
var ErrEmptyName = errors.New("employee name must not be empty")

// Team is the ordered list of registered employees. Registration order is the
// scheduling priority order. Names need not be unique.
type Team struct {
	employees []*model.Employee
}

// Add registers an employee with the given preferences and returns it.
func (t *Team) Add(name string, prefs model.PreferenceTable) (*model.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	emp := model.NewEmployee(uuid.NewString(), name)
	for day, pref := range prefs.View() {
		emp.SetPreference(day, pref)
	}
	t.employees = append(t.employees, emp)
	return emp, nil
}

// Employees returns the registered employees in registration order.
func (t *Team) Employees() []*model.Employee {
	return append([]*model.Employee(nil), t.employees...)
}

// Len returns the number of registered employees.
func (t *Team) Len() int {
	return len(t.employees)
}

// Clear removes every registered employee.
func (t *Team) Clear() {
	t.employees = nil
}
