package model

// Roster is the day by shift grid of assigned employee names. Names in a cell
// are kept in assignment order. A cell never holds more than the capacity the
// roster was created with.
type Roster struct {
	capacity int
	cells    [DaysPerWeek][schedulableShifts][]string
}

const schedulableShifts = int(ShiftEvening - ShiftNone)

// NewRoster returns an empty roster with the given seat capacity per shift.
func NewRoster(capacity int) *Roster {
	return &Roster{capacity: capacity}
}

// Capacity returns the seat capacity per (day, shift) cell.
func (r *Roster) Capacity() int {
	return r.capacity
}

func (r *Roster) cell(day Day, shift Shift) *[]string {
	if !day.Valid() || !shift.Schedulable() {
		return nil
	}
	return &r.cells[day][shift-ShiftMorning]
}

// HasRoom reports whether another employee fits in the cell.
func (r *Roster) HasRoom(day Day, shift Shift) bool {
	c := r.cell(day, shift)
	return c != nil && len(*c) < r.capacity
}

// TryAssign appends name to the cell if it has room.
func (r *Roster) TryAssign(day Day, shift Shift, name string) bool {
	if !r.HasRoom(day, shift) {
		return false
	}
	c := r.cell(day, shift)
	*c = append(*c, name)
	return true
}

// Assigned returns a copy of the names in a cell. Cells that were never
// assigned to are empty.
func (r *Roster) Assigned(day Day, shift Shift) []string {
	c := r.cell(day, shift)
	if c == nil || len(*c) == 0 {
		return nil
	}
	return append([]string(nil), (*c)...)
}

// Count returns the number of names in a cell.
func (r *Roster) Count(day Day, shift Shift) int {
	c := r.cell(day, shift)
	if c == nil {
		return 0
	}
	return len(*c)
}

// Len returns the number of seats taken across the week.
func (r *Roster) Len() int {
	n := 0
	for _, day := range r.cells {
		for _, names := range day {
			n += len(names)
		}
	}
	return n
}
