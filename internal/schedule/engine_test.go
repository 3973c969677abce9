package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryan-cox/shiftplanner/internal/model"
	"github.com/bryan-cox/shiftplanner/internal/schedule"
)

// =============================================================================
// HELPERS
// =============================================================================

func pref(first, second model.Shift) model.Preference {
	return model.Preference{First: first, Second: second}
}

func employee(name string, prefs map[model.Day]model.Preference) *model.Employee {
	emp := model.NewEmployee(name, name)
	for d, p := range prefs {
		emp.SetPreference(d, p)
	}
	return emp
}

func everyDay(p model.Preference) map[model.Day]model.Preference {
	out := make(map[model.Day]model.Preference, model.DaysPerWeek)
	for _, d := range model.Week {
		out[d] = p
	}
	return out
}

func randomTeam(rng *rand.Rand, n int) []*model.Employee {
	shifts := []model.Shift{model.ShiftNone, model.ShiftMorning, model.ShiftAfternoon, model.ShiftEvening}
	employees := make([]*model.Employee, n)
	for i := range employees {
		prefs := make(map[model.Day]model.Preference)
		for _, d := range model.Week {
			if rng.Intn(5) == 0 {
				continue
			}
			prefs[d] = pref(shifts[rng.Intn(len(shifts))], shifts[rng.Intn(len(shifts))])
		}
		employees[i] = employee(string(rune('A'+i%26))+string(rune('a'+i/26)), prefs)
	}
	return employees
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestGenerate_TwoSeatsPerShift(t *testing.T) {
	// GIVEN: A, B and C all want Monday Morning with no second choice
	mondayMorning := map[model.Day]model.Preference{model.Monday: pref(model.ShiftMorning, model.ShiftNone)}
	employees := []*model.Employee{
		employee("A", mondayMorning),
		employee("B", mondayMorning),
		employee("C", mondayMorning),
	}

	res := schedule.Generate(employees, model.DefaultLimits())

	// THEN: A and B take both seats, C gets nothing on Monday
	assert.Equal(t, []string{"A", "B"}, res.Roster.Assigned(model.Monday, model.ShiftMorning))
	c, ok := res.State("C")
	require.True(t, ok)
	_, assigned := c.Shift(model.Monday)
	assert.False(t, assigned)
	assert.Equal(t, 0, c.DaysAssigned())
	assert.Equal(t, []model.Day{model.Monday}, c.Unmet())
}

func TestGenerate_FallsBackToSecondChoice(t *testing.T) {
	// GIVEN: Morning on Monday is filled by two earlier employees
	employees := []*model.Employee{
		employee("X", map[model.Day]model.Preference{model.Monday: pref(model.ShiftMorning, model.ShiftNone)}),
		employee("Y", map[model.Day]model.Preference{model.Monday: pref(model.ShiftMorning, model.ShiftNone)}),
		employee("Z", map[model.Day]model.Preference{model.Monday: pref(model.ShiftMorning, model.ShiftAfternoon)}),
	}

	res := schedule.Generate(employees, model.DefaultLimits())

	// THEN: Z lands on its second choice
	assert.Equal(t, []string{"Z"}, res.Roster.Assigned(model.Monday, model.ShiftAfternoon))
	z, _ := res.State("Z")
	shift, ok := z.Shift(model.Monday)
	require.True(t, ok)
	assert.Equal(t, model.ShiftAfternoon, shift)
}

func TestGenerate_NoPreferenceDayIsSkipped(t *testing.T) {
	employees := []*model.Employee{
		employee("A", map[model.Day]model.Preference{
			model.Monday:  pref(model.ShiftNone, model.ShiftNone),
			model.Tuesday: pref(model.ShiftNone, model.ShiftEvening),
		}),
	}

	res := schedule.Generate(employees, model.DefaultLimits())

	a, _ := res.State("A")
	_, ok := a.Shift(model.Monday)
	assert.False(t, ok)
	shift, ok := a.Shift(model.Tuesday)
	require.True(t, ok, "a lone second choice is still a choice")
	assert.Equal(t, model.ShiftEvening, shift)
	assert.Empty(t, a.Unmet())
	assert.Equal(t, 1, res.Roster.Len())
}

func TestGenerate_WeeklyCapStopsRemainingDays(t *testing.T) {
	// GIVEN: One employee who wants every day
	employees := []*model.Employee{employee("A", everyDay(pref(model.ShiftEvening, model.ShiftNone)))}

	res := schedule.Generate(employees, model.DefaultLimits())

	// THEN: Monday through Friday are assigned, the weekend is not
	a, _ := res.State("A")
	assert.Equal(t, 5, a.DaysAssigned())
	for _, d := range model.Week[:5] {
		assert.Equal(t, []string{"A"}, res.Roster.Assigned(d, model.ShiftEvening), d.String())
	}
	for _, d := range []model.Day{model.Saturday, model.Sunday} {
		assert.Empty(t, res.Roster.Assigned(d, model.ShiftEvening), d.String())
	}
	assert.Equal(t, []model.Day{model.Saturday, model.Sunday}, a.Unmet())
}

func TestGenerate_CapCountsOnlyAssignedDays(t *testing.T) {
	// GIVEN: Monday Morning is full, so the employee misses Monday
	blockers := map[model.Day]model.Preference{model.Monday: pref(model.ShiftMorning, model.ShiftNone)}
	employees := []*model.Employee{
		employee("X", blockers),
		employee("Y", blockers),
		employee("A", everyDay(pref(model.ShiftMorning, model.ShiftNone))),
	}

	res := schedule.Generate(employees, model.DefaultLimits())

	// THEN: A works Tuesday through Saturday and misses Monday and Sunday
	a, _ := res.State("A")
	assert.Equal(t, 5, a.DaysAssigned())
	assert.Equal(t, []model.Day{model.Monday, model.Sunday}, a.Unmet())
	assert.Equal(t, []string{"A"}, res.Roster.Assigned(model.Saturday, model.ShiftMorning))
}

func TestGenerate_DaysVisitedInWeekOrder(t *testing.T) {
	// GIVEN: A weekly cap of one and preferences registered Sunday first
	emp := model.NewEmployee("A", "A")
	emp.SetPreference(model.Sunday, pref(model.ShiftMorning, model.ShiftNone))
	emp.SetPreference(model.Wednesday, pref(model.ShiftMorning, model.ShiftNone))
	emp.SetPreference(model.Tuesday, pref(model.ShiftMorning, model.ShiftNone))

	res := schedule.Generate([]*model.Employee{emp}, model.Limits{SeatCapacity: 2, WeeklyDayCap: 1})

	// THEN: The earliest weekday wins
	st, _ := res.State("A")
	assert.Equal(t, map[model.Day]model.Shift{model.Tuesday: model.ShiftMorning}, st.Assignments())
}

func TestGenerate_DuplicateSecondChoiceTriedOnce(t *testing.T) {
	employees := []*model.Employee{
		employee("X", map[model.Day]model.Preference{model.Monday: pref(model.ShiftMorning, model.ShiftNone)}),
		employee("A", map[model.Day]model.Preference{model.Monday: pref(model.ShiftMorning, model.ShiftMorning)}),
	}

	res := schedule.Generate(employees, model.Limits{SeatCapacity: 1, WeeklyDayCap: 5})

	assert.Equal(t, []string{"X"}, res.Roster.Assigned(model.Monday, model.ShiftMorning))
	a, _ := res.State("A")
	assert.Zero(t, a.DaysAssigned())
}

func TestGenerate_EmptyInputs(t *testing.T) {
	res := schedule.Generate(nil, model.DefaultLimits())
	assert.Zero(t, res.Roster.Len())
	assert.Empty(t, res.States)

	res = schedule.Generate([]*model.Employee{model.NewEmployee("A", "A")}, model.DefaultLimits())
	assert.Zero(t, res.Roster.Len())
	require.Len(t, res.States, 1)
	assert.Zero(t, res.States[0].DaysAssigned())
}

func TestGenerate_DuplicateNamesAreScheduledIndependently(t *testing.T) {
	first := model.NewEmployee("id-1", "Sam")
	second := model.NewEmployee("id-2", "Sam")
	first.SetPreference(model.Monday, pref(model.ShiftMorning, model.ShiftNone))
	second.SetPreference(model.Monday, pref(model.ShiftMorning, model.ShiftNone))

	res := schedule.Generate([]*model.Employee{first, second}, model.DefaultLimits())

	assert.Equal(t, []string{"Sam", "Sam"}, res.Roster.Assigned(model.Monday, model.ShiftMorning))
	for _, id := range []string{"id-1", "id-2"} {
		st, ok := res.State(id)
		require.True(t, ok)
		assert.Equal(t, 1, st.DaysAssigned())
	}
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestGenerate_Invariants(t *testing.T) {
	limits := []model.Limits{
		model.DefaultLimits(),
		{SeatCapacity: 1, WeeklyDayCap: 3},
		{SeatCapacity: 4, WeeklyDayCap: 7},
	}
	rng := rand.New(rand.NewSource(42))

	for _, l := range limits {
		for round := 0; round < 20; round++ {
			employees := randomTeam(rng, 1+rng.Intn(20))
			res := schedule.NewEngine(l, nil).Generate(employees)

			for _, d := range model.Week {
				for _, s := range model.Shifts {
					require.LessOrEqual(t, res.Roster.Count(d, s), l.SeatCapacity, "capacity on %s %s", d, s)
				}
			}

			seats := 0
			for _, st := range res.States {
				require.LessOrEqual(t, st.DaysAssigned(), l.WeeklyDayCap)
				assignments := st.Assignments()
				require.Len(t, assignments, st.DaysAssigned(), "one shift per assigned day")
				for d, s := range assignments {
					p, ok := st.Employee.Preferences.Get(d)
					require.True(t, ok)
					require.True(t, p.Allows(s), "%s got %s on %s, wanted %s", st.Employee.Name, s, d, p)
					require.Contains(t, res.Roster.Assigned(d, s), st.Employee.Name)
				}
				seats += st.DaysAssigned()
			}
			require.Equal(t, seats, res.Roster.Len())
		}
	}
}

func TestGenerate_RepeatedRunsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	employees := randomTeam(rng, 12)
	engine := schedule.NewEngine(model.DefaultLimits(), nil)

	first := engine.Generate(employees)
	second := engine.Generate(employees)

	assert.Equal(t, first.Roster, second.Roster)
	for i := range first.States {
		assert.Equal(t, first.States[i].Assignments(), second.States[i].Assignments())
	}
}

func TestState_Reset(t *testing.T) {
	res := schedule.Generate([]*model.Employee{employee("A", everyDay(pref(model.ShiftMorning, model.ShiftNone)))}, model.DefaultLimits())
	st := res.States[0]
	require.Equal(t, 5, st.DaysAssigned())

	st.Reset()

	assert.Zero(t, st.DaysAssigned())
	assert.Empty(t, st.Assignments())
	_, ok := st.Shift(model.Monday)
	assert.False(t, ok)
}
