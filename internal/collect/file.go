package collect

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bryan-cox/shiftplanner/internal/model"
	"github.com/bryan-cox/shiftplanner/internal/schedule"
)

// File is the on-disk list of employees and their preferences.
type File struct {
	Employees []EmployeeEntry `yaml:"employees"`
}

// EmployeeEntry is one employee in a File. AllDays applies to the whole week
// and Days overrides it per day.
type EmployeeEntry struct {
	Name    string      `yaml:"name"`
	AllDays *ChoicePair `yaml:"all_days,omitempty"`
	Days    DayChoices  `yaml:"days,omitempty"`
}

// ChoicePair holds a first and second choice, each a code (M, 1, ...) or a
// shift name. Blank means none.
type ChoicePair struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// DayChoices maps days to choice pairs and is written in Week order.
type DayChoices map[model.Day]ChoicePair

// MarshalYAML writes the days in Week order.
func (d DayChoices) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, day := range model.Week {
		pair, ok := d[day]
		if !ok {
			continue
		}
		var value yaml.Node
		if err := value.Encode(pair); err != nil {
			return nil, err
		}
		value.Style = yaml.FlowStyle
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: strings.ToLower(day.String())},
			&value)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping of day names to choice pairs.
func (d *DayChoices) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: days must be a mapping", value.Line)
	}
	out := make(DayChoices, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		day, err := model.ParseDay(key.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w %q", key.Line, ErrUnknownDay, key.Value)
		}
		var pair ChoicePair
		if err := val.Decode(&pair); err != nil {
			return err
		}
		out[day] = pair
	}
	*d = out
	return nil
}

func (c ChoicePair) preference() (model.Preference, error) {
	first, err := parseOptionalChoice(c.First)
	if err != nil {
		return model.Preference{}, err
	}
	second, err := parseOptionalChoice(c.Second)
	if err != nil {
		return model.Preference{}, err
	}
	return model.Preference{First: first, Second: second}, nil
}

func parseOptionalChoice(s string) (model.Shift, error) {
	if strings.TrimSpace(s) == "" {
		return model.ShiftNone, nil
	}
	return ParseChoice(s)
}

func pairOf(p model.Preference) ChoicePair {
	return ChoicePair{
		First:  strings.ToLower(p.First.String()),
		Second: strings.ToLower(p.Second.String()),
	}
}

// Preferences builds the entry's preference table.
func (e EmployeeEntry) Preferences() (model.PreferenceTable, error) {
	var table model.PreferenceTable
	overrides := make(map[model.Day]model.Preference, len(e.Days))
	for day, pair := range e.Days {
		pref, err := pair.preference()
		if err != nil {
			return table, fmt.Errorf("%s: %w", day, err)
		}
		overrides[day] = pref
	}

	if e.AllDays != nil {
		common, err := e.AllDays.preference()
		if err != nil {
			return table, fmt.Errorf("all_days: %w", err)
		}
		return Bulk(common, overrides), nil
	}
	for day, pref := range overrides {
		table.Set(day, pref)
	}
	return table, nil
}

// Parse decodes an employee file and registers its employees into a new team
// in file order.
func Parse(data []byte) (*schedule.Team, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse employee YAML: %w", err)
	}
	team := &schedule.Team{}
	for i, entry := range f.Employees {
		prefs, err := entry.Preferences()
		if err != nil {
			return nil, fmt.Errorf("employee %d (%s): %w", i+1, entry.Name, err)
		}
		if _, err := team.Add(entry.Name, prefs); err != nil {
			return nil, fmt.Errorf("employee %d: %w", i+1, err)
		}
	}
	return team, nil
}

// LoadFile reads and parses an employee file.
func LoadFile(path string) (*schedule.Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file '%s': %w", path, err)
	}
	team, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return team, nil
}

// Encode returns the YAML document for the given employees. Every registered
// day is written explicitly.
func Encode(employees []*model.Employee) ([]byte, error) {
	f := File{Employees: make([]EmployeeEntry, 0, len(employees))}
	for _, emp := range employees {
		entry := EmployeeEntry{Name: emp.Name, Days: make(DayChoices, emp.Preferences.Len())}
		for day, pref := range emp.Preferences.View() {
			entry.Days[day] = pairOf(pref)
		}
		f.Employees = append(f.Employees, entry)
	}
	return yaml.Marshal(&f)
}

// SaveFile writes the given employees to path.
func SaveFile(path string, employees []*model.Employee) error {
	data, err := Encode(employees)
	if err != nil {
		return fmt.Errorf("could not encode employees: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", path, err)
	}
	return nil
}
