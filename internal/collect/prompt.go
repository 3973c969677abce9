package collect

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bryan-cox/shiftplanner/internal/model"
	"github.com/bryan-cox/shiftplanner/internal/schedule"
)

// Prompter collects employees interactively, one answer per line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Collect asks for the number of employees and registers each one into team.
// It returns the number of employees added.
func (p *Prompter) Collect(team *schedule.Team) (int, error) {
	n, err := p.Count()
	if err != nil {
		return 0, err
	}
	for i := 1; i <= n; i++ {
		name, prefs, err := p.Employee(i)
		if err != nil {
			return i - 1, fmt.Errorf("employee %d: %w", i, err)
		}
		if _, err := team.Add(name, prefs); err != nil {
			return i - 1, fmt.Errorf("employee %d: %w", i, err)
		}
	}
	return n, nil
}

// Count asks for the number of employees to enter.
func (p *Prompter) Count() (int, error) {
	answer, err := p.ask("Enter number of employees: ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid employee count %q", answer)
	}
	return n, nil
}

// Employee asks for one employee's name and weekly preferences.
func (p *Prompter) Employee(index int) (string, model.PreferenceTable, error) {
	var prefs model.PreferenceTable

	name, err := p.ask(fmt.Sprintf("\nEnter employee %d name: ", index))
	if err != nil {
		return "", prefs, err
	}
	for name == "" {
		fmt.Fprintln(p.out, "Please enter a valid name.")
		if name, err = p.ask(fmt.Sprintf("Enter employee %d name: ", index)); err != nil {
			return "", prefs, err
		}
	}

	same, err := p.confirm("Would you like to use the same shift preferences for all days? (Y/N): ")
	if err != nil {
		return "", prefs, err
	}
	if !same {
		for _, day := range model.Week {
			pref, err := p.Preference(day.String())
			if err != nil {
				return "", prefs, err
			}
			prefs.Set(day, pref)
		}
		return name, prefs, nil
	}

	common, err := p.Preference("all days")
	if err != nil {
		return "", prefs, err
	}
	modify, err := p.confirm("Do you want to modify preferences for specific days? (Y/N): ")
	if err != nil {
		return "", prefs, err
	}
	overrides := make(map[model.Day]model.Preference)
	if modify {
		for _, day := range model.Week {
			ok, err := p.confirm(fmt.Sprintf("Modify shift for %s? (Y/N): ", day))
			if err != nil {
				return "", prefs, err
			}
			if !ok {
				continue
			}
			if overrides[day], err = p.Preference(day.String()); err != nil {
				return "", prefs, err
			}
		}
	}
	return name, Bulk(common, overrides), nil
}

// Preference asks for the first and second choice for a label such as a day
// name. An unrecognized code fails immediately.
func (p *Prompter) Preference(label string) (model.Preference, error) {
	first, err := p.shift(fmt.Sprintf("Enter preferred shift 1 for %s (%s): ", label, CodeHelp))
	if err != nil {
		return model.Preference{}, err
	}
	second, err := p.shift(fmt.Sprintf("Enter preferred shift 2 for %s (%s): ", label, CodeHelp))
	if err != nil {
		return model.Preference{}, err
	}
	return model.Preference{First: first, Second: second}, nil
}

func (p *Prompter) shift(prompt string) (model.Shift, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return model.ShiftNone, err
	}
	return ParseCode(answer)
}

func (p *Prompter) confirm(prompt string) (bool, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToUpper(answer), "Y"), nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}
