// Package collect gathers employee names and shift preferences from users and
// files and turns them into model types.
package collect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bryan-cox/shiftplanner/internal/model"
)

// ErrInvalidPreferenceCode is returned for a character outside the
// recognized preference codes.
var ErrInvalidPreferenceCode = errors.New("invalid preference code")

// ErrUnknownDay is returned for a day name that is not a weekday.
var ErrUnknownDay = errors.New("unknown day")

// InvalidCodeError carries the rejected input.
type InvalidCodeError struct {
	Code string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("%s %q (use N/0=None, M/1=Morning, A/2=Afternoon, E/3=Evening)", ErrInvalidPreferenceCode, e.Code)
}

func (e *InvalidCodeError) Unwrap() error {
	return ErrInvalidPreferenceCode
}

// CodeHelp describes the accepted preference codes.
const CodeHelp = "N/0=None, M/1=Morning, A/2=Afternoon, E/3=Evening"

var codes = map[string]model.Shift{
	"N": model.ShiftNone, "0": model.ShiftNone,
	"M": model.ShiftMorning, "1": model.ShiftMorning,
	"A": model.ShiftAfternoon, "2": model.ShiftAfternoon,
	"E": model.ShiftEvening, "3": model.ShiftEvening,
}

// ParseCode maps a one-character preference code to a shift. Letter codes
// are case-insensitive.
func ParseCode(code string) (model.Shift, error) {
	shift, ok := codes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return model.ShiftNone, &InvalidCodeError{Code: code}
	}
	return shift, nil
}

// ParseChoice accepts either a preference code or a shift name.
func ParseChoice(s string) (model.Shift, error) {
	if shift, err := ParseCode(s); err == nil {
		return shift, nil
	}
	if shift, err := model.ParseShift(s); err == nil {
		return shift, nil
	}
	return model.ShiftNone, &InvalidCodeError{Code: s}
}

// Bulk applies one preference to every day of the week, then the overrides.
func Bulk(common model.Preference, overrides map[model.Day]model.Preference) model.PreferenceTable {
	var table model.PreferenceTable
	for _, day := range model.Week {
		if p, ok := overrides[day]; ok {
			table.Set(day, p)
			continue
		}
		table.Set(day, common)
	}
	return table
}
