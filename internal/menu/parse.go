package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/maclaurin/pkg/series"
)

var (
	// ErrInvalidChoice is returned for anything other than a listed option.
	ErrInvalidChoice = errors.New("menu: invalid choice")

	// ErrInvalidNumber is returned when an argument is not a number.
	ErrInvalidNumber = errors.New("menu: invalid number")
)

// Choice is a menu option.
type Choice int

const (
	ChoiceCos Choice = iota + 1
	ChoiceExpMinusOne
	ChoiceSqrtOneMinusX
	ChoiceExit
)

// Func maps an evaluation choice to its series. ok is false for ChoiceExit.
func (c Choice) Func() (f series.Func, ok bool) {
	switch c {
	case ChoiceCos:
		return series.FuncCos, true
	case ChoiceExpMinusOne:
		return series.FuncExpMinusOne, true
	case ChoiceSqrtOneMinusX:
		return series.FuncSqrtOneMinusX, true
	}
	return 0, false
}

// ParseChoice accepts "1" through "4", ignoring surrounding whitespace.
func ParseChoice(s string) (Choice, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < int(ChoiceCos) || n > int(ChoiceExit) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
	return Choice(n), nil
}

// ParseNumber parses a real number. A single decimal comma is accepted in
// place of a point.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return x, nil
}
