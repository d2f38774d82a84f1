package series

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain is returned when an argument lies outside the interval a
// series is evaluated on.
var ErrOutOfDomain = errors.New("series: argument out of domain")

// DomainError describes a rejected argument.
type DomainError struct {
	Func   Func
	X      float64
	Domain Interval
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("series: %s: x = %v must be in %s", e.Func, e.X, e.Domain)
}

// Unwrap lets errors.Is match ErrOutOfDomain.
func (e *DomainError) Unwrap() error {
	return ErrOutOfDomain
}

func checkDomain(f Func, x float64) error {
	d := f.Domain()
	if !d.Contains(x) {
		return &DomainError{Func: f, X: x, Domain: d}
	}
	return nil
}
