// Package maclaurin approximates elementary functions with truncated
// Maclaurin series.
//
// Example usage:
//
//	v := maclaurin.Cos(math.Pi, maclaurin.DefaultIterations)
//	w, err := maclaurin.SqrtOneMinusX(0.5, maclaurin.DefaultIterations)
//	if errors.Is(err, maclaurin.ErrOutOfDomain) {
//	    log.Fatal(err)
//	}
//
// The implementations live in package series; this package re-exports them.
package maclaurin

import "github.com/bft-labs/maclaurin/pkg/series"

// DefaultIterations is the number of terms summed when no count is given.
const DefaultIterations = series.DefaultIterations

// ErrOutOfDomain is matched by errors for arguments outside a function's
// interval.
var ErrOutOfDomain = series.ErrOutOfDomain

// DomainError describes a rejected argument.
type DomainError = series.DomainError

// Cos approximates cos(x). It accepts every real x.
func Cos(x float64, iterations int) float64 {
	return series.Cos(x, iterations)
}

// ExpMinusOne approximates e^x − 1 for x in (−1, 1).
func ExpMinusOne(x float64, iterations int) (float64, error) {
	return series.ExpMinusOne(x, iterations)
}

// SqrtOneMinusX approximates √(1−x) for x in (−1, 1].
func SqrtOneMinusX(x float64, iterations int) (float64, error) {
	return series.SqrtOneMinusX(x, iterations)
}
