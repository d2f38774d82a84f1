// Package series evaluates truncated Maclaurin series for a small set of
// elementary functions.
//
// Three approximations are provided:
//
//   - [Cos]: cos(x), valid for every real x.
//   - [ExpMinusOne]: e^x − 1, evaluated only for x in (−1, 1).
//   - [SqrtOneMinusX]: √(1−x), evaluated only for x in (−1, 1].
//
// Each function sums the first n terms of its series, where n is the
// iteration count (the truncation order). [DefaultIterations] is the
// conventional choice. A non-positive iteration count yields the empty sum, 0.
//
// Arguments outside a function's interval are rejected before any
// computation with a [*DomainError], which matches [ErrOutOfDomain] under
// errors.Is:
//
//	v, err := series.ExpMinusOne(x, series.DefaultIterations)
//	if errors.Is(err, series.ErrOutOfDomain) {
//	    ...
//	}
//
// All functions are pure and safe for concurrent use.
package series
