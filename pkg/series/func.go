package series

import (
	"fmt"
	"math"
	"strings"
)

// Func identifies one of the approximated functions.
type Func int

const (
	FuncCos Func = iota + 1
	FuncExpMinusOne
	FuncSqrtOneMinusX
)

// Funcs lists every supported function in menu order.
var Funcs = []Func{FuncCos, FuncExpMinusOne, FuncSqrtOneMinusX}

var funcNames = map[string]Func{
	"cos":              FuncCos,
	"expm1":            FuncExpMinusOne,
	"exp":              FuncExpMinusOne,
	"exp-minus-one":    FuncExpMinusOne,
	"sqrt1m":           FuncSqrtOneMinusX,
	"sqrt":             FuncSqrtOneMinusX,
	"sqrt-one-minus-x": FuncSqrtOneMinusX,
}

// ParseFunc resolves a function by name, case-insensitively.
func ParseFunc(name string) (Func, error) {
	if f, ok := funcNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("series: unknown function %q (want cos, expm1 or sqrt1m)", name)
}

func (f Func) String() string {
	switch f {
	case FuncCos:
		return "cos"
	case FuncExpMinusOne:
		return "expm1"
	case FuncSqrtOneMinusX:
		return "sqrt1m"
	}
	return fmt.Sprintf("Func(%d)", int(f))
}

// Formula renders the approximated expression for argument x.
func (f Func) Formula(x float64) string {
	switch f {
	case FuncCos:
		return fmt.Sprintf("cos(%v)", x)
	case FuncExpMinusOne:
		return fmt.Sprintf("e^%v - 1", x)
	case FuncSqrtOneMinusX:
		return fmt.Sprintf("sqrt(1 - %v)", x)
	}
	return f.String()
}

// Domain returns the interval of arguments the function accepts.
func (f Func) Domain() Interval {
	switch f {
	case FuncExpMinusOne:
		return Interval{Lo: -1, Hi: 1, LoOpen: true, HiOpen: true}
	case FuncSqrtOneMinusX:
		return Interval{Lo: -1, Hi: 1, LoOpen: true}
	}
	return RealLine
}

// Reference returns the value computed by the math package, for comparison
// against the series approximation.
func (f Func) Reference(x float64) float64 {
	switch f {
	case FuncCos:
		return math.Cos(x)
	case FuncExpMinusOne:
		return math.Expm1(x)
	case FuncSqrtOneMinusX:
		return math.Sqrt(1 - x)
	}
	return math.NaN()
}

// Evaluate dispatches to the series implementation of f.
func Evaluate(f Func, x float64, iterations int) (float64, error) {
	switch f {
	case FuncCos:
		return Cos(x, iterations), nil
	case FuncExpMinusOne:
		return ExpMinusOne(x, iterations)
	case FuncSqrtOneMinusX:
		return SqrtOneMinusX(x, iterations)
	}
	return 0, fmt.Errorf("series: unknown function %v", f)
}

// Terms returns the individual series terms Evaluate would sum, in order.
func Terms(f Func, x float64, iterations int) ([]float64, error) {
	if err := checkDomain(f, x); err != nil {
		return nil, err
	}
	switch f {
	case FuncCos:
		return cosTerms(x, iterations), nil
	case FuncExpMinusOne:
		return expMinusOneTerms(x, iterations), nil
	case FuncSqrtOneMinusX:
		return sqrtOneMinusXTerms(x, iterations), nil
	}
	return nil, fmt.Errorf("series: unknown function %v", f)
}
