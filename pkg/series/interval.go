package series

import (
	"math"
	"strconv"
)

// Interval is a range of the real line with independently open or closed ends.
// Infinite bounds are always treated as open.
type Interval struct {
	Lo, Hi         float64
	LoOpen, HiOpen bool
}

// RealLine is the whole real line.
var RealLine = Interval{Lo: math.Inf(-1), Hi: math.Inf(1), LoOpen: true, HiOpen: true}

// Contains reports whether x lies in the interval. NaN is never contained.
func (i Interval) Contains(x float64) bool {
	if math.IsInf(i.Lo, -1) && math.IsInf(i.Hi, 1) {
		return !math.IsNaN(x)
	}
	lo := x > i.Lo || (!i.LoOpen && x == i.Lo)
	hi := x < i.Hi || (!i.HiOpen && x == i.Hi)
	return lo && hi
}

func (i Interval) String() string {
	lb, rb := "[", "]"
	if i.LoOpen || math.IsInf(i.Lo, -1) {
		lb = "("
	}
	if i.HiOpen || math.IsInf(i.Hi, 1) {
		rb = ")"
	}
	return lb + formatBound(i.Lo) + ", " + formatBound(i.Hi) + rb
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "+inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
