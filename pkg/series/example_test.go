package series_test

import (
	"fmt"

	"github.com/bft-labs/maclaurin/pkg/series"
)

func ExampleCos() {
	fmt.Printf("%.6f\n", series.Cos(0, series.DefaultIterations))
	// Output: 1.000000
}

func ExampleSqrtOneMinusX() {
	v, err := series.SqrtOneMinusX(2, series.DefaultIterations)
	fmt.Println(v, err)
	// Output: 0 series: sqrt1m: x = 2 must be in (-1, 1]
}
