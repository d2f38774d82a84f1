package series

// DefaultIterations is the number of series terms used when the caller has no
// better choice.
const DefaultIterations = 10

// Cos approximates cos(x) by Σ_{k=0}^{n-1} (−1)^k · x^(2k) / (2k)!.
func Cos(x float64, iterations int) float64 {
	return sum(cosTerms(x, iterations))
}

// ExpMinusOne approximates e^x − 1 by Σ_{k=1}^{n} x^k / k!.
// x must lie in (−1, 1).
func ExpMinusOne(x float64, iterations int) (float64, error) {
	if err := checkDomain(FuncExpMinusOne, x); err != nil {
		return 0, err
	}
	return sum(expMinusOneTerms(x, iterations)), nil
}

// SqrtOneMinusX approximates √(1−x) by Σ_{m=0}^{n-1} C(1/2, m) · (−x)^m.
// x must lie in (−1, 1]. At x = 1 the partial sums approach 0 slowly.
func SqrtOneMinusX(x float64, iterations int) (float64, error) {
	if err := checkDomain(FuncSqrtOneMinusX, x); err != nil {
		return 0, err
	}
	return sum(sqrtOneMinusXTerms(x, iterations)), nil
}

// Each term is derived from its predecessor, so no factorial or power is
// ever formed on its own and large iteration counts do not overflow early.

func cosTerms(x float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	terms := make([]float64, n)
	t := 1.0
	terms[0] = t
	for k := 1; k < n; k++ {
		t *= -x * x / float64((2*k-1)*(2*k))
		terms[k] = t
	}
	return terms
}

func expMinusOneTerms(x float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	terms := make([]float64, n)
	t := 1.0
	for k := 1; k <= n; k++ {
		t *= x / float64(k)
		terms[k-1] = t
	}
	return terms
}

// sqrtOneMinusXTerms uses C(1/2, m)·(−x)^m = C(1/2, m−1)·(−x)^(m−1) · (2m−3)/(2m) · x.
func sqrtOneMinusXTerms(x float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	terms := make([]float64, n)
	t := 1.0
	terms[0] = t
	for m := 1; m < n; m++ {
		t *= float64(2*m-3) / float64(2*m) * x
		terms[m] = t
	}
	return terms
}

func sum(terms []float64) float64 {
	var s float64
	for _, t := range terms {
		s += t
	}
	return s
}
