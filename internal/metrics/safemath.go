package metrics

import (
	"math"

	"github.com/minshik/forensiq/internal/contracts"
)

// epsilon below which a denominator counts as zero
const epsilon = 1e-12

// ratio computes a/b from nullable inputs. ok is false when either input is
// nil, the denominator is (near) zero, or the quotient is non-finite.
func ratio(a, b *float64) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if math.Abs(*b) < epsilon {
		return 0, false
	}
	q := *a / *b
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, false
	}
	return q, true
}

// div builds a leaf for num/den. Missing inputs produce a reason naming the
// absent field; a zero denominator names the metric.
func div(metric string, num, den *float64, numField, denField string) contracts.Leaf {
	if num == nil {
		return contracts.Null(numField + " unavailable")
	}
	if den == nil {
		return contracts.Null(denField + " unavailable")
	}
	if math.Abs(*den) < epsilon {
		return contracts.Null(metric + " denominator is zero")
	}
	return contracts.Value(*num / *den)
}

// sub returns a-b when both inputs are present
func sub(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := *a - *b
	return &v
}

// add returns a+b when both inputs are present
func add(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := *a + *b
	return &v
}

// binary builds a 1/0 Piotroski-style leaf, or null when unresolvable
func binary(cond bool) contracts.Leaf {
	if cond {
		return contracts.Value(1)
	}
	return contracts.Value(0)
}
