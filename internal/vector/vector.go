// Package vector provides the numeric primitives used for similarity scoring.
package vector

import (
	"errors"
	"math"
)

// ErrDimensionMismatch indicates two vectors of unequal length were combined.
// This is a programmer error and should fail loudly in development.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// Dot returns the dot product of two equal-length vectors.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Magnitude returns the Euclidean norm of v. Always >= 0.
func Magnitude(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of a and b.
//
// When either vector has zero magnitude the result is 0, not NaN and not an
// error: frequency vectors with no overlap must never poison a confidence
// score. Mismatched lengths also yield 0 since the callers build both
// vectors over a shared vocabulary.
func Cosine(a, b []float64) float64 {
	dot, err := Dot(a, b)
	if err != nil {
		return 0
	}

	magA := Magnitude(a)
	magB := Magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (magA * magB)
}

// Normalize returns a unit vector in the direction of v.
// The zero vector is returned unchanged (there is no direction to preserve).
func Normalize(v []float64) []float64 {
	mag := Magnitude(v)
	out := make([]float64, len(v))
	if mag == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = x / mag
	}
	return out
}
