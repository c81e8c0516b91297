package core

import "math"

// Interval represents a closed range [Min, Max]
type Interval struct {
	Min, Max float64
}

// Empty is an interval that contains nothing
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe is an interval that contains everything
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// UnionInterval returns the outer hull of two intervals
func UnionInterval(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Length returns the size of the interval
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// Contains returns true if x lies within the closed interval
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds returns true if x lies strictly within the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp restricts x to lie within the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns an interval padded symmetrically by delta/2 on each end
// (delta in total)
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}
