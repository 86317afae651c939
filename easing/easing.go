// SPDX-License-Identifier: Unlicense OR MIT

package easing

import (
	"fmt"
	"math"
)

// Kind identifies an easing curve.
type Kind uint8

const (
	Linear Kind = iota
	InOutSine
	InOutQuad
	InOutCirc
	InOutElastic
)

const (
	// Step is the distance between two samples of a curve.
	Step = 0.01
	// Samples is the number of samples taken over [0, 1).
	Samples = int(1 / Step)

	// threshold splits the in and out halves of the InOut curves.
	threshold = 0.5
	// elasticPeriod is the oscillation period of InOutElastic.
	elasticPeriod = 2 * math.Pi / 4.5
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "Linear"
	case InOutSine:
		return "InOutSine"
	case InOutQuad:
		return "InOutQuad"
	case InOutCirc:
		return "InOutCirc"
	case InOutElastic:
		return "InOutElastic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Eval returns the value of the curve at progress x. Eval panics for
// kinds not listed by Default; use Registry.Lookup to validate a kind
// coming from outside the package.
func (k Kind) Eval(x float64) float64 {
	switch k {
	case Linear:
		return x
	case InOutSine:
		return threshold * (1 - math.Cos(math.Pi*x))
	case InOutQuad:
		if x < threshold {
			return 2 * x * x
		}
		return 1 - threshold*square(-2*x+2)
	case InOutCirc:
		if x < threshold {
			return threshold * (1 - math.Sqrt(1-square(2*x)))
		}
		return threshold * (math.Sqrt(1-square(-2*x+2)) + 1)
	case InOutElastic:
		// The general formula is only close to the endpoints; pin them.
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < threshold:
			return -threshold * math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*elasticPeriod)
		default:
			return threshold*math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*elasticPeriod) + 1
		}
	}
	panic(fmt.Sprintf("easing: no curve for %v", k))
}

func square(v float64) float64 {
	return v * v
}

// Keyframe is a value of an animated property at a point in time
// normalized to [0, 1].
type Keyframe[T any] struct {
	At    float64
	Value T
}

// Sample calls fn for each of the Samples uniformly spaced progress
// values t in [0, 1), in increasing order, with the value of the curve
// at t. The progress of sample i is exactly i*Step.
func Sample(k Kind, fn func(i int, t, v float64)) {
	for i := 0; i < Samples; i++ {
		t := float64(i) * Step
		fn(i, t, k.Eval(t))
	}
}

// Keyframes samples the curve k and projects each (progress, value)
// pair into a keyframe value.
func Keyframes[T any](k Kind, project func(t, v float64) T) []Keyframe[T] {
	frames := make([]Keyframe[T], Samples)
	Sample(k, func(i int, t, v float64) {
		frames[i] = Keyframe[T]{At: t, Value: project(t, v)}
	})
	return frames
}
