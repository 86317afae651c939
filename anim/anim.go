// SPDX-License-Identifier: Unlicense OR MIT

// Package anim drives property animations from easing keyframes.
package anim

import (
	"sort"
	"time"

	"github.com/kersh1337228/Animation-Task/easing"
)

// Animation interpolates a value of type T over Duration through a
// sequence of keyframes ordered by time.
type Animation[T any] struct {
	Keyframes []easing.Keyframe[T]
	Duration  time.Duration
	// Lerp interpolates between a and b; f is in [0, 1].
	Lerp func(a, b T, f float64) T

	start   time.Time
	started bool
}

// Float64Lerp interpolates linearly between two floats.
func Float64Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// Start (re)starts the animation at now.
func (a *Animation[T]) Start(now time.Time) {
	a.start = now
	a.started = true
}

// Stop ends the animation.
func (a *Animation[T]) Stop() {
	a.started = false
}

// Running reports whether the animation is started and its duration
// has not elapsed at now.
func (a *Animation[T]) Running(now time.Time) bool {
	return a.started && len(a.Keyframes) > 0 && now.Sub(a.start) < a.Duration
}

// Progress returns the fraction of Duration elapsed at now, clamped
// to [0, 1].
func (a *Animation[T]) Progress(now time.Time) float64 {
	if !a.started || a.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.start)) / float64(a.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Value returns the animated value at now and whether the animation
// is still running. Past the last keyframe the last value is held.
// An animation without keyframes returns the zero T.
func (a *Animation[T]) Value(now time.Time) (T, bool) {
	var zero T
	if len(a.Keyframes) == 0 {
		return zero, false
	}
	return a.At(a.Progress(now)), a.Running(now)
}

// At returns the interpolated value at normalized time t.
func (a *Animation[T]) At(t float64) T {
	frames := a.Keyframes
	if len(frames) == 0 {
		var zero T
		return zero
	}
	// First keyframe strictly after t.
	i := sort.Search(len(frames), func(i int) bool {
		return frames[i].At > t
	})
	switch {
	case i == 0:
		return frames[0].Value
	case i == len(frames):
		return frames[len(frames)-1].Value
	}
	prev, next := frames[i-1], frames[i]
	if a.Lerp == nil || next.At == prev.At {
		return prev.Value
	}
	return a.Lerp(prev.Value, next.Value, (t-prev.At)/(next.At-prev.At))
}
