// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kersh1337228/Animation-Task/easing"
)

func newLinear() *Animation[float64] {
	return &Animation[float64]{
		Keyframes: easing.Keyframes(easing.Linear, func(_, v float64) float64 { return 100 * v }),
		Duration:  time.Second,
		Lerp:      Float64Lerp,
	}
}

func TestValue(t *testing.T) {
	a := newLinear()
	start := time.Unix(0, 0)
	a.Start(start)

	v, running := a.Value(start)
	assert.True(t, running)
	assert.Equal(t, 0.0, v)

	v, running = a.Value(start.Add(250 * time.Millisecond))
	assert.True(t, running)
	assert.InDelta(t, 25, v, 1e-6)

	v, _ = a.Value(start.Add(255 * time.Millisecond))
	assert.InDelta(t, 25.5, v, 1e-6)

	// Between the last keyframe and the end the last value is held.
	v, running = a.Value(start.Add(995 * time.Millisecond))
	assert.True(t, running)
	assert.InDelta(t, 99, v, 1e-6)

	v, running = a.Value(start.Add(2 * time.Second))
	assert.False(t, running)
	assert.InDelta(t, 99, v, 1e-6)
}

func TestNotStarted(t *testing.T) {
	a := newLinear()
	now := time.Now()
	assert.False(t, a.Running(now))
	v, running := a.Value(now)
	assert.False(t, running)
	assert.InDelta(t, 99, v, 1e-6)
}

func TestStop(t *testing.T) {
	a := newLinear()
	now := time.Now()
	a.Start(now)
	assert.True(t, a.Running(now))
	a.Stop()
	assert.False(t, a.Running(now))
}

func TestEmpty(t *testing.T) {
	var a Animation[float64]
	now := time.Now()
	a.Start(now)
	v, running := a.Value(now)
	assert.False(t, running)
	assert.Zero(t, v)
}

func TestNoLerpSteps(t *testing.T) {
	a := newLinear()
	a.Lerp = nil
	assert.InDelta(t, 25, a.At(0.255), 1e-6)
}

func TestProgressClamped(t *testing.T) {
	a := newLinear()
	start := time.Unix(10, 0)
	a.Start(start)
	assert.Equal(t, 0.0, a.Progress(start.Add(-time.Second)))
	assert.Equal(t, 1.0, a.Progress(start.Add(time.Hour)))
	assert.InDelta(t, 0.5, a.Progress(start.Add(500*time.Millisecond)), 1e-9)
}
