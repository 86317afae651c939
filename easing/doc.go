// SPDX-License-Identifier: Unlicense OR MIT

/*
Package easing implements a small, closed set of easing curves.

An easing curve maps normalized progress in [0, 1] to a value that is
usually in [0, 1]. Curves are identified by a Kind and listed by a
Registry, built once at package initialization and never modified:

	r := easing.Default()
	for k := range r.Kinds() {
		fmt.Println(k, k.Eval(0.5))
	}

Keyframes samples a curve at Samples uniformly spaced points of [0, 1)
for animation drivers:

	frames := easing.Keyframes(easing.InOutQuad, func(t, v float64) float64 {
		return v * 300
	})
*/
package easing
