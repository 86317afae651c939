// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/kersh1337228/Animation-Task/easing"
)

// PreviewSize is the width and height of a curve miniature.
const PreviewSize = unit.Dp(100)

// curveScale is the fraction of the miniature height spanned by
// the curve values 0 through 1.
const curveScale = 0.75

// Preview is a miniature drawing of an easing curve.
type Preview struct {
	// StrokeWidth is the width of the curve. The zero value draws
	// a 1dp line.
	StrokeWidth unit.Dp

	kind  easing.Kind
	label string
	// points is the curve polyline in dp, with y growing downwards.
	points []f32.Point
}

// NewPreview returns a Preview of the curve k from r. The error
// matches easing.ErrUnknownKind if r has no such curve.
func NewPreview(r *easing.Registry, k easing.Kind) (*Preview, error) {
	e, err := r.Lookup(k)
	if err != nil {
		return nil, err
	}
	p := &Preview{
		kind:   k,
		label:  e.Name,
		points: make([]f32.Point, easing.Samples),
	}
	size := float64(PreviewSize)
	margin := 0.5 * (1 - curveScale) * size
	easing.Sample(k, func(i int, t, v float64) {
		p.points[i] = f32.Point{
			X: float32(t * size),
			Y: float32(curveScale*size*(1-v) + margin),
		}
	})
	return p, nil
}

// Kind returns the curve drawn by p.
func (p *Preview) Kind() easing.Kind {
	return p.kind
}

// Label returns the name of the curve.
func (p *Preview) Label() string {
	return p.label
}

// Points returns a copy of the curve polyline, in dp.
func (p *Preview) Points() []f32.Point {
	return append([]f32.Point(nil), p.points...)
}

// Keyframes samples the curve of p for an animation driver.
func Keyframes[T any](p *Preview, project func(t, v float64) T) []easing.Keyframe[T] {
	return easing.Keyframes(p.kind, project)
}

// Layout strokes the curve with col. The miniature always occupies
// PreviewSize by PreviewSize, regardless of the constraints.
func (p *Preview) Layout(gtx layout.Context, col color.NRGBA) layout.Dimensions {
	sz := gtx.Dp(PreviewSize)
	dims := layout.Dimensions{Size: image.Pt(sz, sz)}
	if len(p.points) == 0 {
		return dims
	}
	scale := gtx.Metric.PxPerDp
	if scale == 0 {
		scale = 1
	}
	width := p.StrokeWidth
	if width <= 0 {
		width = 1
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(p.points[0].Mul(scale))
	for _, pt := range p.points[1:] {
		path.LineTo(pt.Mul(scale))
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{
		Path:  path.End(),
		Width: float32(width) * scale,
	}.Op())
	return dims
}
