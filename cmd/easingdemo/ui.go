// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	gmaterial "gioui.org/widget/material"

	"go.uber.org/zap"

	"github.com/kersh1337228/Animation-Task/anim"
	"github.com/kersh1337228/Animation-Task/easing"
	cwidget "github.com/kersh1337228/Animation-Task/widget"
	"github.com/kersh1337228/Animation-Task/widget/material"
)

const boxSize = unit.Dp(48)

type row struct {
	preview *cwidget.Preview
	btn     widget.Clickable
}

type ui struct {
	log      *zap.Logger
	theme    *gmaterial.Theme
	duration time.Duration

	rows     []*row
	list     widget.List
	selected int

	// box animates the horizontal position of the square, as a
	// fraction of the track width.
	box     anim.Animation[float64]
	running bool
}

func newUI(log *zap.Logger, d time.Duration) (*ui, error) {
	u := &ui{
		log:      log,
		theme:    gmaterial.NewTheme(gofont.Collection()),
		duration: d,
		selected: -1,
		list:     widget.List{List: layout.List{Axis: layout.Vertical}},
	}
	r := easing.Default()
	for k := range r.Kinds() {
		p, err := cwidget.NewPreview(r, k)
		if err != nil {
			return nil, err
		}
		u.rows = append(u.rows, &row{preview: p})
	}
	return u, nil
}

func (u *ui) run(w *app.Window) error {
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}

func (u *ui) selectRow(i int, now time.Time) {
	p := u.rows[i].preview
	u.selected = i
	u.box = anim.Animation[float64]{
		Keyframes: cwidget.Keyframes(p, func(_, v float64) float64 { return v }),
		Duration:  u.duration,
		Lerp:      anim.Float64Lerp,
	}
	u.box.Start(now)
	u.running = true
	u.log.Info("animate", zap.Stringer("kind", p.Kind()), zap.Duration("duration", u.duration))
}

func (u *ui) Layout(gtx layout.Context) layout.Dimensions {
	for i, r := range u.rows {
		if r.btn.Clicked() {
			u.selectRow(i, gtx.Now)
		}
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(u.layoutTrack),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return gmaterial.List(u.theme, &u.list).Layout(gtx, len(u.rows), func(gtx layout.Context, i int) layout.Dimensions {
				r := u.rows[i]
				style := material.Preview(u.theme, r.preview, &r.btn)
				style.Selected = i == u.selected
				return style.Layout(gtx)
			})
		}),
	)
}

// layoutTrack draws the animated square.
func (u *ui) layoutTrack(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		sz := gtx.Dp(boxSize)
		track := gtx.Constraints.Max.X - sz
		if track < 0 {
			track = 0
		}
		var pos float64
		if u.selected >= 0 {
			v, running := u.box.Value(gtx.Now)
			pos = v
			if running {
				op.InvalidateOp{}.Add(gtx.Ops)
			} else if u.running {
				u.running = false
				u.log.Debug("animation done", zap.Stringer("kind", u.rows[u.selected].preview.Kind()))
			}
		}
		x := int(pos * float64(track))
		rect := image.Rect(x, 0, x+sz, sz)
		paint.FillShape(gtx.Ops, u.theme.Palette.ContrastBg, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, sz)}
	})
}

