// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	cwidget "github.com/kersh1337228/Animation-Task/widget"
)

// listGap separates consecutive preview rows.
const listGap = unit.Dp(2)

// PreviewStyle draws a curve preview as a selectable list row: the
// miniature followed by the curve name.
type PreviewStyle struct {
	Preview *cwidget.Preview
	Button  *widget.Clickable
	// Selected highlights the row.
	Selected bool

	Color     color.NRGBA
	Highlight color.NRGBA
	Label     material.LabelStyle
	// Indent separates the miniature from the label.
	Indent unit.Dp
}

// Preview returns a row style for p, clickable through btn.
func Preview(th *material.Theme, p *cwidget.Preview, btn *widget.Clickable) PreviewStyle {
	hl := th.Palette.ContrastBg
	hl.A = 0x40
	return PreviewStyle{
		Preview:   p,
		Button:    btn,
		Color:     th.Palette.Fg,
		Highlight: hl,
		Label:     material.Body1(th, p.Label()),
		Indent:    unit.Dp(32),
	}
}

func (s PreviewStyle) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Bottom: listGap}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return material.Clickable(gtx, s.Button, s.layoutRow)
	})
}

func (s PreviewStyle) layoutRow(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			if !s.Selected {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}
			defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
			paint.ColorOp{Color: s.Highlight}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return s.Preview.Layout(gtx, s.Color)
				}),
				layout.Rigid(layout.Spacer{Width: s.Indent}.Layout),
				layout.Flexed(1, s.Label.Layout),
			)
		}),
	)
}
