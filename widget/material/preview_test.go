// SPDX-License-Identifier: Unlicense OR MIT

package material_test

import (
	"image"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	gmaterial "gioui.org/widget/material"

	"github.com/kersh1337228/Animation-Task/easing"
	cwidget "github.com/kersh1337228/Animation-Task/widget"
	"github.com/kersh1337228/Animation-Task/widget/material"
)

func TestPreviewRowSize(t *testing.T) {
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Constraints: layout.Constraints{
			Max: image.Pt(400, 1000),
		},
	}
	th := gmaterial.NewTheme(gofont.Collection())
	p, err := cwidget.NewPreview(easing.Default(), easing.InOutQuad)
	if err != nil {
		t.Fatal(err)
	}
	var btn widget.Clickable
	for _, selected := range []bool{false, true} {
		style := material.Preview(th, p, &btn)
		style.Selected = selected
		dims := style.Layout(gtx)
		if want := image.Pt(400, 102); dims.Size != want {
			t.Errorf("selected=%v: size = %v, want %v", selected, dims.Size, want)
		}
	}
}
