// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"testing"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"go.uber.org/zap"

	"github.com/kersh1337228/Animation-Task/easing"
)

func TestUI(t *testing.T) {
	u, err := newUI(zap.NewNop(), time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(u.rows), easing.Default().Len(); got != want {
		t.Fatalf("got %d rows, want %d", got, want)
	}
	start := time.Unix(100, 0)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(640, 600)),
		Now:         start,
	}
	u.Layout(gtx)

	u.selectRow(2, start)
	if u.rows[u.selected].preview.Kind() != easing.InOutQuad {
		t.Errorf("selected %v, want %v", u.rows[u.selected].preview.Kind(), easing.InOutQuad)
	}
	gtx.Ops.Reset()
	gtx.Now = start.Add(500 * time.Millisecond)
	u.Layout(gtx)
	if !u.running {
		t.Error("animation stopped early")
	}
	gtx.Ops.Reset()
	gtx.Now = start.Add(2 * time.Second)
	u.Layout(gtx)
	if u.running {
		t.Error("animation still running after its duration")
	}
}
