package main

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

var (
	dividerColor      = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	dividerHoverColor = color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
)

const (
	dividerWidthPx        = 6
	minGutterWidth        = 80
	defaultGutterWidth    = 280
	maxGutterWidthPercent = 70 // of the window width
)

// DragDivider is a draggable vertical divider between the editor and the
// results column. The zero value starts at defaultGutterWidth.
type DragDivider struct {
	width      int // results column width in pixels; 0 means default
	dragging   bool
	startX     float32
	startWidth int
	tag        bool
}

// Width returns the results column width clamped for a window windowW wide.
func (d *DragDivider) Width(windowW int) int {
	w := d.width
	if w == 0 {
		w = defaultGutterWidth
	}
	return clampGutterWidth(w, windowW)
}

func clampGutterWidth(w, windowW int) int {
	hi := max(windowW*maxGutterWidthPercent/100, minGutterWidth)
	return min(max(w, minGutterWidth), hi)
}

// Layout draws the drag handle and resizes the results column while it is
// dragged.
func (d *DragDivider) Layout(gtx layout.Context, windowW int) layout.Dimensions {
	height := gtx.Constraints.Max.Y

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &d.tag,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			d.dragging = true
			d.startX = pe.Position.X
			d.startWidth = d.Width(windowW)
		case pointer.Drag:
			if d.dragging {
				// Dragging left widens the column on the right.
				d.width = clampGutterWidth(d.startWidth-int(pe.Position.X-d.startX), windowW)
			}
		case pointer.Release, pointer.Cancel:
			d.dragging = false
		}
	}

	c := dividerColor
	if d.dragging {
		c = dividerHoverColor
	}
	rect := image.Rect(0, 0, dividerWidthPx, height)
	paint.FillShape(gtx.Ops, c, clip.Rect(rect).Op())

	area := clip.Rect(rect).Push(gtx.Ops)
	event.Op(gtx.Ops, &d.tag)
	pointer.CursorColResize.Add(gtx.Ops)
	area.Pop()

	return layout.Dimensions{Size: image.Pt(dividerWidthPx, height)}
}
