package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"ratsolve/app/algebra"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	editorBg = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	editorFg = color.NRGBA{R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}
)

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("ratsolve"), app.Size(unit.Dp(1024), unit.Dp(768)))
		if err := run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Face = "Go Mono"
	th.TextSize = unit.Sp(14)

	es := NewEditorState()
	registerWebCallbacks(es, w)
	expl := explorer.NewExplorer(w)
	var divider DragDivider

	// Open the notebook named on the command line, if any
	if len(os.Args) > 1 {
		if err := es.LoadFile(os.Args[1]); err != nil {
			log.Printf("Failed to open %s: %v", os.Args[1], err)
		}
	}

	var shortcutTag = new(bool)
	var openCh <-chan FileResult
	var saveCh <-chan SaveResult

	// Every line is solved on each frame; unchanged lines come from the cache.
	evalState := &algebra.EvalState{}
	prevLines := es.Lines()
	suppressNextChange := false

	// Channel-forward pattern for explorer compatibility
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()

	w.Option(app.Title(es.Title()))

	var ops op.Ops
	for {
		select {
		case result := <-openCh:
			openCh = nil
			if result.Err != nil {
				log.Printf("Open error: %v", result.Err)
			} else {
				es.SetContent(string(result.Data))
				w.Option(app.Title(es.Title()))
			}
			w.Invalidate()

		case result := <-saveCh:
			saveCh = nil
			if result.Err != nil {
				log.Printf("Save error: %v", result.Err)
			} else {
				es.Dirty = false
				w.Option(app.Title(es.Title()))
			}
			w.Invalidate()

		case e := <-events:
			expl.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				return e.Err
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				windowW := gtx.Constraints.Max.X

				// Handle keyboard shortcuts
				event.Op(gtx.Ops, shortcutTag)
				for {
					ev, ok := gtx.Event(
						key.Filter{Required: key.ModShortcut, Name: "O"},
						key.Filter{Required: key.ModShortcut, Name: "S"},
						key.Filter{Required: key.ModShortcut, Name: "="},
						key.Filter{Required: key.ModShortcut, Name: "-"},
						key.Filter{Required: key.ModShortcut, Name: "A"},
					)
					if !ok {
						break
					}
					ke, ok := ev.(key.Event)
					if !ok || ke.State != key.Press {
						continue
					}
					switch ke.Name {
					case "O":
						if openCh == nil {
							openCh = OpenFileAsync(expl)
						}
					case "S":
						if saveCh != nil {
							break
						}
						if es.FilePath != "" {
							go func() {
								if err := es.SaveFile(es.FilePath); err != nil {
									log.Printf("Save error: %v", err)
								}
								w.Invalidate()
							}()
						} else {
							saveCh = SaveFileAsync(expl, []byte(es.Editor.Text()), "untitled.txt")
						}
					case "=": // Cmd+= (Cmd+Plus)
						if th.TextSize < unit.Sp(48) {
							th.TextSize += unit.Sp(2)
						}
					case "-": // Cmd+-
						if th.TextSize > unit.Sp(8) {
							th.TextSize -= unit.Sp(2)
						}
					case "A": // Cmd+A / Ctrl+A: select all
						es.Editor.SetCaret(es.Editor.Len(), 0)
					}
				}

				// Process editor events
				textChanged := false
				for {
					ev, ok := es.Editor.Update(gtx)
					if !ok {
						break
					}
					if _, ok := ev.(widget.ChangeEvent); !ok {
						continue
					}
					if suppressNextChange {
						suppressNextChange = false
						continue
					}
					textChanged = true
					if !es.Dirty {
						es.Dirty = true
						w.Option(app.Title(es.Title()))
					}
				}

				// Keep #N references pointing at the same lines after inserts and deletes
				if textChanged {
					newLines := es.Lines()
					delta := len(newLines) - len(prevLines)
					if delta != 0 {
						changePoint := findChangePoint(prevLines, newLines)
						if renumberLineRefs(es, changePoint, delta) {
							suppressNextChange = true
						}
					}
					prevLines = es.Lines()
				}

				evalResults := evalState.EvalAllIncremental(es.Lines())
				results := make([]LineResult, len(evalResults))
				for idx, er := range evalResults {
					results[idx] = LineResult{Text: er.Text, IsErr: er.IsErr, Solved: er.Solved}
				}

				// Fill background
				paint.FillShape(gtx.Ops, editorBg, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())

				// Measure actual line height and editor padding
				lineHeight := MeasureLineHeight(gtx, th)
				topPad := gtx.Dp(unit.Dp(4)) // must match editor inset
				lineCount := es.LineCount()
				scrollY := 0

				// Current line highlight (caret line)
				caretLine, _ := es.Editor.CaretPos()
				topSpacerPx := gtx.Dp(unit.Dp(6))
				highlightY := topSpacerPx + topPad + caretLine*lineHeight
				highlightColor := color.NRGBA{R: 0x2A, G: 0x2D, B: 0x32, A: 0xFF}
				paint.FillShape(gtx.Ops, highlightColor,
					clip.Rect(image.Rect(0, highlightY, gtx.Constraints.Max.X, highlightY+lineHeight)).Op())

				rightGutterWidth := divider.Width(windowW)

				// Layout: top padding, then left gutter | editor | divider | results
				layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						return layout.Spacer{Height: unit.Dp(6)}.Layout(gtx)
					}),
					layout.Flexed(1, func(gtx C) D {
						return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
							layout.Rigid(func(gtx C) D {
								return LayoutLeftGutter(gtx, th, lineCount, scrollY, lineHeight, topPad)
							}),
							layout.Flexed(1, func(gtx C) D {
								return layoutEditor(gtx, th, es)
							}),
							layout.Rigid(func(gtx C) D {
								return divider.Layout(gtx, windowW)
							}),
							layout.Rigid(func(gtx C) D {
								return LayoutRightGutter(gtx, th, results, scrollY, lineHeight, topPad, rightGutterWidth)
							}),
						)
					}),
				)

				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

func layoutEditor(gtx C, th *material.Theme, es *EditorState) D {
	ed := material.Editor(th, &es.Editor, "2x + 5 = 15")
	ed.Font = font.Font{Typeface: "Go Mono"}
	ed.Color = color.NRGBA{A: 0x00} // transparent text + caret (overlay draws colored text)
	ed.HintColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	ed.TextSize = th.TextSize
	ed.SelectionColor = color.NRGBA{R: 0x26, G: 0x4F, B: 0x78, A: 0xFF}

	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
		// Editor layout (transparent text, handles input + selection)
		dims := ed.Layout(gtx)

		// Colored text overlay clipped to editor bounds
		cl := clip.Rect(image.Rect(0, 0, dims.Size.X, dims.Size.Y)).Push(gtx.Ops)
		drawHighlightedText(gtx, th, es, dims)
		cl.Pop()

		return dims
	})
}

func drawHighlightedText(gtx C, th *material.Theme, es *EditorState, edDims D) {
	lines := es.Lines()

	lineHeight, baseline := measureLineMetrics(gtx, th)
	if lineHeight <= 0 {
		return
	}
	ascent := lineHeight - baseline

	// CaretCoords().Y is the caret baseline adjusted for scroll; derive the
	// top of line 0 from it.
	caretLine, _ := es.Editor.CaretPos()
	caretPt := es.Editor.CaretCoords()
	baseY := caretPt.Y - float32(ascent) - float32(caretLine*lineHeight)

	for i, line := range lines {
		y := int(baseY + float32(i*lineHeight))
		if y+lineHeight < 0 || y > edDims.Size.Y {
			continue
		}
		x := 0
		for _, tok := range Tokenize(line) {
			lbl := material.Label(th, th.TextSize, tok.Text)
			lbl.Color = TokenColor(tok.Kind)
			lbl.Font = font.Font{Typeface: "Go Mono"}
			lbl.MaxLines = 1

			off := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
			tgtx := gtx
			tgtx.Constraints.Min = image.Point{}
			tgtx.Constraints.Max = image.Pt(edDims.Size.X-x, lineHeight)
			dims := lbl.Layout(tgtx)
			off.Pop()

			x += dims.Size.X
		}
	}

	// The editor's own caret is transparent, so draw one
	if gtx.Focused(&es.Editor) {
		cx := int(caretPt.X)
		cy := int(caretPt.Y)
		paint.FillShape(gtx.Ops, editorFg,
			clip.Rect(image.Rect(cx, cy-ascent, cx+2, cy+baseline)).Op())
		gtx.Execute(op.InvalidateCmd{})
	}
}

// measureLineMetrics returns the line height and baseline (distance from bottom
// to text baseline) for a single line of text at the theme's text size.
func measureLineMetrics(gtx C, th *material.Theme) (height, baseline int) {
	macro := op.Record(gtx.Ops)
	lbl := material.Label(th, th.TextSize, "0")
	lbl.MaxLines = 1
	probeGtx := gtx
	probeGtx.Constraints.Min = image.Point{}
	dims := lbl.Layout(probeGtx)
	macro.Stop()
	return dims.Size.Y, dims.Baseline
}

var lineRefRe = regexp.MustCompile(`#(\d+)`)

// findChangePoint returns the 0-indexed position where oldLines and newLines
// first differ.
func findChangePoint(oldLines, newLines []string) int {
	n := len(oldLines)
	if len(newLines) < n {
		n = len(newLines)
	}
	for i := 0; i < n; i++ {
		if oldLines[i] != newLines[i] {
			return i
		}
	}
	return n
}

// renumberLines shifts every #N reference with N > changePoint by delta so it
// keeps naming the same equation after lines are inserted or removed.
// It reports whether any reference moved.
func renumberLines(lines []string, changePoint, delta int) bool {
	changed := false
	for i, line := range lines {
		lines[i] = lineRefRe.ReplaceAllStringFunc(line, func(match string) string {
			n, _ := strconv.Atoi(match[1:])
			if n <= changePoint {
				return match
			}
			changed = true
			return fmt.Sprintf("#%d", max(n+delta, 1))
		})
	}
	return changed
}

// renumberLineRefs applies renumberLines to the editor, keeping the caret on
// the same line and column. Returns true if text was modified.
func renumberLineRefs(es *EditorState, changePoint, delta int) bool {
	lines := es.Lines()
	if !renumberLines(lines, changePoint, delta) {
		return false
	}

	caretLine, caretCol := es.Editor.CaretPos()
	es.Editor.SetText(strings.Join(lines, "\n"))
	offset := 0
	for i := 0; i < caretLine && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1 // +1 for newline
	}
	offset += caretCol
	es.Editor.SetCaret(offset, offset)
	return true
}
