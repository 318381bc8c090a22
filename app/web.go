//go:build js && wasm

package main

import (
	"syscall/js"

	"gioui.org/app"
)

// registerWebCallbacks exposes the notebook text to the hosting page so it
// can be shared through the URL.
func registerWebCallbacks(es *EditorState, w *app.Window) {
	js.Global().Set("getEditorText", js.FuncOf(func(this js.Value, args []js.Value) any {
		return es.Editor.Text()
	}))
	js.Global().Set("setEditorText", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			es.SetContent(args[0].String())
			w.Invalidate()
		}
		return nil
	}))

	// The page decodes ?text= before the module starts
	if initial := js.Global().Get("_initialText"); initial.Type() == js.TypeString && initial.String() != "" {
		es.SetContent(initial.String())
	}
}
