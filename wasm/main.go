//go:build js && wasm

// Command wasm exposes the solver to a browser page: solve, count_tokens and
// get_ast_visual take a single line, evaluate takes a whole notebook.
package main

import (
	"strings"
	"syscall/js"

	"ratsolve/app/algebra"
)

var (
	evalState  = &algebra.EvalState{}
	editorText string
)

// stringFunc adapts a string -> T function to a JS callback taking one argument.
func stringFunc[T any](f func(string) T) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		input := ""
		if len(args) > 0 && args[0].Type() == js.TypeString {
			input = args[0].String()
		}
		return f(input)
	})
}

func main() {
	js.Global().Set("solve", stringFunc(algebra.Solve))
	js.Global().Set("count_tokens", stringFunc(algebra.CountTokens))
	js.Global().Set("get_ast_visual", stringFunc(algebra.Visualize))

	js.Global().Set("evaluate", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return nil
		}
		editorText = args[0].String()
		results := evalState.EvalAllIncremental(strings.Split(editorText, "\n"))

		arr := js.Global().Get("Array").New(len(results))
		for i, r := range results {
			obj := js.Global().Get("Object").New()
			obj.Set("text", r.Text)
			obj.Set("isErr", r.IsErr)
			obj.Set("solved", r.Solved)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	// Share links read and restore the notebook text
	js.Global().Set("getEditorText", js.FuncOf(func(this js.Value, args []js.Value) any {
		return editorText
	}))
	js.Global().Set("setEditorText", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		editorText = args[0].String()
		ta := js.Global().Get("document").Call("getElementById", "editor")
		if ta.Truthy() {
			ta.Set("value", editorText)
			ta.Call("dispatchEvent", js.Global().Get("Event").New("input"))
		}
		return nil
	}))

	js.Global().Set("_wasmReady", true)
	if onReady := js.Global().Get("_onWasmReady"); onReady.Type() == js.TypeFunction {
		onReady.Invoke()
	}

	select {}
}
