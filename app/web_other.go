//go:build !(js && wasm)

package main

import "gioui.org/app"

// registerWebCallbacks is only meaningful in the browser build.
func registerWebCallbacks(*EditorState, *app.Window) {}
