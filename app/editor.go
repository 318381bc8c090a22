package main

import (
	"os"
	"path/filepath"
	"strings"

	"gioui.org/widget"
)

const appName = "ratsolve"

// EditorState holds the notebook text and the file it was loaded from.
type EditorState struct {
	Editor   widget.Editor
	FilePath string
	Dirty    bool
}

// NewEditorState creates a multi-line editor.
func NewEditorState() *EditorState {
	es := &EditorState{}
	es.Editor.SingleLine = false
	es.Editor.Submit = false
	return es
}

// Lines returns the text buffer as a slice of lines. An empty buffer is one
// empty line.
func (es *EditorState) Lines() []string {
	return splitLines(es.Editor.Text())
}

func splitLines(t string) []string {
	if t == "" {
		return []string{""}
	}
	return strings.Split(t, "\n")
}

// LineCount returns the number of lines in the buffer.
func (es *EditorState) LineCount() int {
	return len(es.Lines())
}

// SetContent replaces the buffer with text, normalizing line endings.
func (es *EditorState) SetContent(text string) {
	es.Editor.SetText(normalizeNewlines(text))
	es.Dirty = false
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// LoadFile reads a notebook from path.
func (es *EditorState) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	es.SetContent(string(data))
	es.FilePath = path
	return nil
}

// SaveFile writes the buffer to path.
func (es *EditorState) SaveFile(path string) error {
	if err := os.WriteFile(path, []byte(es.Editor.Text()), 0644); err != nil {
		return err
	}
	es.FilePath = path
	es.Dirty = false
	return nil
}

// Title returns the window title: file name, a leading "* " when unsaved.
func (es *EditorState) Title() string {
	name := "untitled"
	if es.FilePath != "" {
		name = filepath.Base(es.FilePath)
	}
	if es.Dirty {
		name = "* " + name
	}
	return name + " - " + appName
}
