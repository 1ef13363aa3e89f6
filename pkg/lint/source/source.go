// Package source holds the in-memory representation of a Solidity source
// file as seen by the style checker. Files are plain text plus a derived
// line table; the checker never touches the filesystem itself.
package source

import (
	"os"
	"strings"
)

// File is a source file under analysis: a path for reporting plus the
// full text, pre-split into lines. Lines are 1-indexed in diagnostics.
type File struct {
	Path string
	Text string

	lines []string
}

// New creates a File from a path and its full text content.
func New(path, text string) *File {
	return &File{
		Path:  path,
		Text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// Read loads a file from disk. This is the only I/O in the package and
// is intended for callers at the CLI boundary; the analyzer itself
// operates on already-loaded Files.
func Read(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, string(content)), nil
}

// Lines returns the ordered lines of the file.
func (f *File) Lines() []string {
	return f.lines
}

// Line returns the 1-indexed line, or an empty string if out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	return f.lines[n-1]
}

// LineAt converts a byte offset into Text to a 1-indexed line number by
// counting the newlines before the offset. Offsets past the end of the
// text clamp to the last line.
func (f *File) LineAt(offset int) int {
	if offset < 0 {
		return 1
	}
	if offset > len(f.Text) {
		offset = len(f.Text)
	}
	return 1 + strings.Count(f.Text[:offset], "\n")
}
