// Package diag renders parse errors against the pattern they came from.
package diag

import (
	"errors"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"regexparse/regexlib"
)

// Caret returns two lines: the pattern and a '^' under the rune the error
// points at. Control characters are shown as '·' so the columns hold, and
// wide characters are measured with their terminal width. It returns ""
// when err carries no position.
func Caret(pattern string, err error) string {
	var pe *regexlib.Error
	if !errors.As(err, &pe) || !pe.HasPos() {
		return ""
	}

	var line strings.Builder
	col := 0
	i := 0
	for _, r := range pattern {
		w := runewidth.RuneWidth(r)
		if unicode.IsControl(r) {
			r, w = '·', 1
		}
		line.WriteRune(r)
		if i < pe.Pos {
			col += w
		}
		i++
	}
	return line.String() + "\n" + strings.Repeat(" ", col) + "^"
}

// Describe is the error message, followed by the caret lines indented by
// two spaces when caret is set and the error has a position.
func Describe(pattern string, err error, caret bool) string {
	msg := err.Error()
	if !caret {
		return msg
	}
	c := Caret(pattern, err)
	if c == "" {
		return msg
	}
	return msg + "\n  " + strings.ReplaceAll(c, "\n", "\n  ")
}
