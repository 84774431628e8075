package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

func TestFormatSingleError(t *testing.T) {
	source := "x = 1;\ny = $;\nz = 3;"
	err := NewCompilerError(
		lexer.Position{Line: 2, Column: 5, Offset: 11},
		"illegal character: $",
		source,
		"script.pg",
	)

	out := err.Format(false)

	assert.Contains(t, out, "Error in script.pg:2:5")
	assert.Contains(t, out, "   2 | y = $;")
	assert.Contains(t, out, "illegal character: $")

	// The caret lines up under column 5 of the quoted source line,
	// offset by the "   2 | " gutter.
	lines := splitLines(out)
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat(" ", len("   2 | ")+4)+"^", lines[2])
}

func TestFormatWithoutFile(t *testing.T) {
	err := NewCompilerError(
		lexer.Position{Line: 1, Column: 1},
		"unexpected token",
		"oops",
		"",
	)

	out := err.Format(false)
	assert.Contains(t, out, "Error at line 1:1")
}

func TestFormatWithoutSource(t *testing.T) {
	err := NewCompilerError(
		lexer.Position{Line: 7, Column: 3},
		"boom",
		"",
		"f.pg",
	)

	out := err.Format(false)
	assert.Contains(t, out, "Error in f.pg:7:3")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "|")
}

func TestErrorImplementsError(t *testing.T) {
	var err error = NewCompilerError(lexer.Position{Line: 1, Column: 1}, "msg", "", "")
	assert.Contains(t, err.Error(), "msg")
}

func TestFormatErrors(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(lexer.Position{Line: 1, Column: 1}, "first", "a\nb", ""),
		NewCompilerError(lexer.Position{Line: 2, Column: 1}, "second", "a\nb", ""),
	}

	out := FormatErrors(errs, false)
	assert.Contains(t, out, "Compilation failed with 2 error(s)")
	assert.Contains(t, out, "[Error 1 of 2]")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "[Error 2 of 2]")
	assert.Contains(t, out, "second")

	assert.Equal(t, "", FormatErrors(nil, false))

	single := FormatErrors(errs[:1], false)
	assert.NotContains(t, single, "[Error 1")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
