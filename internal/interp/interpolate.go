package interp

import (
	"strings"

	"github.com/Ant-Tonmay/penguine/internal/lexer"
	"github.com/Ant-Tonmay/penguine/internal/parser"
)

// renderForPrint produces the canonical print rendering of a value.
// Strings go through interpolation in the given environment; all other
// values use their String form. The second return value is non-nil when
// an interpolated expression failed at runtime.
func (i *Interpreter) renderForPrint(val Value, env *Environment) (string, Value) {
	s, ok := val.(*StringValue)
	if !ok {
		return val.String(), nil
	}
	return i.interpolate(s.Value, env)
}

// interpolate scans a string for {...} segments. Each segment's inner
// text is re-entered through the lexer and parser as an expression,
// evaluated in the current environment, and replaced by its rendering.
// An unbalanced '{' with no closing '}' is emitted verbatim.
func (i *Interpreter) interpolate(s string, env *Environment) (string, Value) {
	if !strings.ContainsRune(s, '{') {
		return s, nil
	}

	var out strings.Builder
	for idx := 0; idx < len(s); {
		ch := s[idx]
		if ch != '{' {
			out.WriteByte(ch)
			idx++
			continue
		}

		end := strings.IndexByte(s[idx+1:], '}')
		if end < 0 {
			out.WriteString(s[idx:])
			break
		}

		inner := s[idx+1 : idx+1+end]
		rendered, errVal := i.evalInterpolationSegment(inner, env)
		if errVal != nil {
			return "", errVal
		}
		out.WriteString(rendered)
		idx += end + 2
	}

	return out.String(), nil
}

// evalInterpolationSegment parses and evaluates one {...} segment.
// Segments that do not parse as a complete expression are kept verbatim
// (braces included); runtime failures inside a segment propagate as
// runtime errors.
func (i *Interpreter) evalInterpolationSegment(src string, env *Environment) (string, Value) {
	l := lexer.New(src)
	p := parser.New(l)

	expr := p.ParseExpression()
	if expr == nil || len(p.Errors()) > 0 || len(l.Errors()) > 0 {
		return "{" + src + "}", nil
	}

	val := i.evalExpression(expr, env)
	if isError(val) {
		return "", val
	}

	return val.String(), nil
}
