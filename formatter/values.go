package formatter

import (
	"bytes"

	"github.com/tvanholt/consolog/core"
)

// indentWidth is the number of spaces per nesting level
const indentWidth = 2

// pre-computed indentation to avoid byte-at-a-time writes for
// common depths
var spaces = []byte("                                ")

func writeIndent(buf *bytes.Buffer, n int) {
	for n > len(spaces) {
		buf.Write(spaces)
		n -= len(spaces)
	}
	buf.Write(spaces[:n])
}

// AppendValues renders set into buf as an indented block, one entry
// per line in insertion order. depth starts at 1 for a top-level
// payload. When bullet is true the first entry at this depth is
// prefixed with a dash in place of its last indentation space, which
// marks the start of one element inside a sequence.
//
// Each entry starts with a newline, so the block always begins on a
// fresh line after whatever buf already holds. Dispatch follows the
// value's kind:
//
//   - a sequence writes each element on its own line one level
//     deeper; elements that are themselves value sets recurse with a
//     bullet, everything else renders inline as text
//   - a nested value set recurses one level deeper without a bullet
//   - a scalar renders inline after the "key: " prefix
//
// A nil or empty set renders nothing. There is no depth cap: the
// closed Value variant is built by constructors, so depth is bounded
// by the structure the caller actually built.
func AppendValues(buf *bytes.Buffer, set core.ValueSet, depth int, bullet bool) {
	if set == nil {
		return
	}
	for i, pair := range set.Pairs() {
		buf.WriteByte('\n')
		if bullet && i == 0 {
			writeIndent(buf, depth*indentWidth-1)
			buf.WriteByte('-')
		} else {
			writeIndent(buf, depth*indentWidth)
		}
		buf.WriteString(pair.Key)
		buf.WriteString(": ")

		switch pair.Value.Kind {
		case core.SequenceKind:
			for _, elem := range pair.Value.Seq {
				if elem.Kind == core.NestedKind {
					AppendValues(buf, elem.Nested, depth+1, true)
				} else {
					buf.WriteByte('\n')
					writeIndent(buf, (depth+1)*indentWidth)
					buf.WriteString(elem.Text())
				}
			}
		case core.NestedKind:
			AppendValues(buf, pair.Value.Nested, depth+1, false)
		default:
			buf.WriteString(pair.Value.Scalar.String())
		}
	}
}
