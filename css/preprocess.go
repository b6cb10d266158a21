package css

import "strings"

// Preprocess normalizes a raw CSS byte stream before tokenization.
//
// CSS Syntax Module Level 3 §3.3 Preprocessing the input stream: every
// instance of CR, FF, or CRLF is replaced by a single LF, and every NUL
// (U+0000) is replaced by U+FFFD (REPLACEMENT CHARACTER). The result is
// deterministic and stateless; its only lookahead is one byte, to fold
// CRLF into a single LF.
func Preprocess(input string) string {
	if !strings.ContainsAny(input, "\r\f\x00") {
		return input
	}

	var b strings.Builder
	b.Grow(len(input))

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch c {
		case '\r':
			b.WriteByte('\n')
			if i+1 < len(input) && input[i+1] == '\n' {
				i++
			}
		case '\f':
			b.WriteByte('\n')
		case 0:
			b.WriteRune('�')
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
