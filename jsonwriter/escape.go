package jsonwriter

import (
	"fmt"
	"io"
)

// escapeTab maps each byte to its escape sequence, or "" when the
// byte passes through unchanged. Bytes above 0x7F are part of UTF-8
// sequences and pass through byte-for-byte without validation. The
// solidus is handled separately since its escaping is configurable.
var escapeTab [256]string

func init() {
	for c := 0; c <= 0x1F; c++ {
		escapeTab[c] = fmt.Sprintf(`\u%04X`, c)
	}
	escapeTab['"'] = `\"`
	escapeTab['\\'] = `\\`
	escapeTab['\b'] = `\b`
	escapeTab['\f'] = `\f`
	escapeTab['\n'] = `\n`
	escapeTab['\r'] = `\r`
	escapeTab['\t'] = `\t`
}

// writeQuoted writes the complete string token: opening quote,
// escaped payload, closing quote. Unescaped runs are flushed in
// batches rather than byte by byte.
func (w *Writer) writeQuoted(s string) error {
	if err := w.writeByte('"'); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		esc := escapeTab[c]
		if esc == "" {
			if c != '/' || !w.escapeSolidus {
				continue
			}
			esc = `\/`
		}
		if start < i {
			if _, err := io.WriteString(w.out, s[start:i]); err != nil {
				return fmt.Errorf("could not write string token: %w", err)
			}
		}
		if _, err := io.WriteString(w.out, esc); err != nil {
			return fmt.Errorf("could not write escape sequence: %w", err)
		}
		start = i + 1
	}
	if start < len(s) {
		if _, err := io.WriteString(w.out, s[start:]); err != nil {
			return fmt.Errorf("could not write string token: %w", err)
		}
	}

	return w.writeByte('"')
}
