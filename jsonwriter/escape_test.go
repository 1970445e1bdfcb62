package jsonwriter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscaping(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"quotation mark", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"solidus", "a/b", `"a\/b"`},
		{"backspace", "a\bb", `"a\bb"`},
		{"form feed", "a\fb", `"a\fb"`},
		{"line feed", "a\nb", `"a\nb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"bell", "a\x07b", `"a\u0007b"`},
		{"nul", "a\x00b", `"a\u0000b"`},
		{"unit separator", "\x1f", `"\u001F"`},
		{"control run", "a\x07b\x00c\x1fd", `"a\u0007b\u0000c\u001Fd"`},
		{"utf-8 passthrough", "héllo – ☺", `"héllo – ☺"`},
		{"high byte passthrough", "\x80\xff", "\"\x80\xff\""},
		{"adjacent escapes", "\n\n", `"\n\n"`},
		{"plain", "plain", `"plain"`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			w := NewWriter(buf)

			require.NoError(t, w.WriteString(testCase.input))
			require.Equal(t, testCase.expected, buf.String())
		})
	}
}

func TestEscapingSolidusConfigurable(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.SetEscapeSolidus(false)

	require.NoError(t, w.WriteString("a/b"))
	require.Equal(t, `"a/b"`, buf.String())
}

// The escaped output must stay readable by a conforming parser.
func TestEscapedStringsParseBack(t *testing.T) {
	inputs := []string{
		"controls: \x00\x01\x1f\x7f",
		`mixed "quotes" and \slashes\ and /solidi/`,
		"newline\nand tab\tand bell\x07",
		"héllo – ☺",
		"",
	}

	for _, input := range inputs {
		buf := new(bytes.Buffer)
		w := NewWriter(buf)
		require.NoError(t, w.WriteString(input))

		var parsed string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
		require.Equal(t, input, parsed)
	}
}
