package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func rewriteString(t *testing.T, rules *Rules, input string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	err := NewRewriter(buf, dec, rules).Run()
	require.NoError(t, err)

	return buf.String()
}

func TestRewritePassthrough(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"scalar", `42`, `42`},
		{"compacts whitespace", `{ "a" : 1 , "b" : 2 }`, `{"a":1,"b":2}`},
		{"array", `[1, 2, 3]`, `[1,2,3]`},
		{"nested", `{"a":{"b":[true,false,null]}}`, `{"a":{"b":[true,false,null]}}`},
		{"empty containers", `[{}, [], {}]`, `[{},[],{}]`},
		{"escapes solidus", `{"path":"a/b"}`, `{"path":"a\/b"}`},
		{"keeps uint64 exact", `{"n":18446744073709551615}`, `{"n":18446744073709551615}`},
		{"keeps int64 exact", `{"n":-9223372036854775808}`, `{"n":-9223372036854775808}`},
		{"float", `[1.5]`, `[1.5]`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, rewriteString(t, nil, testCase.input))
		})
	}
}

func TestRewriteRenameAndDrop(t *testing.T) {
	rules, err := RulesFromString(`
rename-keys:
  a: alpha
drop-keys:
  - secret
`)
	require.NoError(t, err, "parse rules")

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"renames keys at any depth",
			`{"a":1,"nested":{"a":2}}`,
			`{"alpha":1,"nested":{"alpha":2}}`,
		},
		{
			"values are not renamed",
			`{"a":"a","list":["a"]}`,
			`{"alpha":"a","list":["a"]}`,
		},
		{
			"drops scalar members",
			`{"secret":42,"kept":1}`,
			`{"kept":1}`,
		},
		{
			"drops whole subtrees",
			`{"kept":1,"secret":{"a":[1,{"b":2}]},"also":2}`,
			`{"kept":1,"also":2}`,
		},
		{
			"drop applies to keys only",
			`{"kept":"secret"}`,
			`{"kept":"secret"}`,
		},
		{
			"dropped first member leaves no stray comma",
			`{"secret":1,"kept":2}`,
			`{"kept":2}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, rewriteString(t, rules, testCase.input))
		})
	}
}

type testStruct struct {
	Nested struct {
		A safeString
		B float64
		C bool
		D *bool
	}

	Array       []safeString
	StructArray []struct {
		X safeString
		Y float64

		Contents struct {
			Name safeString
		}
	}
}

type safeString string

func (s safeString) Generate(rand *rand.Rand, size int) reflect.Value {
	buf := make([]byte, size)
	_, err := rand.Read(buf)
	if err != nil {
		panic(err)
	}
	return reflect.ValueOf(safeString(fmt.Sprintf("%x", buf)))
}

func TestRewriterRoundTrip(t *testing.T) {
	plain := func(ts testStruct) testStruct {
		return ts
	}
	writeAndParse := func(ts testStruct) testStruct {
		data, err := json.Marshal(ts)
		require.NoError(t, err, "marshal")

		rewritten := rewriteString(t, nil, string(data))

		var res testStruct
		err = json.Unmarshal([]byte(rewritten), &res)
		if synErr, ok := err.(*json.SyntaxError); err != nil && ok {
			err = fmt.Errorf("syntax error at offset %d: %w << %s >>", synErr.Offset, err, rewritten)
		}
		require.NoError(t, err, "unmarshal")

		require.Equal(t, ts, res)

		return res
	}

	err := quick.CheckEqual(plain, writeAndParse, nil)
	require.NoError(t, err)
}
