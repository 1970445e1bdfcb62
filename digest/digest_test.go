package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known-answer vectors from the SHA-1 specification's examples.
func TestCompute(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"84983e441c3bd26ebaae4aa1f95129e5e54670f1",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			d := ComputeString(testCase.input)
			require.Equal(t, testCase.expected, Format(d))

			fromReader, err := ComputeReader(strings.NewReader(testCase.input))
			require.NoError(t, err)
			require.True(t, d.Equal(fromReader))
		})
	}
}

func TestOrdering(t *testing.T) {
	a := ComputeString("a")
	b := ComputeString("b")

	require.Equal(t, 0, a.Compare(a))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.Equal(t, -a.Compare(b), b.Compare(a))
	require.Equal(t, a.Compare(b) < 0, a.Less(b))
	require.Equal(t, b.Compare(a) < 0, b.Less(a))
}

func TestAccessors(t *testing.T) {
	d := ComputeString("abc")

	require.Equal(t, d[0], d.Front())
	require.Equal(t, d[Size-1], d.Back())
	require.Equal(t, d[7], d.At(7))
	require.Len(t, d.Bytes(), Size)

	// Bytes returns a copy, not a view.
	mutated := d.Bytes()
	mutated[0] ^= 0xFF
	require.Equal(t, d[0], d.Front())
}

func TestClearAndIsZero(t *testing.T) {
	var zero Digest
	require.True(t, zero.IsZero())

	d := ComputeString("abc")
	require.False(t, d.IsZero())

	d.Clear()
	require.True(t, d.IsZero())
	require.True(t, d.Equal(zero))
}

func TestSwap(t *testing.T) {
	a := ComputeString("a")
	b := ComputeString("b")
	wantA, wantB := a, b

	a.Swap(&b)
	require.True(t, a.Equal(wantB))
	require.True(t, b.Equal(wantA))
}

func TestParse(t *testing.T) {
	d := ComputeString("abc")

	parsed, err := Parse(Format(d))
	require.NoError(t, err)
	require.True(t, parsed.Equal(d))

	_, err = Parse("not hex")
	require.Error(t, err)

	_, err = Parse("abcd")
	require.Error(t, err)
}
