// Package str provides a non-owning view over a NUL-terminated byte
// buffer.
//
// A Str borrows the caller's storage and never allocates or grows it.
// The view covers the bytes up to the first NUL, or the whole slice
// when no NUL is present. The view carries no lifetime information:
// it becomes invalid the moment the referenced storage is freed or
// mutated, and keeping it valid is entirely the caller's
// responsibility.
//
// All character-class predicates are ASCII-only, matching C's ctype
// semantics; multi-byte sequences make them return false byte by
// byte, not per rune.
package str

import (
	"bytes"
	"errors"
	"strings"
)

// ErrOutOfRange reports an indexed access past the end of the view.
var ErrOutOfRange = errors.New("str: position out of range")

// Str is a borrowed view of a NUL-terminated byte buffer. The zero
// value is the empty view.
type Str struct {
	data []byte
}

// New returns a view over data. The buffer is borrowed, not copied.
func New(data []byte) Str {
	return Str{data: data}
}

// Empty reports whether the view holds no bytes: either no buffer or
// a buffer whose first byte is NUL.
func (s Str) Empty() bool {
	return len(s.data) == 0 || s.data[0] == 0
}

// Len returns the byte length of the view, scanning for the
// terminating NUL on every call.
func (s Str) Len() int {
	if i := bytes.IndexByte(s.data, 0); i >= 0 {
		return i
	}
	return len(s.data)
}

// Clear detaches the view from its buffer. The buffer itself is
// untouched.
func (s *Str) Clear() {
	s.data = nil
}

// Bytes returns the viewed bytes, NUL excluded. The result aliases
// the borrowed buffer.
func (s Str) Bytes() []byte {
	return s.data[:s.Len()]
}

// String returns a copy of the viewed bytes as a Go string.
func (s Str) String() string {
	return string(s.Bytes())
}

// At returns the byte at position i, or ErrOutOfRange when i is past
// the end of the view.
func (s Str) At(i int) (byte, error) {
	if i < 0 || i >= s.Len() {
		return 0, ErrOutOfRange
	}
	return s.data[i], nil
}

// Byte returns the byte at position i without bounds checking against
// the view length.
func (s Str) Byte(i int) byte {
	return s.data[i]
}

// Front returns the first byte of the view.
func (s Str) Front() byte {
	return s.data[0]
}

// Back returns the last byte of the view.
func (s Str) Back() byte {
	return s.data[s.Len()-1]
}

// PopBack erases the last byte by writing a NUL into the borrowed
// buffer. Every other view of the same buffer sees the change.
func (s Str) PopBack() {
	s.data[s.Len()-1] = 0
}

// Compare orders s against other byte-wise.
func (s Str) Compare(other Str) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// CompareString orders s against a Go string byte-wise.
func (s Str) CompareString(other string) int {
	return strings.Compare(s.String(), other)
}

// Equal reports whether both views hold the same bytes.
func (s Str) Equal(other Str) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// EqualString reports whether the view holds the same bytes as other.
func (s Str) EqualString(other string) bool {
	return string(s.Bytes()) == other
}

// IndexByte returns the position of the first occurrence of c, or -1.
func (s Str) IndexByte(c byte) int {
	return bytes.IndexByte(s.Bytes(), c)
}

// Index returns the position of the first occurrence of sub, or -1.
func (s Str) Index(sub string) int {
	return bytes.Index(s.Bytes(), []byte(sub))
}

// LastIndexByte returns the position of the last occurrence of c, or
// -1.
func (s Str) LastIndexByte(c byte) int {
	return bytes.LastIndexByte(s.Bytes(), c)
}

// Substr returns the view starting at position pos. Past the end it
// returns the empty view.
func (s Str) Substr(pos int) Str {
	if pos < 0 || pos >= s.Len() {
		return Str{}
	}
	return Str{data: s.data[pos:]}
}

// SubstrFrom returns the view starting at the first occurrence of c,
// delimiter included, or the empty view when c does not occur.
func (s Str) SubstrFrom(c byte) Str {
	if i := s.IndexByte(c); i >= 0 {
		return Str{data: s.data[i:]}
	}
	return Str{}
}

// SubstrAfter returns the view starting just past the first
// occurrence of c, or the empty view when c does not occur.
func (s Str) SubstrAfter(c byte) Str {
	if i := s.IndexByte(c); i >= 0 {
		return Str{data: s.data[i+1:]}
	}
	return Str{}
}

// HasPrefix reports whether the view starts with prefix.
func (s Str) HasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.Bytes(), []byte(prefix))
}

// HasSuffix reports whether the view ends with suffix.
func (s Str) HasSuffix(suffix string) bool {
	return bytes.HasSuffix(s.Bytes(), []byte(suffix))
}

// Is reports whether predicate holds for every byte of the view. An
// empty view satisfies every predicate.
func (s Str) Is(predicate func(byte) bool) bool {
	for _, c := range s.Bytes() {
		if !predicate(c) {
			return false
		}
	}
	return true
}

// IsAlnum reports whether every byte is an ASCII letter or digit.
func (s Str) IsAlnum() bool { return s.Is(isAlnum) }

// IsAlpha reports whether every byte is an ASCII letter.
func (s Str) IsAlpha() bool { return s.Is(isAlpha) }

// IsASCII reports whether every byte is below 0x80.
func (s Str) IsASCII() bool { return s.Is(isASCII) }

// IsBlank reports whether every byte is a space or tab.
func (s Str) IsBlank() bool { return s.Is(isBlank) }

// IsCntrl reports whether every byte is an ASCII control character.
func (s Str) IsCntrl() bool { return s.Is(isCntrl) }

// IsDigit reports whether every byte is a decimal digit.
func (s Str) IsDigit() bool { return s.Is(isDigit) }

// IsGraph reports whether every byte is a visible ASCII character.
func (s Str) IsGraph() bool { return s.Is(isGraph) }

// IsLower reports whether every byte is a lowercase ASCII letter.
func (s Str) IsLower() bool { return s.Is(isLower) }

// IsPrint reports whether every byte is a printable ASCII character,
// space included.
func (s Str) IsPrint() bool { return s.Is(isPrint) }

// IsPunct reports whether every byte is ASCII punctuation.
func (s Str) IsPunct() bool { return s.Is(isPunct) }

// IsSpace reports whether every byte is ASCII whitespace.
func (s Str) IsSpace() bool { return s.Is(isSpace) }

// IsUpper reports whether every byte is an uppercase ASCII letter.
func (s Str) IsUpper() bool { return s.Is(isUpper) }

// IsXdigit reports whether every byte is a hexadecimal digit.
func (s Str) IsXdigit() bool { return s.Is(isXdigit) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isAlpha(c byte) bool { return isLower(c) || isUpper(c) }
func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
func isASCII(c byte) bool { return c < 0x80 }
func isBlank(c byte) bool { return c == ' ' || c == '\t' }
func isCntrl(c byte) bool { return c < 0x20 || c == 0x7F }
func isGraph(c byte) bool { return c > 0x20 && c < 0x7F }
func isPrint(c byte) bool { return c >= 0x20 && c < 0x7F }
func isPunct(c byte) bool { return isGraph(c) && !isAlnum(c) }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isXdigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
