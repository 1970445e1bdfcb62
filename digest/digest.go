// Package digest provides a fixed-size SHA-1 digest value type with
// byte-wise ordering, plus the canonical hex formatting helpers.
//
// Digest is a plain 20-byte value: copying one copies the bytes, and
// the zero value is the all-zero digest. The package defines no wire
// format of its own; callers choose how a digest is presented, with
// Format and Parse covering the usual hex form.
package digest

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
)

// Size is the digest length in bytes (160 bits).
const Size = 20

// Digest is a SHA-1 digest.
type Digest [Size]byte

// Compute returns the digest of data.
func Compute(data []byte) Digest {
	return Digest(sha1.Sum(data))
}

// ComputeString returns the digest of the bytes of s.
func ComputeString(s string) Digest {
	return Compute([]byte(s))
}

// ComputeReader returns the digest of everything readable from r,
// streamed through the hash in chunks to keep memory use constant.
func ComputeReader(r io.Reader) (Digest, error) {
	hasher := sha1.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return Digest{}, fmt.Errorf("hashing: %w", err)
	}

	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d, nil
}

// Compare orders digests byte-wise: -1, 0, or 1 as d sorts before,
// equal to, or after other.
func (d Digest) Compare(other Digest) int {
	return bytes.Compare(d[:], other[:])
}

// Equal reports whether d and other hold the same bytes.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// Less reports whether d sorts before other.
func (d Digest) Less(other Digest) bool {
	return d.Compare(other) < 0
}

// At returns the byte at position i. It panics when i is out of
// range, like any array access.
func (d Digest) At(i int) byte {
	return d[i]
}

// Front returns the first byte.
func (d Digest) Front() byte {
	return d[0]
}

// Back returns the last byte.
func (d Digest) Back() byte {
	return d[Size-1]
}

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d[:])
	return out
}

// IsZero reports whether every byte is zero, the state of a cleared
// or zero-value digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Clear resets the digest to all zeroes.
func (d *Digest) Clear() {
	*d = Digest{}
}

// Swap exchanges the contents of d and other.
func (d *Digest) Swap(other *Digest) {
	*d, *other = *other, *d
}

// Format returns the lowercase hex encoding of d, the canonical
// presentation form.
func Format(d Digest) string {
	return hex.EncodeToString(d[:])
}

// Parse decodes a hex-encoded digest. It fails unless the input is
// exactly 40 hex digits.
func Parse(hexString string) (Digest, error) {
	var d Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return d, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != Size {
		return d, fmt.Errorf("digest is %d bytes, want %d", len(decoded), Size)
	}
	copy(d[:], decoded)
	return d, nil
}
