// Package jsonwriter implements a streaming JSON text serializer.
//
// A Writer emits tokens one call at a time to a borrowed io.Writer
// sink and tracks, per nesting level, whether the next token needs a
// preceding separator. It guarantees structural balance (every open
// container is closed by a matching, correctly-kinded close) and
// correct separator placement; it does not validate key/value
// alternation inside objects, nor does it auto-close open containers.
//
// A Writer is not safe for concurrent use.
package jsonwriter

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

var (
	// ErrNonFiniteNumber reports an attempt to write an infinite or
	// NaN value. JSON has no literal for either.
	ErrNonFiniteNumber = errors.New("jsonwriter: non-finite number cannot be serialized")

	// ErrUnderflow reports a close operation with no open container.
	ErrUnderflow = errors.New("jsonwriter: no open container to close")

	// ErrMismatchedClose reports a close operation whose kind does not
	// match the innermost open container.
	ErrMismatchedClose = errors.New("jsonwriter: close does not match innermost open container")

	// ErrDepthOverflow reports nesting beyond MaxDepth.
	ErrDepthOverflow = errors.New("jsonwriter: maximum nesting depth exceeded")
)

// MaxDepth is the maximum number of simultaneously open containers.
const MaxDepth = 1024

type kind uint8

const (
	kindObject kind = iota
	kindArray
)

// level records the state of one open container: its kind and how
// many tokens have been written directly inside it. Inside an object
// the count's parity distinguishes keys from values, which is what
// selects ':' versus ',' as the next separator.
type level struct {
	kind  kind
	count int
}

var (
	tokenNull  = []byte("null")
	tokenTrue  = []byte("true")
	tokenFalse = []byte("false")
)

// Writer serializes a stream of JSON tokens to a sink.
//
// The sink is borrowed, never closed, and must outlive the Writer. If
// the sink buffers, call Flush when the document is complete.
type Writer struct {
	out    io.Writer
	levels []level

	// err holds the first structural error. Once set, every
	// subsequent operation refuses with it: the level stack is no
	// longer trustworthy.
	err error

	escapeSolidus bool

	// scratch backs number formatting; one holds single structural
	// bytes. Separate so a pending number token is never clobbered by
	// the separator written ahead of it.
	scratch [40]byte
	one     [1]byte
}

// NewWriter returns a Writer emitting to out. Solidus escaping is on
// by default; see SetEscapeSolidus.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, escapeSolidus: true}
}

// SetEscapeSolidus controls whether '/' is written as `\/`. Escaping
// it is not required by JSON but keeps the output safe to embed in
// HTML <script> contexts, so it defaults to on.
func (w *Writer) SetEscapeSolidus(escape bool) {
	w.escapeSolidus = escape
}

// Depth returns the number of currently open containers. A complete
// document ends at depth 0.
func (w *Writer) Depth() int {
	return len(w.levels)
}

// BeginObject opens an object container. Subsequent writes alternate
// member keys and values; the Writer trusts the caller to keep the
// alternation and only places ':' and ',' from token position.
func (w *Writer) BeginObject() error {
	return w.begin(kindObject, '{')
}

// EndObject closes the innermost container, which must be an object.
func (w *Writer) EndObject() error {
	return w.end(kindObject, '}')
}

// BeginArray opens an array container of positional elements.
func (w *Writer) BeginArray() error {
	return w.begin(kindArray, '[')
}

// EndArray closes the innermost container, which must be an array.
func (w *Writer) EndArray() error {
	return w.end(kindArray, ']')
}

// WriteNull emits the null literal.
func (w *Writer) WriteNull() error {
	return w.writeToken(tokenNull)
}

// WriteBoolean emits true or false.
func (w *Writer) WriteBoolean(value bool) error {
	if value {
		return w.writeToken(tokenTrue)
	}
	return w.writeToken(tokenFalse)
}

// WriteInteger emits the exact decimal representation of value.
func (w *Writer) WriteInteger(value int64) error {
	return w.writeToken(strconv.AppendInt(w.scratch[:0], value, 10))
}

// WriteUnsigned emits the exact decimal representation of value.
func (w *Writer) WriteUnsigned(value uint64) error {
	return w.writeToken(strconv.AppendUint(w.scratch[:0], value, 10))
}

// WriteNumber emits the shortest decimal representation of value that
// parses back to the same float64. Infinities and NaN fail with
// ErrNonFiniteNumber before anything reaches the sink.
func (w *Writer) WriteNumber(value float64) error {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return ErrNonFiniteNumber
	}
	return w.writeToken(strconv.AppendFloat(w.scratch[:0], value, 'g', -1, 64))
}

// WriteString emits a quoted, escaped string token.
func (w *Writer) WriteString(value string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.lead(); err != nil {
		return err
	}
	if err := w.writeQuoted(value); err != nil {
		return err
	}
	w.markEmitted()
	return nil
}

// WriteStringBytes emits a quoted, escaped string token, or the null
// literal when value is nil. An empty non-nil slice is the empty
// string.
func (w *Writer) WriteStringBytes(value []byte) error {
	if value == nil {
		return w.WriteNull()
	}
	return w.WriteString(string(value))
}

// Flush forces buffered output out of the sink, if the sink buffers
// (anything with a Flush() error method, such as *bufio.Writer). A
// flush failure is surfaced, never swallowed.
func (w *Writer) Flush() error {
	type flusher interface{ Flush() error }
	if f, ok := w.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("could not flush sink: %w", err)
		}
	}
	return nil
}

func (w *Writer) begin(k kind, open byte) error {
	if w.err != nil {
		return w.err
	}
	if len(w.levels) >= MaxDepth {
		w.err = ErrDepthOverflow
		return w.err
	}
	if err := w.lead(); err != nil {
		return err
	}
	if err := w.writeByte(open); err != nil {
		return err
	}
	// The separator bookkeeping belongs to the enclosing level, not
	// the container just opened.
	w.markEmitted()
	w.levels = append(w.levels, level{kind: k})
	return nil
}

func (w *Writer) end(k kind, closing byte) error {
	if w.err != nil {
		return w.err
	}
	if len(w.levels) == 0 {
		w.err = ErrUnderflow
		return w.err
	}
	if w.levels[len(w.levels)-1].kind != k {
		w.err = ErrMismatchedClose
		return w.err
	}
	if err := w.writeIndent(); err != nil {
		return err
	}
	if err := w.writeByte(closing); err != nil {
		return err
	}
	w.levels = w.levels[:len(w.levels)-1]
	return nil
}

// writeToken emits one complete scalar token, separator included.
func (w *Writer) writeToken(token []byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.lead(); err != nil {
		return err
	}
	if _, err := w.out.Write(token); err != nil {
		return fmt.Errorf("could not write token: %w", err)
	}
	w.markEmitted()
	return nil
}

// lead performs the pre-token protocol steps: the separator owed at
// the current level, then the whitespace hook.
func (w *Writer) lead() error {
	if sep := w.separator(); sep != 0 {
		if err := w.writeByte(sep); err != nil {
			return err
		}
	}
	return w.writeIndent()
}

// separator returns the byte owed before the next token at the
// current level, or 0 at the start of a container and at the root.
func (w *Writer) separator() byte {
	if len(w.levels) == 0 {
		return 0
	}
	lvl := &w.levels[len(w.levels)-1]
	if lvl.count == 0 {
		return 0
	}
	if lvl.kind == kindObject && lvl.count%2 == 1 {
		return ':'
	}
	return ','
}

// markEmitted records one more token written at the current level.
// Called only after the token body reached the sink in full, so a
// failed write never advances the separator state.
func (w *Writer) markEmitted() {
	if len(w.levels) > 0 {
		w.levels[len(w.levels)-1].count++
	}
}

// writeIndent is the pretty-printing hook in the per-token protocol.
// It emits nothing; indentation support slots in here without
// touching the separator logic.
func (w *Writer) writeIndent() error {
	return nil
}

func (w *Writer) writeByte(c byte) error {
	w.one[0] = c
	if _, err := w.out.Write(w.one[:]); err != nil {
		return fmt.Errorf("could not write %q: %w", c, err)
	}
	return nil
}
