package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dryproject/librfc/jsonwriter"
)

// Rewriter pumps a decoded JSON token stream through a
// jsonwriter.Writer, applying key renames and drops from a rule set
// on the way. Separator placement is the writer's business; the
// Rewriter only tracks enough container context to know when a string
// token is an object key.
type Rewriter struct {
	w     *jsonwriter.Writer
	dec   *json.Decoder
	rules *Rules

	stack []frame
}

// frame mirrors one open container. In an object, an even count means
// the next token is a key.
type frame struct {
	object bool
	count  int
}

func NewRewriter(out io.Writer, dec *json.Decoder, rules *Rules) *Rewriter {
	if rules == nil {
		rules = &Rules{}
	}
	return &Rewriter{
		w:     jsonwriter.NewWriter(out),
		dec:   dec,
		rules: rules,
	}
}

// Run copies the whole token stream, then flushes the sink.
func (r *Rewriter) Run() error {
	for {
		token, err := r.dec.Token()
		if err == io.EOF {
			return r.w.Flush()
		}
		if err != nil {
			return fmt.Errorf("could not decode input: %w", err)
		}

		err = r.write(token)
		if err != nil {
			return fmt.Errorf("could not write: %w", err)
		}
	}
}

func (r *Rewriter) write(token json.Token) error {
	switch tok := token.(type) {
	case json.Delim:
		return r.writeDelim(tok)
	case string:
		if r.atKey() {
			if _, ok := r.rules.drop[tok]; ok {
				// The key and its value count as emitted for parity,
				// but neither reaches the writer.
				r.stack[len(r.stack)-1].count += 2
				return r.skipValue()
			}
			if replacement, ok := r.rules.RenameKeys[tok]; ok {
				tok = replacement
			}
		}
		if err := r.w.WriteString(tok); err != nil {
			return err
		}
	case json.Number:
		if err := r.writeNumber(tok); err != nil {
			return err
		}
	case float64:
		// Only seen when the decoder runs without UseNumber.
		if err := r.w.WriteNumber(tok); err != nil {
			return err
		}
	case bool:
		if err := r.w.WriteBoolean(tok); err != nil {
			return err
		}
	case nil:
		if err := r.w.WriteNull(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unhandled token %#v of type %T", token, token)
	}

	r.mark()
	return nil
}

func (r *Rewriter) writeDelim(delim json.Delim) error {
	switch delim {
	case '{':
		if err := r.w.BeginObject(); err != nil {
			return err
		}
		r.mark()
		r.stack = append(r.stack, frame{object: true})
	case '[':
		if err := r.w.BeginArray(); err != nil {
			return err
		}
		r.mark()
		r.stack = append(r.stack, frame{})
	case '}':
		if err := r.w.EndObject(); err != nil {
			return err
		}
		r.stack = r.stack[:len(r.stack)-1]
	case ']':
		if err := r.w.EndArray(); err != nil {
			return err
		}
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// writeNumber keeps integers exact: int64 first, then uint64 for the
// large positive tail, float64 only as the last resort.
func (r *Rewriter) writeNumber(number json.Number) error {
	if i, err := number.Int64(); err == nil {
		return r.w.WriteInteger(i)
	}
	if u, err := strconv.ParseUint(number.String(), 10, 64); err == nil {
		return r.w.WriteUnsigned(u)
	}
	f, err := number.Float64()
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", number, err)
	}
	return r.w.WriteNumber(f)
}

func (r *Rewriter) atKey() bool {
	if len(r.stack) == 0 {
		return false
	}
	top := r.stack[len(r.stack)-1]
	return top.object && top.count%2 == 0
}

func (r *Rewriter) mark() {
	if len(r.stack) > 0 {
		r.stack[len(r.stack)-1].count++
	}
}

// skipValue consumes the value following a dropped key, containers
// included, without emitting anything.
func (r *Rewriter) skipValue() error {
	depth := 0
	for {
		token, err := r.dec.Token()
		if err != nil {
			return fmt.Errorf("could not skip dropped value: %w", err)
		}

		if delim, ok := token.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}
