package benc

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxDepth is the container nesting limit applied when
// DecodeOptions.MaxDepth is zero or negative. Bounding recursion keeps
// adversarially nested input from exhausting the call stack.
const DefaultMaxDepth = 1000

// DecodeOptions configures the decoder.
type DecodeOptions struct {
	// MaxDepth limits container nesting. Values <= 0 select
	// DefaultMaxDepth.
	MaxDepth int
}

// Decode parses a complete bencode value from input.
//
// The decoder walks the input exactly once, dispatching on a single byte
// of lookahead, and fails fast: the first malformed condition anywhere in
// the tree aborts the whole decode with a *DecodeError.
//
// Dicts are assembled by folding the flat key/value element sequence from
// the end, so when a key occurs twice the pair that appeared first on the
// wire is the one that survives.
func Decode(input string) (*BValue, error) {
	return DecodeWithOptions(input, DecodeOptions{})
}

// DecodeWithOptions parses a complete bencode value with explicit options.
func DecodeWithOptions(input string, opts DecodeOptions) (*BValue, error) {
	// No structurally valid encoding is shorter than "0:" or "le".
	if len(input) < 2 {
		return nil, &DecodeError{
			Kind:   InputTooShort,
			Detail: fmt.Sprintf("%d byte(s)", len(input)),
		}
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	d := &decoder{cur: NewCursor(input), maxDepth: maxDepth}
	return d.decodeValue(0)
}

// decoder holds the single cursor for one decode pass. Exactly one
// in-progress call advances it at any instant.
type decoder struct {
	cur      *Cursor
	maxDepth int
}

// decodeValue consumes one byte and dispatches on it. Container routines
// recurse back here for each element.
func (d *decoder) decodeValue(depth int) (*BValue, error) {
	if depth >= d.maxDepth {
		return nil, d.fail(NestingTooDeep, fmt.Sprintf("more than %d nested containers", d.maxDepth))
	}

	ch, ok := d.cur.Next()
	if !ok {
		return nil, d.fail(UnexpectedToken, "end of input where a value was expected")
	}

	switch {
	case ch == 'd':
		return d.decodeDict(depth)
	case ch == 'i':
		return d.decodeInteger()
	case ch == 'l':
		return d.decodeList(depth)
	case ch >= '0' && ch <= '9':
		return d.decodeString(ch)
	default:
		return nil, d.fail(UnexpectedToken, fmt.Sprintf("%q starts no value", ch))
	}
}

// decodeInteger is entered with the 'i' tag already consumed. Bytes are
// accumulated up to the 'e' sentinel and handed to strconv as-is, so
// leading zeros and "-0" pass through.
func (d *decoder) decodeInteger() (*BValue, error) {
	start := d.cur.Offset()

	var buf strings.Builder
	for {
		ch, ok := d.cur.Next()
		if !ok {
			return nil, d.fail(UnterminatedInteger, "")
		}
		if ch == 'e' {
			break
		}
		buf.WriteByte(ch)
	}

	n, err := strconv.ParseInt(buf.String(), 10, 64)
	if err != nil {
		return nil, &DecodeError{
			Kind:   IntegerParseError,
			Offset: start,
			Detail: fmt.Sprintf("%q", buf.String()),
		}
	}
	return Int(n), nil
}

// decodeString is entered with the first length digit already consumed.
// The remaining prefix digits run up to the ':' sentinel; the payload is
// then exactly that many bytes, truncated silently if the input is
// shorter than the declared length.
func (d *decoder) decodeString(first byte) (*BValue, error) {
	start := d.cur.Offset() - 1

	prefix := []byte{first}
	for {
		ch, ok := d.cur.Next()
		if !ok {
			return nil, &DecodeError{
				Kind:   StringLengthParseError,
				Offset: d.cur.Offset(),
				Detail: "no ':' after length prefix",
			}
		}
		if ch == ':' {
			break
		}
		prefix = append(prefix, ch)
	}

	n, err := strconv.ParseInt(string(prefix), 10, 64)
	if err != nil || n < 0 {
		return nil, &DecodeError{
			Kind:   StringLengthParseError,
			Offset: start,
			Detail: fmt.Sprintf("%q", prefix),
		}
	}

	return Str(d.cur.Take(int(n))), nil
}

// decodeList is entered with the 'l' tag already consumed.
func (d *decoder) decodeList(depth int) (*BValue, error) {
	var elems []*BValue
	for {
		ch, ok := d.cur.Peek()
		if !ok {
			return nil, d.fail(UnterminatedList, "")
		}
		if ch == 'e' {
			d.cur.Next()
			return List(elems...), nil
		}

		elem, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

// decodeDict is entered with the 'd' tag already consumed. Elements are
// decoded as a flat sequence exactly like a list; on 'e' the sequence is
// folded into a map from the end in value/key pairs. Folding from the end
// means the earliest occurrence of a duplicated key is inserted last and
// wins.
func (d *decoder) decodeDict(depth int) (*BValue, error) {
	var elems []*BValue
	for {
		ch, ok := d.cur.Peek()
		if !ok {
			return nil, d.fail(UnterminatedDict, "")
		}
		if ch == 'e' {
			d.cur.Next()
			break
		}

		elem, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	if len(elems)%2 != 0 {
		return nil, d.fail(OddDictElements, fmt.Sprintf("%d element(s)", len(elems)))
	}

	entries := make(map[string]*BValue, len(elems)/2)
	for i := len(elems) - 2; i >= 0; i -= 2 {
		key, val := elems[i], elems[i+1]
		s, err := key.AsStr()
		if err != nil {
			return nil, d.fail(NonStringDictKey, fmt.Sprintf("key is a %s", key.Type()))
		}
		entries[s] = val
	}
	return Dict(entries), nil
}

func (d *decoder) fail(kind ErrorKind, detail string) *DecodeError {
	return &DecodeError{Kind: kind, Offset: d.cur.Offset(), Detail: detail}
}
