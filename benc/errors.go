package benc

import "fmt"

// ErrorKind identifies a decode failure condition.
type ErrorKind uint8

const (
	// InputTooShort: the input is shorter than the shortest valid
	// encoding (2 bytes, e.g. "0:" or "le").
	InputTooShort ErrorKind = iota

	// UnexpectedToken: a byte that starts no value appeared where a
	// value was expected, or the input ended there.
	UnexpectedToken

	// UnterminatedInteger: input ended inside i...e.
	UnterminatedInteger

	// IntegerParseError: the text between i and e is not a 64-bit
	// signed integer (empty, non-digits, overflow, lone minus).
	IntegerParseError

	// StringLengthParseError: the length prefix of a byte string is
	// unparsable or its ':' terminator never appeared.
	StringLengthParseError

	// UnterminatedList: input ended inside l...e.
	UnterminatedList

	// UnterminatedDict: input ended inside d...e.
	UnterminatedDict

	// OddDictElements: a dict closed with an odd number of elements,
	// leaving a key without a value.
	OddDictElements

	// NonStringDictKey: a dict key decoded to something other than a
	// byte string.
	NonStringDictKey

	// NestingTooDeep: containers nested beyond the configured depth
	// limit.
	NestingTooDeep
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case InputTooShort:
		return "input too short"
	case UnexpectedToken:
		return "unexpected token"
	case UnterminatedInteger:
		return "unterminated integer"
	case IntegerParseError:
		return "integer parse error"
	case StringLengthParseError:
		return "string length parse error"
	case UnterminatedList:
		return "unterminated list"
	case UnterminatedDict:
		return "unterminated dict"
	case OddDictElements:
		return "odd dict elements"
	case NonStringDictKey:
		return "non-string dict key"
	case NestingTooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

// DecodeError is the error type returned by Decode. Kind discriminates
// the failure condition and Offset is the byte position at which the
// decoder gave up.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("benc: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("benc: %s at offset %d", e.Kind, e.Offset)
}

// Is matches any *DecodeError with the same Kind, so
// errors.Is(err, &DecodeError{Kind: UnterminatedList}) works regardless
// of offset and detail.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Kind == e.Kind
}
