package benc

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================
// Decode Tests - well-formed input
// ============================================================

func TestDecode_Integers(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"i123456789e", 123456789},
		{"i-123e", -123},
		{"i0e", 0},
		{"i9223372036854775807e", 9223372036854775807},
		{"i-9223372036854775808e", -9223372036854775808},
		// Non-canonical forms the decoder deliberately accepts.
		{"i007e", 7},
		{"i-0e", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			n, err := v.AsInt()
			if err != nil {
				t.Fatalf("AsInt failed: %v", err)
			}
			if n != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, n)
			}
		})
	}
}

func TestDecode_Strings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "5:hello", "hello"},
		{"empty", "0:", ""},
		{"with colon", "3:a:b", "a:b"},
		{"binary", "3:\x00\x01\xff", "\x00\x01\xff"},
		// Declared length shorter than the available bytes: only the
		// declared count is consumed.
		{"shorter than input", "4:hello", "hell"},
		// Declared length longer than the remaining bytes: the payload
		// truncates to what remains, by design.
		{"longer than input", "10:abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			s, err := v.AsStr()
			if err != nil {
				t.Fatalf("AsStr failed: %v", err)
			}
			if s != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, s)
			}
		})
	}
}

func TestDecode_EmptyList(t *testing.T) {
	v, err := Decode("le")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Type() != TypeList {
		t.Fatalf("Expected list, got %s", v.Type())
	}
	if v.Len() != 0 {
		t.Errorf("Expected empty list, got %d elements", v.Len())
	}
}

func TestDecode_BasicList(t *testing.T) {
	v, err := Decode("l5:helloe")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !v.Equal(List(Str("hello"))) {
		t.Errorf("Unexpected value: %s", DumpString(v))
	}
}

func TestDecode_NestedList(t *testing.T) {
	v, err := Decode("ll5:helloee")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !v.Equal(List(List(Str("hello")))) {
		t.Errorf("Unexpected value: %s", DumpString(v))
	}
}

func TestDecode_MixedList(t *testing.T) {
	v, err := Decode("ll5:helloei-10ee")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !v.Equal(List(List(Str("hello")), Int(-10))) {
		t.Errorf("Unexpected value: %s", DumpString(v))
	}
}

func TestDecode_EmptyDict(t *testing.T) {
	v, err := Decode("de")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Type() != TypeDict {
		t.Fatalf("Expected dict, got %s", v.Type())
	}
	if v.Len() != 0 {
		t.Errorf("Expected empty dict, got %d entries", v.Len())
	}
}

func TestDecode_SimpleDict(t *testing.T) {
	v, err := Decode("d4:key16:value14:key26:value2e")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	expected := Dict(map[string]*BValue{
		"key1": Str("value1"),
		"key2": Str("value2"),
	})
	if !v.Equal(expected) {
		t.Errorf("Unexpected value: %s", DumpString(v))
	}
}

func TestDecode_NestedDict(t *testing.T) {
	v, err := Decode("d4:key16:value14:key26:value22:okll5:helloei-10eee")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	expected := Dict(map[string]*BValue{
		"key1": Str("value1"),
		"key2": Str("value2"),
		"ok":   List(List(Str("hello")), Int(-10)),
	})
	if !v.Equal(expected) {
		t.Errorf("Unexpected value: %s", DumpString(v))
	}
}

func TestDecode_DictInDict(t *testing.T) {
	v, err := Decode("d4:infod6:lengthi42e4:name4:testee")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	info := v.Get("info")
	if info == nil || info.Type() != TypeDict {
		t.Fatalf("Expected info dict, got %s", DumpString(v))
	}
	if n, _ := info.Get("length").AsInt(); n != 42 {
		t.Errorf("Expected length 42, got %v", n)
	}
	if s, _ := info.Get("name").AsStr(); s != "test" {
		t.Errorf("Expected name test, got %q", s)
	}
}

// Dict elements are folded into the map from the end of the flat
// sequence, so the first occurrence of a duplicated key is inserted last
// and survives.
func TestDecode_DuplicateKeyFirstWins(t *testing.T) {
	v, err := Decode("d1:ai1e1:ai2ee")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", v.Len())
	}
	if n, _ := v.Get("a").AsInt(); n != 1 {
		t.Errorf("Expected a=1, got %d", n)
	}
}

// ============================================================
// Decode Tests - malformed input
// ============================================================

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"empty input", "", InputTooShort},
		{"single byte", "l", InputTooShort},
		{"unknown tag", "x123e", UnexpectedToken},
		{"bare sentinel", "ee", UnexpectedToken},
		{"integer without sentinel", "i123", UnterminatedInteger},
		{"empty integer", "ie", IntegerParseError},
		{"lone minus", "i-e", IntegerParseError},
		{"integer junk", "i12x3e", IntegerParseError},
		{"integer overflow", "i9223372036854775808e", IntegerParseError},
		{"integer underflow", "i-9223372036854775809e", IntegerParseError},
		{"length prefix without colon", "12345", StringLengthParseError},
		{"length prefix junk", "1x:ab", StringLengthParseError},
		{"unterminated list", "l5:hello", UnterminatedList},
		{"unterminated nested list", "ll5:helloe", UnterminatedList},
		{"unterminated dict", "d4:key16:value1", UnterminatedDict},
		{"odd dict elements", "d4:key1e", OddDictElements},
		{"integer dict key", "di1e5:helloe", NonStringDictKey},
		{"list dict key", "dle5:helloe", NonStringDictKey},
		{"error inside list", "li12xee", IntegerParseError},
		{"error inside dict", "d3:keyi12xee", IntegerParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.input)
			if err == nil {
				t.Fatalf("Expected error, got %s", DumpString(v))
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Expected *DecodeError, got %T: %v", err, err)
			}
			if de.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s (%v)", tt.kind, de.Kind, err)
			}
		})
	}
}

func TestDecode_ErrorsMatchWithIs(t *testing.T) {
	_, err := Decode("l5:hello")
	if !errors.Is(err, &DecodeError{Kind: UnterminatedList}) {
		t.Errorf("errors.Is should match on kind, got %v", err)
	}
	if errors.Is(err, &DecodeError{Kind: UnterminatedDict}) {
		t.Errorf("errors.Is should not match a different kind")
	}
}

func TestDecode_ErrorOffset(t *testing.T) {
	_, err := Decode("l5:hello")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Expected *DecodeError, got %v", err)
	}
	if de.Offset != len("l5:hello") {
		t.Errorf("Expected offset at end of input, got %d", de.Offset)
	}
}

// ============================================================
// Depth Limit Tests
// ============================================================

func TestDecode_DepthLimit(t *testing.T) {
	deep := strings.Repeat("l", 20) + strings.Repeat("e", 20)

	if _, err := DecodeWithOptions(deep, DecodeOptions{MaxDepth: 20}); err != nil {
		t.Fatalf("20 levels should fit in a limit of 20: %v", err)
	}

	_, err := DecodeWithOptions(deep, DecodeOptions{MaxDepth: 19})
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != NestingTooDeep {
		t.Errorf("Expected NestingTooDeep, got %v", err)
	}
}

func TestDecode_DefaultDepthLimit(t *testing.T) {
	over := DefaultMaxDepth + 1
	deep := strings.Repeat("l", over) + strings.Repeat("e", over)

	_, err := Decode(deep)
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != NestingTooDeep {
		t.Errorf("Expected NestingTooDeep, got %v", err)
	}
}

func TestDecode_DeepButWithinLimit(t *testing.T) {
	depth := DefaultMaxDepth
	deep := strings.Repeat("l", depth) + strings.Repeat("e", depth)

	v, err := Decode(deep)
	if err != nil {
		t.Fatalf("Decode failed at the default limit: %v", err)
	}
	for v.Len() > 0 {
		inner, err := v.Index(0)
		if err != nil {
			t.Fatalf("Index failed: %v", err)
		}
		v = inner
	}
	if v.Type() != TypeList || v.Len() != 0 {
		t.Errorf("Expected innermost empty list, got %s", v.Type())
	}
}
