package benc

import (
	"fmt"
	"sort"
)

// BType represents bencode value types.
type BType uint8

const (
	TypeByteString BType = iota
	TypeInteger
	TypeList
	TypeDict
)

// String returns the type name.
func (t BType) String() string {
	switch t {
	case TypeByteString:
		return "bytestring"
	case TypeInteger:
		return "integer"
	case TypeList:
		return "list"
	case TypeDict:
		return "dict"
	default:
		return "unknown"
	}
}

// BValue represents a decoded bencode value. It is one of four variants,
// discriminated by Type: a byte string, a 64-bit signed integer, an
// ordered list, or a dict keyed by byte strings.
//
// Values are built once during decoding and never mutated afterwards.
type BValue struct {
	typ BType

	// Scalar values (only one valid based on typ)
	strVal string
	intVal int64

	// Container values
	listVal []*BValue
	dictVal map[string]*BValue
}

// ============================================================
// Constructors
// ============================================================

// Str creates a byte string value.
func Str(v string) *BValue {
	return &BValue{typ: TypeByteString, strVal: v}
}

// Int creates an integer value.
func Int(v int64) *BValue {
	return &BValue{typ: TypeInteger, intVal: v}
}

// List creates a list value.
func List(elems ...*BValue) *BValue {
	return &BValue{typ: TypeList, listVal: elems}
}

// Dict creates a dict value. A nil map is treated as empty.
func Dict(entries map[string]*BValue) *BValue {
	if entries == nil {
		entries = make(map[string]*BValue)
	}
	return &BValue{typ: TypeDict, dictVal: entries}
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value type.
func (v *BValue) Type() BType {
	return v.typ
}

// AsStr returns the byte string payload.
func (v *BValue) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("benc: nil value")
	}
	if v.typ != TypeByteString {
		return "", fmt.Errorf("benc: expected bytestring, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsInt returns the integer payload.
func (v *BValue) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("benc: nil value")
	}
	if v.typ != TypeInteger {
		return 0, fmt.Errorf("benc: expected integer, got %s", v.typ)
	}
	return v.intVal, nil
}

// AsList returns the list elements.
func (v *BValue) AsList() ([]*BValue, error) {
	if v == nil {
		return nil, fmt.Errorf("benc: nil value")
	}
	if v.typ != TypeList {
		return nil, fmt.Errorf("benc: expected list, got %s", v.typ)
	}
	return v.listVal, nil
}

// AsDict returns the dict entries.
func (v *BValue) AsDict() (map[string]*BValue, error) {
	if v == nil {
		return nil, fmt.Errorf("benc: nil value")
	}
	if v.typ != TypeDict {
		return nil, fmt.Errorf("benc: expected dict, got %s", v.typ)
	}
	return v.dictVal, nil
}

// Get returns the value for a dict key, or nil if this is not a dict or
// the key is absent.
func (v *BValue) Get(key string) *BValue {
	if v == nil || v.typ != TypeDict {
		return nil
	}
	return v.dictVal[key]
}

// Index returns the i-th element of a list.
func (v *BValue) Index(i int) (*BValue, error) {
	if v == nil || v.typ != TypeList {
		return nil, fmt.Errorf("benc: not a list")
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("benc: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// Len returns the length of a list or dict, or 0 for scalars.
func (v *BValue) Len() int {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeList:
		return len(v.listVal)
	case TypeDict:
		return len(v.dictVal)
	default:
		return 0
	}
}

// Keys returns dict keys in sorted byte order. Returns nil for non-dicts.
func (v *BValue) Keys() []string {
	if v == nil || v.typ != TypeDict {
		return nil
	}
	keys := make([]string, 0, len(v.dictVal))
	for k := range v.dictVal {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two values are deeply equal.
func (v *BValue) Equal(o *BValue) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeByteString:
		return v.strVal == o.strVal
	case TypeInteger:
		return v.intVal == o.intVal
	case TypeList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case TypeDict:
		if len(v.dictVal) != len(o.dictVal) {
			return false
		}
		for k, val := range v.dictVal {
			other, ok := o.dictVal[k]
			if !ok || !val.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
