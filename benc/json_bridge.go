package benc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts decoded values to JSON for printing and interop. Byte strings
// that are not valid UTF-8 (hashes, piece tables) are emitted as base64
// so the output is always well-formed JSON.

// ToJSON renders a value as compact JSON. Dict keys come out in sorted
// byte order, so the output is deterministic.
func ToJSON(v *BValue) ([]byte, error) {
	iv, err := toJSONValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(iv)
}

// ToJSONIndent renders a value as two-space indented JSON.
func ToJSONIndent(v *BValue) ([]byte, error) {
	iv, err := toJSONValue(v)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(iv, "", "  ")
}

// toJSONValue converts a BValue tree to the interface{} shape
// encoding/json expects.
func toJSONValue(v *BValue) (interface{}, error) {
	if v == nil {
		return nil, fmt.Errorf("benc: nil value")
	}

	switch v.Type() {
	case TypeByteString:
		s, _ := v.AsStr()
		if !utf8.ValidString(s) {
			return base64.StdEncoding.EncodeToString([]byte(s)), nil
		}
		return s, nil

	case TypeInteger:
		n, _ := v.AsInt()
		return n, nil

	case TypeList:
		elems, _ := v.AsList()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			iv, err := toJSONValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = iv
		}
		return out, nil

	case TypeDict:
		entries, _ := v.AsDict()
		out := make(map[string]interface{}, len(entries))
		for k, e := range entries {
			iv, err := toJSONValue(e)
			if err != nil {
				return nil, err
			}
			key := k
			if !utf8.ValidString(key) {
				key = base64.StdEncoding.EncodeToString([]byte(key))
			}
			out[key] = iv
		}
		return out, nil

	default:
		return nil, fmt.Errorf("benc: unknown type %s", v.Type())
	}
}
