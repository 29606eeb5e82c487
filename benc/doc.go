// Package benc implements a decoder for the bencode serialization format.
//
// Bencode is a compact, self-delimiting encoding using single-character
// type tags and explicit length prefixes:
//
//	Integer:     i<digits>e            i-123e
//	Byte string: <length>:<bytes>      5:hello
//	List:        l<elements>e          l5:helloi42ee
//	Dict:        d<key value pairs>e   d3:foo3:bare
//
// Decoding walks the input exactly once with a forward-only cursor and
// builds an immutable tagged value tree:
//
//	v, err := benc.Decode("d8:announce20:http://tracker:6969/e")
//	if err != nil { ... }
//	announce, _ := v.Get("announce").AsStr()
//
// # Permissive behavior
//
// The decoder is deliberately lenient in two places:
//
//   - A byte string whose declared length exceeds the remaining input is
//     truncated to what remains rather than rejected.
//   - Integer text is handed to the platform parser as-is, so leading
//     zeros and "-0" are accepted.
//
// Dict keys are not required to appear in sorted order, and duplicate
// keys are resolved by the pair-folding order of the decoder (see
// Decode). Everything structurally invalid beyond that is rejected with
// a *DecodeError carrying an ErrorKind and the byte offset at failure.
//
// # Concurrency
//
// A decode call is a single synchronous pass with no shared state.
// Values are immutable after Decode returns and safe for concurrent
// reads.
package benc
