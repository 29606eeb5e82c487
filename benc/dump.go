package benc

import (
	"fmt"
	"strconv"
	"strings"
)

// DumpString renders a value as an indented human-readable tree, one
// node per line. Dict keys are printed in sorted byte order.
//
//	dict{
//	  announce: "http://tracker:6969/"
//	  length: 1048576
//	}
func DumpString(v *BValue) string {
	var sb strings.Builder
	writeDump(&sb, v, 0)
	return sb.String()
}

func writeDump(sb *strings.Builder, v *BValue, indent int) {
	if v == nil {
		sb.WriteString("<nil>")
		return
	}

	switch v.Type() {
	case TypeByteString:
		s, _ := v.AsStr()
		sb.WriteString(strconv.Quote(s))

	case TypeInteger:
		n, _ := v.AsInt()
		fmt.Fprintf(sb, "%d", n)

	case TypeList:
		elems, _ := v.AsList()
		if len(elems) == 0 {
			sb.WriteString("list[]")
			return
		}
		sb.WriteString("list[\n")
		for _, e := range elems {
			writeIndent(sb, indent+1)
			writeDump(sb, e, indent+1)
			sb.WriteByte('\n')
		}
		writeIndent(sb, indent)
		sb.WriteByte(']')

	case TypeDict:
		if v.Len() == 0 {
			sb.WriteString("dict{}")
			return
		}
		sb.WriteString("dict{\n")
		for _, k := range v.Keys() {
			writeIndent(sb, indent+1)
			sb.WriteString(k)
			sb.WriteString(": ")
			writeDump(sb, v.Get(k), indent+1)
			sb.WriteByte('\n')
		}
		writeIndent(sb, indent)
		sb.WriteByte('}')
	}
}

func writeIndent(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteString("  ")
	}
}
