package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes an EDN rendering of v. Map keys become kebab-case keywords
// (minDate => :min-date). Only the JSON-shaped subset is supported.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	x, err := generic(v)
	if err != nil {
		return err
	}
	var sb strings.Builder
	writeEDN(&sb, x, 0, pretty)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeEDN(sb *strings.Builder, v any, level int, pretty bool) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(t))
	case string:
		sb.WriteString(strconv.Quote(t))
	case json.Number:
		sb.WriteString(t.String())
	case []any:
		sb.WriteByte('[')
		for i, it := range t {
			ednSep(sb, i, level+1, pretty)
			writeEDN(sb, it, level+1, pretty)
		}
		ednClose(sb, len(t), level, pretty)
		sb.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			ednSep(sb, i, level+1, pretty)
			sb.WriteString(":" + ednKeyword(k) + " ")
			writeEDN(sb, t[k], level+1, pretty)
		}
		ednClose(sb, len(keys), level, pretty)
		sb.WriteByte('}')
	default:
		sb.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func ednSep(sb *strings.Builder, i, level int, pretty bool) {
	switch {
	case pretty:
		sb.WriteString("\n" + strings.Repeat("  ", level))
	case i > 0:
		sb.WriteByte(' ')
	}
}

func ednClose(sb *strings.Builder, n, level int, pretty bool) {
	if pretty && n > 0 {
		sb.WriteString("\n" + strings.Repeat("  ", level))
	}
}

func ednKeyword(s string) string {
	var sb strings.Builder
	for i, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ' || r == '_':
			sb.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
