package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteText flattens v into sorted "path: value" lines. Nested keys are
// joined with '.', slice elements are indexed ("emissions.0").
func WriteText(w io.Writer, v any) error {
	x, err := generic(v)
	if err != nil {
		return err
	}
	var lines []string
	flatten("", x, &lines)
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func flatten(prefix string, v any, out *[]string) {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			flatten(join(prefix, k), vv, out)
		}
	case []any:
		for i, vv := range t {
			flatten(join(prefix, strconv.Itoa(i)), vv, out)
		}
	case nil:
		*out = append(*out, prefix+": -")
	case string:
		*out = append(*out, prefix+": "+t)
	case json.Number:
		*out = append(*out, prefix+": "+t.String())
	default:
		*out = append(*out, prefix+": "+fmt.Sprint(t))
	}
}

func join(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return strings.Join([]string{prefix, k}, ".")
}
