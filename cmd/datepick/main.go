package main

import (
	"os"
	"strings"

	"datepick/internal/cli"
	"datepick/internal/picker"
)

// looksLikeValue reports whether s is a value the picker can load directly.
func looksLikeValue(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.Trim(s, "0123456789") == "" {
		return true
	}
	return picker.CheckDateBound(s)
}

func rewriteDirectValueArgs(argv []string) []string {
	// Convenience: `datepick <value> [ops...]` works like
	// `datepick eval --value <value> [ops...]`.
	//
	// Persistent flags may come first (`datepick --mode time 2023-06-15T09:05 inc-hour`),
	// so find the first positional token rather than looking at argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--mode":      true,
		"--min-date":  true,
		"--max-date":  true,
		"--min-time":  true,
		"--max-time":  true,
		"--tz":        true,
		"--format":    true,
		"--log-level": true,
		"--history":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		if !looksLikeValue(a) {
			return argv
		}
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "eval", "--value", a)
		out = append(out, argv[i+1:]...)
		return out
	}

	return argv
}

func main() {
	os.Args = rewriteDirectValueArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
