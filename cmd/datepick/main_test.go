package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectValueArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"datepick"},
			want: []string{"datepick"},
		},
		{
			name: "direct value first token",
			in:   []string{"datepick", "2023-06-15T09:05", "inc-hour"},
			want: []string{"datepick", "eval", "--value", "2023-06-15T09:05", "inc-hour"},
		},
		{
			name: "epoch value after value flag",
			in:   []string{"datepick", "--mode", "time", "1686809100000"},
			want: []string{"datepick", "--mode", "time", "eval", "--value", "1686809100000"},
		},
		{
			name: "flag with equals is not followed by a value",
			in:   []string{"datepick", "--tz=UTC", "2023-06-15"},
			want: []string{"datepick", "--tz=UTC", "eval", "--value", "2023-06-15"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"datepick", "check", "--min-date", "2023-06-15"},
			want: []string{"datepick", "check", "--min-date", "2023-06-15"},
		},
		{
			name: "bool flag then subcommand",
			in:   []string{"datepick", "--pretty", "history"},
			want: []string{"datepick", "--pretty", "history"},
		},
		{
			name: "after double dash untouched",
			in:   []string{"datepick", "--", "2023-06-15"},
			want: []string{"datepick", "--", "2023-06-15"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectValueArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}
