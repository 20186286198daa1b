package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{in: "15s", want: 15 * time.Second},
		{in: "2h", want: 2 * time.Hour},
		{in: "", want: time.Minute},
		{in: "soon", want: time.Minute},
		{in: "-5s", want: time.Minute},
	}
	for _, tc := range cases {
		if got := ParseDuration(tc.in, time.Minute); got != tc.want {
			t.Fatalf("ParseDuration(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
