package usecase

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"100", 100},
		{" 42.5 ", 42.5},
		{"0.01", 0.01},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"12,5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, c := range cases {
		if got := ParseAmount(c.raw); got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}
