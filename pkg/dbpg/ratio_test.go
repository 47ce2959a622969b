package dbpg

import "testing"

func TestRatioTag(t *testing.T) {
	cases := []struct {
		w, h int
		want string
	}{
		{100, 100, "square"},
		{512, 1024, "portrait"},
		{100, 400, "tall"},
		{2000, 800, "wide"},
		{1600, 900, "landscape"},
	}

	for _, c := range cases {
		if got := RatioTag(c.w, c.h); got != c.want {
			t.Errorf("RatioTag(%d,%d) = %q, want %q", c.w, c.h, got, c.want)
		}
	}
}

func TestRatioTagBoundaries(t *testing.T) {
	if got := RatioTag(95, 100); got != "square" {
		t.Errorf("lower square boundary: got %q", got)
	}
	if got := RatioTag(105, 100); got != "square" {
		t.Errorf("upper square boundary: got %q", got)
	}
	if got := RatioTag(200, 100); got != "landscape" {
		t.Errorf("r==2.0 must be landscape (wide is strictly >2.0): got %q", got)
	}
}
