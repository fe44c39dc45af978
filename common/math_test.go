package common

import "testing"

func TestSign(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.5, 1},
		{-0.0001, -1},
		{0, 1},
	}
	for _, c := range cases {
		if got := Sign(c.in); got != c.want {
			t.Fatalf("Sign(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp = %v, want 5", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Fatalf("Clamp = %v, want 1", got)
	}
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Fatalf("Clamp = %v, want 0", got)
	}
}
