package derive

import "testing"

func TestConclusionWithBenchmark(t *testing.T) {
	cases := []struct {
		bench     float64
		portfolio float64
		want      string
	}{
		{1.2, 0.8, ConclusionFollowsUp},
		{-1.2, -0.8, ConclusionPullsBack},
		{1.2, -0.3, ConclusionDefiesDown},
		{-1.2, 0.3, ConclusionDefiesUp},
	}
	for _, c := range cases {
		b := c.bench
		if got := Conclusion(c.portfolio, &b); got != c.want {
			t.Fatalf("Conclusion(%v, %v) = %q, want %q", c.portfolio, c.bench, got, c.want)
		}
	}
}

func TestConclusionSmallBenchmarkMove(t *testing.T) {
	// A benchmark move inside the dead zone falls through to the
	// portfolio-only classification.
	b := 0.4
	if got := Conclusion(2.0, &b); got != ConclusionStrong {
		t.Fatalf("got %q", got)
	}
	if got := Conclusion(-1.5, &b); got != ConclusionPullback {
		t.Fatalf("got %q", got)
	}
	if got := Conclusion(0.2, &b); got != ConclusionFlat {
		t.Fatalf("got %q", got)
	}
}

func TestConclusionNoBenchmark(t *testing.T) {
	if got := Conclusion(0.2, nil); got != ConclusionFlat {
		t.Fatalf("got %q", got)
	}
	if got := Conclusion(1.5, nil); got != ConclusionStrong {
		t.Fatalf("got %q", got)
	}
	if got := Conclusion(-2.1, nil); got != ConclusionPullback {
		t.Fatalf("got %q", got)
	}
}
