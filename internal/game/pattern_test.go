package game

import (
	"testing"

	"github.com/iburimskiy/simon-says/internal/config"
)

func fixedSeed(s uint64) func() uint64 { return func() uint64 { return s } }

func countingSeed() func() uint64 {
	var n uint64
	return func() uint64 {
		n++
		return n
	}
}

func TestGenerateOnlyGameplayQuadrants(t *testing.T) {
	g := NewGenerator(countingSeed())
	for _, length := range []int{0, 1, 7, config.MaxScore} {
		p := g.Generate(length)
		if p.Len() != length {
			t.Fatalf("Generate(%d).Len() = %d", length, p.Len())
		}
		for i := 0; i < p.Len(); i++ {
			if q := p.At(i); !q.Valid() {
				t.Fatalf("Generate(%d)[%d] = %d, not a gameplay quadrant", length, i, q)
			}
		}
	}
}

func TestGenerateClampsLength(t *testing.T) {
	g := NewGenerator(fixedSeed(1))
	long := g.Generate(config.MaxScore + 10)
	if n := long.Len(); n != config.MaxScore {
		t.Fatalf("Len = %d, want %d", n, config.MaxScore)
	}
	empty := g.Generate(-4)
	if n := empty.Len(); n != 0 {
		t.Fatalf("Len = %d, want 0", n)
	}
}

func TestGenerateSameSeedSamePattern(t *testing.T) {
	a := NewGenerator(fixedSeed(42)).Generate(64)
	b := NewGenerator(fixedSeed(42)).Generate(64)
	if a != b {
		t.Fatalf("same seed produced different patterns")
	}
}

func TestGenerateReseedsEachRun(t *testing.T) {
	g := NewGenerator(countingSeed())
	a := g.Generate(config.MaxScore)
	b := g.Generate(config.MaxScore)
	if a == b {
		t.Fatalf("consecutive runs produced identical patterns")
	}
}

func TestGenerateRoughlyUniform(t *testing.T) {
	p := NewGenerator(fixedSeed(7)).Generate(config.MaxScore)
	var counts [NumQuadrants]int
	for _, q := range p.Slice(p.Len()) {
		counts[q]++
	}
	want := config.MaxScore / NumQuadrants
	for q, c := range counts {
		if c < want-80 || c > want+80 {
			t.Errorf("quadrant %v drawn %d times, want about %d", Quadrant(q), c, want)
		}
	}
}

func TestPatternAtOutOfRangePanics(t *testing.T) {
	p := NewGenerator(fixedSeed(1)).Generate(3)
	defer func() {
		if recover() == nil {
			t.Fatalf("At(3) on a 3-element pattern did not panic")
		}
	}()
	p.At(3)
}

func TestPressedQuadrant(t *testing.T) {
	tests := []struct {
		x, y, w, h int
		want       Quadrant
	}{
		{10, 10, 800, 600, TopLeft},
		{700, 10, 800, 600, TopRight},
		{10, 500, 800, 600, BottomLeft},
		{700, 500, 800, 600, BottomRight},
		{400, 300, 800, 600, TopLeft}, // on both midlines
		{401, 301, 800, 600, BottomRight},
		// Same point after the window grew.
		{700, 500, 1600, 1200, TopLeft},
		{700, 500, 1000, 1200, TopRight},
	}
	for _, tt := range tests {
		if got := PressedQuadrant(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Errorf("PressedQuadrant(%d, %d, %d, %d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestHighlightVariants(t *testing.T) {
	if _, ok := NoHighlight.Quadrant(); ok {
		t.Errorf("NoHighlight carries a quadrant")
	}
	if _, ok := AllHighlight.Quadrant(); ok {
		t.Errorf("AllHighlight carries a quadrant")
	}
	if _, ok := GameOverHighlight.Quadrant(); ok {
		t.Errorf("GameOverHighlight carries a quadrant")
	}
	q, ok := Lit(BottomLeft).Quadrant()
	if !ok || q != BottomLeft {
		t.Errorf("Lit(BottomLeft).Quadrant() = %v, %v", q, ok)
	}
	if Lit(TopLeft) == NoHighlight {
		t.Errorf("Lit(TopLeft) equals NoHighlight")
	}
	var zero Highlight
	if zero != NoHighlight {
		t.Errorf("zero Highlight is not NoHighlight")
	}
}
