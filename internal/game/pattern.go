package game

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/simon-says/internal/config"
)

// Pattern is the sequence of quadrants for one run. It has a fixed capacity
// and never grows after generation.
type Pattern struct {
	quadrants [config.MaxScore]Quadrant
	n         int
}

func (p *Pattern) Len() int { return p.n }

// At returns the i-th quadrant. It panics if i is out of range.
func (p *Pattern) At(i int) Quadrant {
	if i < 0 || i >= p.n {
		panic("game: pattern index out of range")
	}
	return p.quadrants[i]
}

// Slice returns a copy of the first n elements.
func (p *Pattern) Slice(n int) []Quadrant {
	n = min(max(n, 0), p.n)
	out := make([]Quadrant, n)
	copy(out, p.quadrants[:n])
	return out
}

// Generator produces patterns. It is reseeded on every Generate call so
// consecutive runs differ.
type Generator struct {
	seed func() uint64
}

// TimeSeed seeds from the wall clock.
func TimeSeed() uint64 { return uint64(time.Now().UnixNano()) }

func NewGenerator(seed func() uint64) *Generator {
	if seed == nil {
		seed = TimeSeed
	}
	return &Generator{seed: seed}
}

// Generate draws length quadrants uniformly at random. length is clamped to
// [0, MaxScore].
func (g *Generator) Generate(length int) Pattern {
	length = min(max(length, 0), config.MaxScore)

	s := g.seed()
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))

	var p Pattern
	for i := 0; i < length; i++ {
		p.quadrants[i] = Quadrant(rng.IntN(NumQuadrants))
	}
	p.n = length
	return p
}
