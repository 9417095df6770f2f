package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

type Shape uint8

const (
	Sine Shape = iota
	Square
)

// fadeTime is the linear attack and release applied to every tone so it
// starts and stops without a click.
const fadeTime = 5 * time.Millisecond

// tone is a finite beep.Streamer producing a single pitch.
type tone struct {
	shape Shape
	step  float64 // phase increment per sample, in cycles
	phase float64
	pos   int
	total int
	fade  int
}

// NewTone returns a mono (duplicated to stereo) tone of the given frequency
// and length.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, shape Shape) beep.Streamer {
	return &tone{
		shape: shape,
		step:  freq / float64(sr),
		total: sr.N(d),
		fade:  max(sr.N(fadeTime), 1),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := t.wave() * t.envelope()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.step
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
		}
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

func (t *tone) wave() float64 {
	switch t.shape {
	case Square:
		if t.phase < 0.5 {
			return 0.5
		}
		return -0.5
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) envelope() float64 {
	edge := min(t.pos, t.total-1-t.pos)
	return clamp01(float64(edge) / float64(t.fade))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
