package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/simon-says/internal/config"
	"github.com/iburimskiy/simon-says/internal/game"
)

// Pitches of the original handheld, keyed by the colour drawn in each
// quadrant: blue, green, red, yellow.
var quadrantFreq = [game.NumQuadrants]float64{
	game.TopLeft:     209,
	game.TopRight:    415,
	game.BottomLeft:  310,
	game.BottomRight: 252,
}

const missFreq = 42

// Player turns game cues into sound on the default audio device.
type Player struct {
	sr    beep.SampleRate
	muted bool
}

// NewPlayer opens the audio device unless muted. If the device cannot be
// opened the returned Player is muted and the error says why.
func NewPlayer(muted bool) (*Player, error) {
	p := &Player{
		sr:    beep.SampleRate(config.SampleRate),
		muted: muted,
	}
	if muted {
		return p, nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		p.muted = true
		return p, fmt.Errorf("init speaker: %w", err)
	}
	return p, nil
}

func (p *Player) Muted() bool { return p.muted }

// Play starts the sound for c, cutting off whatever is still playing.
func (p *Player) Play(c game.Cue) {
	if p.muted {
		return
	}
	s := p.streamer(c)
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Play(s)
}

func (p *Player) streamer(c game.Cue) beep.Streamer {
	var s beep.Streamer
	switch c.Kind {
	case game.CueShow, game.CueHit:
		if !c.Quadrant.Valid() {
			return nil
		}
		s = NewTone(p.sr, quadrantFreq[c.Quadrant], seconds(config.ToneDuration), Sine)
	case game.CueMiss:
		s = NewTone(p.sr, missFreq, seconds(config.MissDuration), Square)
	default:
		return nil
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   config.ToneVolume,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
