package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/simon-says/internal/config"
	"github.com/iburimskiy/simon-says/internal/game"
	"github.com/iburimskiy/simon-says/internal/score"
	"github.com/iburimskiy/simon-says/internal/sound"
)

var (
	quadrantColors = [game.NumQuadrants]color.Color{
		game.TopLeft:     color.RGBA{R: 0, G: 0, B: 255, A: 255},
		game.TopRight:    color.RGBA{R: 0, G: 255, B: 0, A: 255},
		game.BottomLeft:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
		game.BottomRight: color.RGBA{R: 255, G: 255, B: 0, A: 255},
	}
	highlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	overlayColor   = color.NRGBA{R: 0, G: 0, B: 0, A: 196}
)

// simon adapts a game.Machine to ebiten: it samples input once per tick,
// steps the machine and draws the resulting frame.
type simon struct {
	machine *game.Machine
	player  *sound.Player
	fonts   fonts

	// viewport size, updated by Layout
	width, height int

	frame game.Frame
}

func newSimon(m *game.Machine, p *sound.Player, f fonts) *simon {
	return &simon{
		machine: m,
		player:  p,
		fonts:   f,
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		frame:   m.Frame(),
	}
}

func (s *simon) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s.frame = s.machine.Step(s.sampleInput())
	if s.frame.Cue.Kind != game.CueNone {
		s.player.Play(s.frame.Cue)
	}
	return nil
}

func (s *simon) sampleInput() game.Input {
	in := game.Input{Width: s.width, Height: s.height}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Pressed = true
		in.X, in.Y = ebiten.CursorPosition()
		return in
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		in.Pressed = true
		in.X, in.Y = ebiten.TouchPosition(ids[0])
	}
	return in
}

func (s *simon) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width = max(outsideWidth, 1)
	s.height = max(outsideHeight, 1)
	return s.width, s.height
}

func (s *simon) Draw(screen *ebiten.Image) {
	halfW := float32(s.width) / 2
	halfH := float32(s.height) / 2

	for q := game.TopLeft; q <= game.BottomRight; q++ {
		x, y := s.quadrantOrigin(q)
		vector.DrawFilledRect(screen, x, y, halfW, halfH, quadrantColors[q], false)
	}

	switch h := s.frame.Highlight; h.Kind() {
	case game.HighlightQuadrant:
		q, _ := h.Quadrant()
		x, y := s.quadrantOrigin(q)
		vector.DrawFilledRect(screen, x, y, halfW, halfH, highlightColor, false)
	case game.HighlightAll:
		vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), highlightColor, false)
	case game.HighlightGameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), overlayColor, false)
	}

	s.drawText(screen, fmt.Sprintf("Score: %d", s.frame.Score), s.fonts.regular, config.ScoreTextSize,
		config.ScoreTextOffset, config.ScoreTextOffset, text.AlignStart, text.AlignStart)

	if s.frame.Phase == game.GameOver {
		s.drawGameOver(screen)
	}

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  phase: %v", ebiten.ActualTPS(), s.frame.Phase), 12, s.height-20)
	}
}

func (s *simon) drawGameOver(screen *ebiten.Image) {
	cx := float64(s.width) / 2
	cy := float64(s.height) / 2

	s.drawText(screen, "Game Over", s.fonts.bold, config.GameOverTextSize,
		cx, cy+config.GameOverVerticalOffset, text.AlignCenter, text.AlignCenter)
	s.drawText(screen, "Click to Retry", s.fonts.regular, config.ScoreTextSize,
		cx, cy+config.RetryTextVerticalOffset, text.AlignCenter, text.AlignCenter)

	listY := float64(s.height) * 0.75
	s.drawText(screen, "Highscores", s.fonts.regular, config.ScoreTextSize,
		cx, listY-config.ScoreTextSize, text.AlignCenter, text.AlignCenter)
	for i, r := range s.frame.HighScores {
		s.drawText(screen, rankLine(r), s.fonts.regular, config.HighScoreTextSize,
			cx, listY+float64(i*config.HighScoreLineHeight), text.AlignCenter, text.AlignCenter)
	}
}

func (s *simon) quadrantOrigin(q game.Quadrant) (float32, float32) {
	var x, y float32
	if q == game.TopRight || q == game.BottomRight {
		x = float32(s.width) / 2
	}
	if q == game.BottomLeft || q == game.BottomRight {
		y = float32(s.height) / 2
	}
	return x, y
}

func (s *simon) drawText(dst *ebiten.Image, str string, src *text.GoTextFaceSource, size, x, y float64, primary, secondary text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, str, &text.GoTextFace{Source: src, Size: size}, op)
}

// rankLine formats a high-score row, e.g. "1st: 12".
func rankLine(r score.Rank) string {
	if r.Score == score.Unset {
		return score.Ordinal(r.Place) + ": ---"
	}
	return fmt.Sprintf("%s: %d", score.Ordinal(r.Place), r.Score)
}
