package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/simon-says/internal/config"
	"github.com/iburimskiy/simon-says/internal/game"
	"github.com/iburimskiy/simon-says/internal/score"
	"github.com/iburimskiy/simon-says/internal/sound"
)

type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func loadFonts() (fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fonts{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fonts{}, fmt.Errorf("load bold font: %w", err)
	}
	return fonts{regular: regular, bold: bold}, nil
}

// fatal reports a startup failure to the operator and exits.
func fatal(err error, msg string) {
	if dlgErr := zenity.Error(
		fmt.Sprintf("%s: %v", msg, err),
		zenity.Title(config.WindowTitle),
		zenity.ErrorIcon,
	); dlgErr != nil && !errors.Is(dlgErr, zenity.ErrCanceled) {
		log.Warn().Err(dlgErr).Msg("could not show error dialog")
	}
	log.Fatal().Err(err).Msg(msg)
}

func setupLogging(level string) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	settings, err := config.Load()
	setupLogging(settings.LogLevel)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid setting")
	}

	f, err := loadFonts()
	if err != nil {
		fatal(err, "failed to load fonts")
	}

	store := score.FileStore{Path: settings.HighScoreFile}
	table, err := store.Load()
	if err != nil {
		log.Error().Err(err).Ints("scores", table.Entries()).Msg("high-score file only partly readable")
	}

	player, err := sound.NewPlayer(settings.Muted)
	if err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running muted")
	}

	logger := log.With().Str("component", "game").Logger()
	machine := game.NewMachine(table, game.Options{
		Logger: &logger,
		Store:  store,
	})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	s := newSimon(machine, player, f)
	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err, "game loop failed")
	}
}
