package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvHighScoreFile = "SIMON_HIGHSCORE_FILE"
	EnvMute          = "SIMON_MUTE"
	EnvLogLevel      = "LOG_LEVEL"

	DefaultHighScoreFile = "highscores.txt"
	DefaultLogLevel      = "info"
)

// Settings holds the process-level knobs. Gameplay itself is fixed by the
// constants in this package.
type Settings struct {
	HighScoreFile string
	Muted         bool
	LogLevel      string
}

// Load reads settings from the environment, after loading a .env file from
// the working directory if one exists. The returned Settings are always
// usable; a non-nil error reports a value that was ignored.
func Load() (Settings, error) {
	_ = godotenv.Load()

	s := Settings{
		HighScoreFile: getEnv(EnvHighScoreFile, DefaultHighScoreFile),
		LogLevel:      getEnv(EnvLogLevel, DefaultLogLevel),
	}

	if v := os.Getenv(EnvMute); v != "" {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("invalid %s %q: %w", EnvMute, v, err)
		}
		s.Muted = muted
	}
	return s, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
