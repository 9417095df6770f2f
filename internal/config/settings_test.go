package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvHighScoreFile, "")
	t.Setenv(EnvMute, "")
	t.Setenv(EnvLogLevel, "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.HighScoreFile != DefaultHighScoreFile {
		t.Errorf("HighScoreFile = %q, want %q", s.HighScoreFile, DefaultHighScoreFile)
	}
	if s.Muted {
		t.Errorf("Muted = true, want false")
	}
	if s.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, DefaultLogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvHighScoreFile, "/tmp/scores.txt")
	t.Setenv(EnvMute, "true")
	t.Setenv(EnvLogLevel, "debug")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.HighScoreFile != "/tmp/scores.txt" || !s.Muted || s.LogLevel != "debug" {
		t.Fatalf("Load = %+v", s)
	}
}

func TestLoadInvalidMuteKeepsDefaults(t *testing.T) {
	t.Setenv(EnvHighScoreFile, "")
	t.Setenv(EnvMute, "loud")

	s, err := Load()
	if err == nil {
		t.Fatalf("expected error for invalid %s", EnvMute)
	}
	if s.Muted {
		t.Errorf("Muted = true after invalid value")
	}
	if s.HighScoreFile != DefaultHighScoreFile {
		t.Errorf("HighScoreFile = %q, want default", s.HighScoreFile)
	}
}
