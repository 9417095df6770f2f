package config

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Simon Says"

	// One tick is 1/50th of a second of game time.
	TicksPerSecond = 50

	MaxScore      = 1024
	MaxHighScores = 3

	PatternShowTime   = 30
	PatternHideTime   = 8
	PatternTime       = PatternShowTime + PatternHideTime
	FullHighlightTime = 12

	// Pre-round delays, in ticks.
	StartDelay = -50
	RoundDelay = -30

	// Text layout
	ScoreTextOffset         = 16
	ScoreTextSize           = 32
	GameOverTextSize        = 64
	GameOverVerticalOffset  = -20
	RetryTextVerticalOffset = 50
	HighScoreTextSize       = 18
	HighScoreLineHeight     = 24

	// Tone parameters
	SampleRate   = 44100
	ToneDuration = 0.35 // seconds
	MissDuration = 0.8  // seconds
	ToneVolume   = -1.5 // beep effects.Volume, base 2
)
