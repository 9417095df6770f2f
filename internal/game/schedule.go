package game

import "github.com/iburimskiy/simon-says/internal/config"

// cueWindow is the length of the "get ready" flash that precedes playback.
const cueWindow = 2 * config.FullHighlightTime

// elementVisible reports whether the t-th tick inside a PatternTime window
// falls in the centred sub-window of width PatternShowTime. Integer form of
// |t/PatternTime - 0.5| < PatternShowTime/(2*PatternTime).
func elementVisible(t int) bool {
	d := 2*t - config.PatternTime
	if d < 0 {
		d = -d
	}
	return d < config.PatternShowTime
}

// PatternHighlight decides what is lit at playback tick tick (tick >= 0)
// while the first score+1 elements of p are replayed. done reports that every
// element has been shown and the input phase should start; show is true on
// the first visible tick of an element.
func PatternHighlight(p *Pattern, score, tick int) (h Highlight, show, done bool) {
	if tick < cueWindow {
		if tick < config.FullHighlightTime {
			return AllHighlight, false, false
		}
		return NoHighlight, false, false
	}

	rel := tick - cueWindow
	index := rel / config.PatternTime
	if index > score || index >= p.Len() {
		return NoHighlight, false, true
	}

	t := rel % config.PatternTime
	if !elementVisible(t) {
		return NoHighlight, false, false
	}
	show = t == 0 || !elementVisible(t-1)
	return Lit(p.At(index)), show, false
}
