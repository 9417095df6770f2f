package game

// Quadrant is one of the four clickable screen regions. The encoding matches
// PressedQuadrant: +1 for the right half, +2 for the bottom half.
type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// NumQuadrants is the number of gameplay quadrants.
const NumQuadrants = 4

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "invalid"
	}
}

// Valid reports whether q is a gameplay quadrant.
func (q Quadrant) Valid() bool { return q < NumQuadrants }

// PressedQuadrant maps a position to the quadrant under it for a viewport of
// the given size. Points on a midline belong to the top/left side.
func PressedQuadrant(x, y, width, height int) Quadrant {
	var q Quadrant
	if x > width/2 {
		q += 1
	}
	if y > height/2 {
		q += 2
	}
	return q
}

type HighlightKind uint8

const (
	HighlightNone HighlightKind = iota
	HighlightQuadrant
	HighlightAll
	HighlightGameOver
)

func (k HighlightKind) String() string {
	switch k {
	case HighlightNone:
		return "none"
	case HighlightQuadrant:
		return "quadrant"
	case HighlightAll:
		return "all"
	case HighlightGameOver:
		return "game-over"
	default:
		return "invalid"
	}
}

// Highlight is what the renderer should emphasise this frame. Only a
// HighlightQuadrant carries a Quadrant; the other kinds are presentation
// states that never take part in matching.
type Highlight struct {
	kind     HighlightKind
	quadrant Quadrant
}

var (
	NoHighlight       = Highlight{kind: HighlightNone}
	AllHighlight      = Highlight{kind: HighlightAll}
	GameOverHighlight = Highlight{kind: HighlightGameOver}
)

// Lit highlights a single quadrant.
func Lit(q Quadrant) Highlight {
	return Highlight{kind: HighlightQuadrant, quadrant: q}
}

func (h Highlight) Kind() HighlightKind { return h.kind }

// Quadrant returns the highlighted quadrant, if any.
func (h Highlight) Quadrant() (Quadrant, bool) {
	if h.kind != HighlightQuadrant {
		return 0, false
	}
	return h.quadrant, true
}

func (h Highlight) String() string {
	if q, ok := h.Quadrant(); ok {
		return q.String()
	}
	return h.kind.String()
}
