package score

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/iburimskiy/simon-says/internal/config"
)

// Unset marks an empty slot in a Table.
const Unset = -1

// Table is a fixed-capacity list of the best scores, highest first.
type Table struct {
	entries [config.MaxHighScores]int
}

// Rank is a single row of the high-score display.
type Rank struct {
	Place int // 1-based
	Score int // Unset when the slot is empty
}

func NewTable() Table {
	var t Table
	for i := range t.entries {
		t.entries[i] = Unset
	}
	return t
}

// Insert places s into the table if it beats an existing entry or fills an
// empty slot. Entries below the new one shift down and the lowest falls off.
// It returns the 1-based place and whether the table changed.
func (t *Table) Insert(s int) (int, bool) {
	if s < 0 {
		return 0, false
	}
	idx := -1
	for i, v := range t.entries {
		if v < s {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}
	copy(t.entries[idx+1:], t.entries[idx:len(t.entries)-1])
	t.entries[idx] = s
	return idx + 1, true
}

// Entries returns a copy of the slots, Unset included.
func (t Table) Entries() []int {
	out := make([]int, len(t.entries))
	copy(out, t.entries[:])
	return out
}

// Best returns the top score, or Unset.
func (t Table) Best() int { return t.entries[0] }

func (t Table) Ranks() []Rank {
	out := make([]Rank, 0, len(t.entries))
	for i, v := range t.entries {
		out = append(out, Rank{Place: i + 1, Score: v})
	}
	return out
}

// Parse reads whitespace separated integers until the end of r. Tokens that
// are not non-negative integers are skipped. The best MaxHighScores values
// are kept.
func Parse(r io.Reader) (Table, error) {
	t := NewTable()
	data, err := io.ReadAll(r)
	if err != nil {
		return t, fmt.Errorf("read high scores: %w", err)
	}

	var scores []int
	for _, tok := range bytes.Fields(data) {
		v, err := strconv.Atoi(string(tok))
		if err != nil || v < 0 {
			continue
		}
		scores = append(scores, v)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	for i := 0; i < len(scores) && i < len(t.entries); i++ {
		t.entries[i] = scores[i]
	}
	return t, nil
}

// WriteTo writes one score per line, skipping unset slots.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, v := range t.entries {
		if v < 0 {
			continue
		}
		m, err := fmt.Fprintf(w, "%d\n", v)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Ordinal formats a 1-based place as "1st", "2nd", "3rd", "4th", ...
func Ordinal(place int) string {
	suffix := "th"
	switch place % 100 {
	case 11, 12, 13:
	default:
		switch place % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(place) + suffix
}
