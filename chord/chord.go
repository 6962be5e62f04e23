package chord

import (
	"regexp"
	"strings"

	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/theory"
)

var rootPattern = regexp.MustCompile(`^[A-G][#b]?`)

// Parse decomposes a raw chord token into root, quality suffix and bass
// note. It is total: tokens that don't start with A-G degrade to a
// verbatim first-character root rather than an error. Callers filter
// empty/whitespace-only tokens before calling.
func Parse(token, section string) model.Chord {
	c := model.Chord{Symbol: strings.TrimSpace(token), Section: section}

	chordPart := c.Symbol
	if i := strings.Index(chordPart, "/"); i >= 0 {
		c.BassNote = strings.TrimSpace(chordPart[i+1:])
		chordPart = strings.TrimSpace(chordPart[:i])
	}

	if root := rootPattern.FindString(chordPart); root != "" {
		c.Root = root
		c.Suffix = strings.TrimSpace(strings.ToLower(chordPart[len(root):]))
	} else if chordPart != "" {
		c.Root = chordPart[:1]
		c.Suffix = strings.TrimSpace(strings.ToLower(chordPart[1:]))
	}

	if c.BassNote == "" {
		c.BassNote = c.Root
	}
	return c
}

// Tones returns the chord's note names and pitch classes in formula
// order. Colliding offsets are not deduplicated. Unknown quality suffixes
// fall back to the major triad; an empty root yields a "?" placeholder.
func Tones(c model.Chord, key string) ([]string, []int) {
	if c.Root == "" {
		return []string{"?"}, nil
	}

	formula, ok := theory.ChordFormulas[c.Suffix]
	if !ok {
		formula = theory.ChordFormulas[""]
	}

	rootPitch := theory.PitchOf(c.Root)
	sharps := theory.UseSharps(key, c.Root)

	names := make([]string, len(formula))
	pitches := make([]int, len(formula))
	for i, offset := range formula {
		p := (rootPitch + offset) % 12
		pitches[i] = p
		names[i] = theory.SpellPitch(p, sharps)
	}
	return names, pitches
}

// KeyRoot extracts the root note from a key string, defaulting to C.
func KeyRoot(key string) string {
	if root := rootPattern.FindString(key); root != "" {
		return root
	}
	return "C"
}

// IsMinor reports whether a key or quality-suffix string carries minor
// evidence: an "m" that is not part of "maj" or "dim".
func IsMinor(s string) bool {
	return strings.Contains(s, "m") &&
		!strings.Contains(s, "maj") &&
		!strings.Contains(s, "dim")
}
