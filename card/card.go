package card

import (
	"fmt"

	"github.com/jsphweid/basscard/chord"
	"github.com/jsphweid/basscard/fretboard"
	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/theory"
)

// New computes the bass card for one chord in a key. It is deterministic
// and never fails: missing keys and unrecognized roots degrade to "?"
// placeholders instead of errors.
func New(c model.Chord, key string, count model.StringCount) model.Card {
	notes, pitches := chord.Tones(c, key)
	bassPitch := theory.PitchOf(c.BassNote)
	return model.Card{
		Chord:       c,
		Key:         key,
		StringCount: count,
		ScaleDegree: ScaleDegree(c, key),
		Notes:       notes,
		NotePitches: pitches,
		BassPitch:   bassPitch,
		Fretboard:   fretboard.Build(pitches, bassPitch, key, c.Root, count),
	}
}

// ScaleDegree labels the chord root's position in the key as a roman
// numeral. Chromatic roots get "?(<n>)" where n is the semitone distance
// from the key root; a missing key or root gets "?".
func ScaleDegree(c model.Chord, key string) string {
	if key == "" || c.Root == "" {
		return "?"
	}

	labels := theory.DegreeLabelsMajor
	if chord.IsMinor(key) {
		labels = theory.DegreeLabelsMinor
	}

	keyPitch := theory.PitchOf(chord.KeyRoot(key))
	degree := ((theory.PitchOf(c.Root)-keyPitch)%12 + 12) % 12
	if label, ok := labels[degree]; ok {
		return label
	}
	return fmt.Sprintf("?(%d)", degree)
}

// Outcome pairs a built card with the error that prevented building it,
// if any.
type Outcome struct {
	Card model.Card
	Err  error
}

// BuildAll builds one card per chord, isolating per-chord panics so a bad
// occurrence cannot abort the rest of the batch. Output order follows
// input order.
func BuildAll(chords []model.Chord, key string, count model.StringCount) []Outcome {
	outcomes := make([]Outcome, len(chords))
	for i, c := range chords {
		outcomes[i] = buildOne(c, key, count)
	}
	return outcomes
}

func buildOne(c model.Chord, key string, count model.StringCount) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("analyzing %q: %v", c.Symbol, r)
		}
	}()
	out.Card = New(c, key, count)
	return out
}
