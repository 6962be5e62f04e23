package theory

import "strings"

// NoteToPitch maps a note name to its pitch class. Enharmonic spellings
// share a pitch class; unknown names look up as 0 (C).
var NoteToPitch = map[string]int{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3, "E": 4, "F": 5,
	"F#": 6, "Gb": 6, "G": 7, "G#": 8, "Ab": 8, "A": 9, "A#": 10, "Bb": 10, "B": 11,
}

var PitchToNoteSharp = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var PitchToNoteFlat = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// ChordFormulas maps a lower-cased quality suffix to the semitone offsets
// from the root that make up the chord. The empty suffix is the major
// triad and doubles as the fallback for unrecognized suffixes.
var ChordFormulas = map[string][]int{
	"":     {0, 4, 7},     // major
	"m":    {0, 3, 7},     // minor
	"7":    {0, 4, 7, 10}, // dominant 7th
	"m7":   {0, 3, 7, 10}, // minor 7th
	"maj7": {0, 4, 7, 11}, // major 7th
	"dim":  {0, 3, 6},     // diminished
	"dim7": {0, 3, 6, 9},  // diminished 7th
	"aug":  {0, 4, 8},     // augmented
	"+":    {0, 4, 8},     // augmented
	"sus4": {0, 5, 7},     // suspended 4th
	"sus2": {0, 2, 7},     // suspended 2nd
	"6":    {0, 4, 7, 9},  // added 6th
	"7sus4": {0, 5, 7, 10}, // 7th suspended 4th
	"m7b5": {0, 3, 6, 10}, // half-diminished
}

// Diatonic degree labels keyed by semitone distance from the key root.
// Distances outside these tables are chromatic relative to the key.
var (
	DegreeLabelsMajor = map[int]string{
		0: "I", 2: "ii", 4: "iii", 5: "IV", 7: "V", 9: "vi", 11: "vii°",
	}
	DegreeLabelsMinor = map[int]string{
		0: "i", 2: "ii°", 4: "III", 5: "iv", 7: "v", 9: "VI", 11: "VII",
	}
)

// Tuning is one physical string: its label and the open-string pitch as a
// MIDI note number. Only the pitch class matters for the fretboard grid.
type Tuning struct {
	Label string
	Open  int
}

// BassTunings lists strings from highest to lowest pitch per string count.
var BassTunings = map[int][]Tuning{
	4: {{"G", 55}, {"D", 50}, {"A", 45}, {"E", 40}},
	5: {{"G", 55}, {"D", 50}, {"A", 45}, {"E", 40}, {"B", 35}},
}

// PitchOf returns a note name's pitch class, 0 for unknown names.
func PitchOf(note string) int {
	return NoteToPitch[note]
}

// UseSharps reports whether note names should come from the sharp table.
// Sharp keys and minor keys spell sharp, as does any chord whose root
// already carries a '#', regardless of key. Everything else spells flat.
func UseSharps(key, root string) bool {
	return strings.ContainsAny(key, "#m") || strings.Contains(root, "#")
}

// SpellPitch names a pitch class using the sharp or flat table.
func SpellPitch(pitch int, sharps bool) string {
	if sharps {
		return PitchToNoteSharp[pitch]
	}
	return PitchToNoteFlat[pitch]
}
