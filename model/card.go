package model

// NoteRole classifies a fretboard position relative to a chord.
type NoteRole int

const (
	BassNote NoteRole = iota + 1
	ChordTone
	NotInChord
)

func (r NoteRole) String() string {
	switch r {
	case BassNote:
		return "bass_note"
	case ChordTone:
		return "chord_tone"
	default:
		return "not_in_chord"
	}
}

// DisplayMode selects how renderers label fretboard cells. The numeric
// values are what cards documents persist.
type DisplayMode int

const (
	// Standard marks the bass note B, other chord tones X.
	Standard DisplayMode = 1
	// Educational spells out note names for every chord tone.
	Educational DisplayMode = 2
)

// StringCount is the number of strings on the bass being mapped.
type StringCount int

const (
	FourStrings StringCount = 4
	FiveStrings StringCount = 5
)

// Cell is one (string, fret) position on the fretboard grid. Every cell
// gets exactly one role; the bass role wins when a pitch is both the bass
// and another chord tone.
type Cell struct {
	Role NoteRole
	Note string
}

// StringRow is the classified grid for one string, fret 0 (open) upward.
type StringRow struct {
	Label string
	Cells []Cell
}

// Card is the fully-resolved analysis of one chord in a key: scale
// degree, constituent notes, and the fretboard grid for the configured
// string count. A Card is a pure function of (chord, key, string count).
type Card struct {
	Chord       Chord
	Key         string
	StringCount StringCount
	ScaleDegree string
	Notes       []string
	NotePitches []int
	BassPitch   int
	Fretboard   []StringRow
}
