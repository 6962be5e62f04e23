package model

// Chord is one chord occurrence in a song, parsed from its raw symbol.
// Values are immutable after parsing. BassNote is never empty: it holds
// the note after a '/' separator when present, otherwise the root.
type Chord struct {
	Symbol   string
	Section  string
	Root     string
	Suffix   string
	BassNote string
}

// Song is the ordered collection of chord occurrences plus metadata. Key
// is empty until detected or set; chord order is source order.
type Song struct {
	Title  string
	Author string
	Key    string
	Chords []Chord
}
