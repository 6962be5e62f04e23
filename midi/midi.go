package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/theory"
)

const (
	bassChannel  = 0
	bassVelocity = 90

	// bassOctaveBase anchors pitch classes at C2, the bottom octave of a
	// standard 4-string bass.
	bassOctaveBase = 36
)

// BassNoteNumber converts a chord's bass note to a MIDI note number in
// the bass register.
func BassNoteNumber(c model.Chord) uint8 {
	return uint8(bassOctaveBase + theory.PitchOf(c.BassNote))
}

// BassTrack renders a song's bass line as one SMF track: a whole note per
// chord occurrence, following each chord's bass note.
func BassTrack(s model.Song, clock smf.MetricTicks) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(s.Title))
	tr.Add(0, smf.MetaInstrument("Bass"))
	tr.Add(0, smf.MetaTempo(120))

	whole := clock.Ticks4th() * 4
	for _, c := range s.Chords {
		note := BassNoteNumber(c)
		tr.Add(0, midi.NoteOn(bassChannel, note, bassVelocity))
		tr.Add(whole, midi.NoteOff(bassChannel, note))
	}
	tr.Close(0)
	return tr
}

// WriteFile writes the song's bass line as a Standard MIDI File.
func WriteFile(path string, s model.Song) error {
	clock := smf.MetricTicks(960)
	mf := smf.New()
	mf.TimeFormat = clock
	mf.Add(BassTrack(s, clock))

	if err := mf.WriteFile(path); err != nil {
		return fmt.Errorf("writing midi file %s: %w", path, err)
	}
	return nil
}
