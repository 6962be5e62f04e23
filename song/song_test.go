package song

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/basscard/chord"
	"github.com/jsphweid/basscard/model"
)

func parseAll(tokens ...string) []model.Chord {
	var res []model.Chord
	for _, token := range tokens {
		res = append(res, chord.Parse(token, ""))
	}
	return res
}

func TestDetectKeyMinor(t *testing.T) {
	chords := parseAll("Em", "C", "B", "Em", "C", "B", "Em", "C")
	assert.Equal(t, "Em", DetectKey(chords))
}

func TestDetectKeyMajor(t *testing.T) {
	chords := parseAll("G", "C", "D", "G", "G")
	assert.Equal(t, "G", DetectKey(chords))
}

func TestDetectKeyEmptyDefaultsToC(t *testing.T) {
	assert.Equal(t, "C", DetectKey(nil))
}

func TestDetectKeyTieBreaksOnFirstAppearance(t *testing.T) {
	chords := parseAll("D", "A", "D", "A")
	assert.Equal(t, "D", DetectKey(chords))
}

func TestDetectKeyAccidentalsDistinguishRoots(t *testing.T) {
	chords := parseAll("C#", "C#", "C")
	assert.Equal(t, "C#", DetectKey(chords))
}

func TestDetectKeyMajSuffixIsNotMinorEvidence(t *testing.T) {
	chords := parseAll("Cmaj7", "Cmaj7", "G")
	assert.Equal(t, "C", DetectKey(chords))
}

func TestDetectKeyDimSuffixIsNotMinorEvidence(t *testing.T) {
	chords := parseAll("Bdim", "Bdim", "C")
	assert.Equal(t, "B", DetectKey(chords))
}

func TestDetectKeySingleMinorOccurrenceSuffices(t *testing.T) {
	chords := parseAll("A", "A7", "Am", "A")
	assert.Equal(t, "Am", DetectKey(chords))
}

func TestNewDetectsKeyWhenEmpty(t *testing.T) {
	chords := parseAll("Em", "Am", "Em")
	s := New("Song", "Someone", "", chords)

	assert := assert.New(t)
	assert.Equal("Em", s.Key)
	assert.Equal("Song", s.Title)
	assert.Equal("Someone", s.Author)
	assert.Len(s.Chords, 3)
}

func TestNewKeepsExplicitKey(t *testing.T) {
	s := New("", "", "Bb", parseAll("Em", "Em"))
	assert.Equal(t, "Bb", s.Key)
}
