package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/basscard/chord"
	"github.com/jsphweid/basscard/model"
)

func TestScaleDegree(t *testing.T) {
	tests := []struct {
		name  string
		token string
		key   string
		want  string
	}{
		{"tonic major", "C", "C", "I"},
		{"dominant major", "G", "C", "V"},
		{"subdominant major", "F", "C", "IV"},
		{"leading tone major", "Bdim", "C", "vii°"},
		{"tonic minor", "Am", "Am", "i"},
		{"relative major in minor key", "C", "Am", "?(3)"},
		{"minor five", "Em", "Am", "v"},
		{"chromatic root", "C#", "C", "?(1)"},
		{"flat key degree", "Eb", "Bb", "IV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chord.Parse(tt.token, "")
			assert.Equal(t, tt.want, ScaleDegree(c, tt.key))
		})
	}
}

func TestScaleDegreeMissingInputs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("?", ScaleDegree(chord.Parse("C", ""), ""))
	assert.Equal("?", ScaleDegree(model.Chord{}, "C"))
}

func TestNewIsDeterministic(t *testing.T) {
	c := chord.Parse("F#7sus4/C#", "Bridge")
	first := New(c, "Em", model.FourStrings)
	second := New(c, "Em", model.FourStrings)
	assert.Equal(t, first, second)
}

func TestNewAm7(t *testing.T) {
	c := chord.Parse("Am7", "V1")
	built := New(c, "Em", model.FourStrings)

	assert := assert.New(t)
	assert.Equal("iv", built.ScaleDegree)
	assert.Equal([]string{"A", "C", "E", "G"}, built.Notes)
	assert.Equal([]int{9, 0, 4, 7}, built.NotePitches)
	assert.Equal(9, built.BassPitch)
	assert.Len(built.Fretboard, 4)
}

func TestNewSlashChordBassPitch(t *testing.T) {
	c := chord.Parse("C/E", "")
	built := New(c, "C", model.FourStrings)
	assert.Equal(t, 4, built.BassPitch)
}

func TestBuildAllPreservesOrder(t *testing.T) {
	chords := []model.Chord{
		chord.Parse("Em", ""),
		chord.Parse("C", ""),
		chord.Parse("B7/D#", ""),
	}
	outcomes := BuildAll(chords, "Em", model.FiveStrings)

	assert := assert.New(t)
	assert.Len(outcomes, 3)
	for i, out := range outcomes {
		assert.NoError(out.Err)
		assert.Equal(chords[i].Symbol, out.Card.Chord.Symbol)
		assert.Len(out.Card.Fretboard, 5)
	}
}
