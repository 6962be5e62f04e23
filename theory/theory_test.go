package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchOf(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, PitchOf("C"))
	assert.Equal(9, PitchOf("A"))
	// Enharmonic spellings collapse to one pitch class.
	assert.Equal(PitchOf("C#"), PitchOf("Db"))
	// Unknown names look up as C, matching the engine's fallback rules.
	assert.Equal(0, PitchOf("x"))
	assert.Equal(0, PitchOf(""))
}

func TestFormulasStayWithinOctave(t *testing.T) {
	for suffix, formula := range ChordFormulas {
		for _, offset := range formula {
			assert.GreaterOrEqual(t, offset, 0, "suffix %q", suffix)
			assert.LessOrEqual(t, offset, 11, "suffix %q", suffix)
		}
	}
}

func TestBassTuningsOrderedHighToLow(t *testing.T) {
	for count, tuning := range BassTunings {
		assert.Len(t, tuning, count)
		for i := 1; i < len(tuning); i++ {
			assert.Greater(t, tuning[i-1].Open, tuning[i].Open)
		}
	}
}

func TestUseSharps(t *testing.T) {
	tests := []struct {
		key  string
		root string
		want bool
	}{
		{"C", "C", false},
		{"F", "Bb", false},
		{"G#", "G", true},
		{"Em", "C", true},
		{"F", "F#", true},
		// The heuristic is a substring check, so flat minor keys also
		// spell sharp.
		{"Bbm", "Db", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UseSharps(tt.key, tt.root), "key %q root %q", tt.key, tt.root)
	}
}

func TestSpellPitch(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("A#", SpellPitch(10, true))
	assert.Equal("Bb", SpellPitch(10, false))
	assert.Equal("C", SpellPitch(0, true))
	assert.Equal("C", SpellPitch(0, false))
}
