package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/basscard/chord"
	"github.com/jsphweid/basscard/model"
)

func TestBassNoteNumber(t *testing.T) {
	tests := []struct {
		token string
		want  uint8
	}{
		{"C", 36},
		{"Am7", 45},
		{"B7/D#", 39}, // slash chords follow the explicit bass note
		{"F#", 42},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, BassNoteNumber(chord.Parse(tt.token, "")))
		})
	}
}

func TestBassTrackEventCount(t *testing.T) {
	s := model.Song{
		Title:  "t",
		Key:    "Em",
		Chords: []model.Chord{chord.Parse("Em", ""), chord.Parse("C", ""), chord.Parse("B", "")},
	}
	tr := BassTrack(s, smf.MetricTicks(960))

	// 3 meta events, on/off per chord, end-of-track from Close.
	assert.Len(t, tr, 3+2*len(s.Chords)+1)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bass.mid")
	s := model.Song{Chords: []model.Chord{chord.Parse("Am", "")}}

	assert := assert.New(t)
	assert.NoError(WriteFile(path, s))

	f, err := os.Open(path)
	assert.NoError(err)
	defer f.Close()

	read, err := smf.ReadFrom(f)
	assert.NoError(err)
	assert.Len(read.Tracks, 1)
}
