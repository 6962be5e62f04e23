package song

import (
	"github.com/jsphweid/basscard/chord"
	"github.com/jsphweid/basscard/constants"
	"github.com/jsphweid/basscard/model"
)

// New assembles a song from parsed chords, detecting the key when none is
// given.
func New(title, author, key string, chords []model.Chord) model.Song {
	if key == "" {
		key = DetectKey(chords)
	}
	return model.Song{Title: title, Author: author, Key: key, Chords: chords}
}

// DetectKey infers the key from chord-root frequency. The most common
// root wins, with ties going to the root that appears first in the song.
// The key is minor if any chord on the winning root has minor evidence in
// its suffix.
func DetectKey(chords []model.Chord) string {
	counts := make(map[string]int)
	var order []string
	for _, c := range chords {
		if c.Root == "" {
			continue
		}
		if _, seen := counts[c.Root]; !seen {
			order = append(order, c.Root)
		}
		counts[c.Root]++
	}
	if len(order) == 0 {
		return constants.DefaultKey
	}

	best := order[0]
	for _, root := range order[1:] {
		if counts[root] > counts[best] {
			best = root
		}
	}

	for _, c := range chords {
		if c.Root == best && chord.IsMinor(c.Suffix) {
			return best + "m"
		}
	}
	return best
}
