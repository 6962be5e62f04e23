package persist

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsphweid/basscard/chord"
	"github.com/jsphweid/basscard/constants"
	"github.com/jsphweid/basscard/model"
)

// Error kinds for the I/O boundary. A failed save or load never touches
// engine state; callers match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrParseFailure = errors.New("malformed document")
	ErrWriteFailure = errors.New("write failed")
)

// Save writes the song and settings as a cards document.
func Save(path string, s model.Song, settings model.SettingsDoc) error {
	doc := model.CardsDoc{
		Song:     model.SongDoc{Title: s.Title, Author: s.Author, Key: s.Key},
		Settings: settings,
		Chords:   make([]model.ChordDoc, 0, len(s.Chords)),
	}
	for _, c := range s.Chords {
		doc.Chords = append(doc.Chords, model.ChordDoc{
			Symbol:   c.Symbol,
			Section:  c.Section,
			BassNote: c.BassNote,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}

// Load reads a cards document back into a song plus settings. Chord
// symbols are re-parsed; the persisted bass note then overrides whatever
// re-parsing produced, since it was captured separately at save time.
func Load(path string) (model.Song, model.SettingsDoc, error) {
	var s model.Song
	var settings model.SettingsDoc

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, settings, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return s, settings, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	var doc model.CardsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return s, settings, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	s.Title = doc.Song.Title
	s.Author = doc.Song.Author
	s.Key = doc.Song.Key
	for _, cd := range doc.Chords {
		c := chord.Parse(cd.Symbol, cd.Section)
		if cd.BassNote != "" {
			c.BassNote = cd.BassNote
		}
		s.Chords = append(s.Chords, c)
	}

	settings = doc.Settings
	if settings.StringCount == 0 {
		settings.StringCount = constants.DefaultStringCount
	}
	if settings.DisplayMode == 0 {
		settings.DisplayMode = int(model.Standard)
	}
	return s, settings, nil
}
