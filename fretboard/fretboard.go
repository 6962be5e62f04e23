package fretboard

import (
	"github.com/jsphweid/basscard/constants"
	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/theory"
)

// Build classifies every (string, fret) position for the given chord
// pitches, strings ordered highest to lowest and frets 0 (open) through
// FretCount. The bass-note role wins when a position is both the bass and
// another chord tone. Unknown string counts fall back to the 4-string
// tuning.
func Build(chordPitches []int, bassPitch int, key, root string, count model.StringCount) []model.StringRow {
	tuning, ok := theory.BassTunings[int(count)]
	if !ok {
		tuning = theory.BassTunings[constants.DefaultStringCount]
	}

	sharps := theory.UseSharps(key, root)
	inChord := make(map[int]bool, len(chordPitches))
	for _, p := range chordPitches {
		inChord[p] = true
	}

	rows := make([]model.StringRow, 0, len(tuning))
	for _, s := range tuning {
		row := model.StringRow{
			Label: s.Label,
			Cells: make([]model.Cell, 0, constants.FretCount+1),
		}
		for fret := 0; fret <= constants.FretCount; fret++ {
			p := (s.Open + fret) % 12
			cell := model.Cell{Note: theory.SpellPitch(p, sharps)}
			switch {
			case p == bassPitch:
				cell.Role = model.BassNote
			case inChord[p]:
				cell.Role = model.ChordTone
			default:
				cell.Role = model.NotInChord
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows
}
