package chart

import (
	"regexp"
	"strings"

	"github.com/jsphweid/basscard/chord"
	"github.com/jsphweid/basscard/model"
)

var sectionPattern = regexp.MustCompile(`^\[.*\]$`)

// Parse scans chart text for section headers and chord lines and returns
// the chord occurrences in source order. A header like "[Chorus]" sets
// the section for everything until the next header. Chord lines start
// with "." and hold whitespace-separated chord tokens; any other line is
// lyrics and is skipped.
func Parse(text string) []model.Chord {
	var chords []model.Chord
	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sectionPattern.MatchString(line) {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if strings.HasPrefix(line, ".") {
			for _, token := range strings.Fields(line[1:]) {
				chords = append(chords, chord.Parse(token, section))
			}
		}
	}
	return chords
}
