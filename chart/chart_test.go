package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = `
[V1]
.Em  C  B
Some lyrics that mention Em and C
.Em C B

[Chorus]
.  Em   C
more lyrics
`

func TestParseCollectsChordLinesOnly(t *testing.T) {
	chords := Parse(sample)

	assert := assert.New(t)
	assert.Len(chords, 8)
	assert.Equal("Em", chords[0].Symbol)
	assert.Equal("C", chords[1].Symbol)
	assert.Equal("B", chords[2].Symbol)
}

func TestParseTracksSections(t *testing.T) {
	chords := Parse(sample)

	assert := assert.New(t)
	assert.Equal("V1", chords[0].Section)
	assert.Equal("V1", chords[5].Section)
	assert.Equal("Chorus", chords[6].Section)
	assert.Equal("Chorus", chords[7].Section)
}

func TestParseEmptySectionName(t *testing.T) {
	chords := Parse("[]\n.C")
	assert.Equal(t, "", chords[0].Section)
}

func TestParseNoSectionBeforeFirstHeader(t *testing.T) {
	chords := Parse(".Am7\n[Bridge]\n.D")

	assert := assert.New(t)
	assert.Equal("", chords[0].Section)
	assert.Equal("Bridge", chords[1].Section)
}

func TestParseIgnoresLyricsAndBlankLines(t *testing.T) {
	assert.Empty(t, Parse("just lyrics\n\nmore lyrics\n"))
}

func TestParseIndentedChordLine(t *testing.T) {
	// Lines are trimmed before the leading-dot check.
	chords := Parse("   .G D\n")
	assert.Len(t, chords, 2)
}
