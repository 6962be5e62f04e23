package export

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jsphweid/basscard/card"
	"github.com/jsphweid/basscard/constants"
	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/persist"
)

// Options controls HTML rendering. Columns is clamped to 1..4.
type Options struct {
	Columns     int
	DisplayMode model.DisplayMode
	PrintMode   bool
}

type pageView struct {
	Title    string
	Author   string
	Key      string
	Strings  int
	Columns  int
	Print    bool
	FretNums []int
	Cards    []cardView
}

type cardView struct {
	Symbol      string
	Section     string
	ScaleDegree string
	BassNote    string
	Notes       string
	Rows        []rowView
	Err         string
}

type rowView struct {
	Label string
	Cells []cellView
}

type cellView struct {
	Text  string
	Class string
}

// MarkerText is the cell label for a note role under a display mode:
// B/X/. in Standard mode, note names for chord tones in Educational mode.
func MarkerText(role model.NoteRole, note string, mode model.DisplayMode) string {
	if mode == model.Educational {
		if role == model.NotInChord {
			return "."
		}
		return note
	}
	switch role {
	case model.BassNote:
		return "B"
	case model.ChordTone:
		return "X"
	default:
		return "."
	}
}

func cellClass(role model.NoteRole) string {
	switch role {
	case model.BassNote:
		return "bass"
	case model.ChordTone:
		return "chord"
	default:
		return "none"
	}
}

// Render produces the HTML document for a batch of card outcomes. Failed
// cards render as an inline error block; the rest of the batch is
// unaffected.
func Render(s model.Song, count model.StringCount, outcomes []card.Outcome, opts Options) (string, error) {
	columns := opts.Columns
	if columns < 1 {
		columns = 1
	}
	if columns > 4 {
		columns = 4
	}

	page := pageView{
		Title:   s.Title,
		Author:  s.Author,
		Key:     s.Key,
		Strings: int(count),
		Columns: columns,
		Print:   opts.PrintMode,
	}
	for f := 0; f <= constants.FretCount; f++ {
		page.FretNums = append(page.FretNums, f)
	}

	for _, out := range outcomes {
		if out.Err != nil {
			page.Cards = append(page.Cards, cardView{
				Symbol: out.Card.Chord.Symbol,
				Err:    out.Err.Error(),
			})
			continue
		}

		c := out.Card
		cv := cardView{
			Symbol:      c.Chord.Symbol,
			Section:     c.Chord.Section,
			ScaleDegree: c.ScaleDegree,
			BassNote:    c.Chord.BassNote,
			Notes:       strings.Join(c.Notes, ", "),
		}
		for _, row := range c.Fretboard {
			rv := rowView{Label: row.Label}
			for _, cell := range row.Cells {
				rv.Cells = append(rv.Cells, cellView{
					Text:  MarkerText(cell.Role, cell.Note, opts.DisplayMode),
					Class: cellClass(cell.Role),
				})
			}
			cv.Rows = append(cv.Rows, rv)
		}
		page.Cards = append(page.Cards, cv)
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, page); err != nil {
		return "", fmt.Errorf("rendering cards: %w", err)
	}
	return sb.String(), nil
}

// WriteFile renders the cards and writes them to path.
func WriteFile(path string, s model.Song, count model.StringCount, outcomes []card.Outcome, opts Options) error {
	html, err := Render(s, count, outcomes, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0666); err != nil {
		return fmt.Errorf("%w: %v", persist.ErrWriteFailure, err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("cards").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} - Bass Cards</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
.meta { margin-bottom: 16px; }
.cards { display: grid; grid-template-columns: repeat({{.Columns}}, 1fr); gap: 12px; }
.card { border: 1px solid #b2bec3; border-radius: 6px; padding: 10px; page-break-inside: avoid; }
.card h3 { margin: 0 0 6px 0; }
.card .degree { color: #636e72; }
.card.error { border-color: #d63031; color: #d63031; }
table.fretboard { border-collapse: collapse; margin-top: 8px; }
table.fretboard td { border: 1px solid #dfe6e9; width: 26px; height: 22px; text-align: center; font-size: 12px; }
table.fretboard td.label { border: none; font-weight: bold; }
table.fretboard td.open { border-right: 3px double #2d3436; }
table.fretboard td.bass { background: #ff7675; color: white; font-weight: bold; }
table.fretboard td.chord { background: #74b9ff; color: white; font-weight: bold; }
table.fretboard td.fretnum { border: none; color: #636e72; font-size: 10px; }
</style>
</head>
<body>
<div class="meta">
<h1>{{.Title}}</h1>
<p>Author: {{.Author}} | Key: {{.Key}} | Bass: {{.Strings}}-string</p>
</div>
<div class="cards">
{{range .Cards}}
{{if .Err}}
<div class="card error">
<h3>{{.Symbol}}</h3>
<p>{{.Err}}</p>
</div>
{{else}}
<div class="card">
<h3>{{.Symbol}}{{if .Section}} <small>({{.Section}})</small>{{end}}</h3>
<p class="degree">Degree: {{.ScaleDegree}} | Bass: {{.BassNote}}</p>
<p>Notes: {{.Notes}}</p>
<table class="fretboard">
{{range .Rows}}
<tr>
<td class="label">{{.Label}}</td>
{{range $i, $c := .Cells}}
<td class="{{$c.Class}}{{if eq $i 0}} open{{end}}">{{$c.Text}}</td>
{{end}}
</tr>
{{end}}
<tr>
<td class="fretnum"></td>
{{range $.FretNums}}<td class="fretnum">{{.}}</td>{{end}}
</tr>
</table>
</div>
{{end}}
{{end}}
</div>
{{if .Print}}<script>window.print();</script>{{end}}
</body>
</html>
`))
