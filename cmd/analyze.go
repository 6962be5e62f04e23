package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/basscard/card"
	"github.com/jsphweid/basscard/chart"
	"github.com/jsphweid/basscard/export"
	"github.com/jsphweid/basscard/file"
	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/persist"
	"github.com/jsphweid/basscard/song"
)

var (
	analyzeTitle   string
	analyzeAuthor  string
	analyzeKey     string
	analyzeStrings int
	analyzeMode    int
	analyzeOut     string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "song title")
	analyzeCmd.Flags().StringVar(&analyzeAuthor, "author", "", "song author")
	analyzeCmd.Flags().StringVar(&analyzeKey, "key", "", "key override, e.g. Em (detected when empty)")
	analyzeCmd.Flags().IntVar(&analyzeStrings, "strings", 4, "bass string count (4 or 5)")
	analyzeCmd.Flags().IntVar(&analyzeMode, "mode", int(model.Standard), "display mode: 1 standard, 2 educational")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "also save a cards document to this path")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chart-file>",
	Short: "Analyzes a chord chart",
	Long:  `Analyzes a chord chart and prints a bass card per chord.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(args[0])
	},
}

func loadSong(path, title, author, key string) (model.Song, error) {
	text, err := file.LoadChart(path)
	if err != nil {
		return model.Song{}, err
	}
	return song.New(title, author, key, chart.Parse(text)), nil
}

func analyze(path string) error {
	s, err := loadSong(path, analyzeTitle, analyzeAuthor, analyzeKey)
	if err != nil {
		return err
	}

	count := model.StringCount(analyzeStrings)
	mode := model.DisplayMode(analyzeMode)
	outcomes := card.BuildAll(s.Chords, s.Key, count)

	fmt.Printf("Title: %v\nAuthor: %v\nKey: %v\nBass: %v-string\n", s.Title, s.Author, s.Key, analyzeStrings)
	for _, out := range outcomes {
		if out.Err != nil {
			fmt.Printf("\n%v: %v\n", out.Card.Chord.Symbol, out.Err)
			continue
		}
		printCard(out.Card, mode)
	}

	if analyzeOut != "" {
		settings := model.SettingsDoc{StringCount: analyzeStrings, DisplayMode: analyzeMode}
		if err := persist.Save(analyzeOut, s, settings); err != nil {
			return err
		}
		fmt.Printf("\nSaved cards to %v\n", analyzeOut)
	}
	return nil
}

func printCard(c model.Card, mode model.DisplayMode) {
	fmt.Printf("\nChord: %v", c.Chord.Symbol)
	if c.Chord.Section != "" {
		fmt.Printf(" (%v)", c.Chord.Section)
	}
	fmt.Printf("\n  Degree: %v  Bass: %v  Notes: %v\n", c.ScaleDegree, c.Chord.BassNote, c.Notes)
	for _, row := range c.Fretboard {
		fmt.Printf("  %v |", row.Label)
		for i, cell := range row.Cells {
			fmt.Printf(" %-2v", export.MarkerText(cell.Role, cell.Note, mode))
			if i == 0 {
				fmt.Printf(" |")
			}
		}
		fmt.Println()
	}
}
