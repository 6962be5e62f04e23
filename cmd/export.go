package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/basscard/card"
	"github.com/jsphweid/basscard/export"
	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/persist"
)

var (
	exportTitle   string
	exportAuthor  string
	exportColumns int
	exportStrings int
	exportMode    int
	exportPrint   bool
	exportOut     string
)

func init() {
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "song title")
	exportCmd.Flags().StringVar(&exportAuthor, "author", "", "song author")
	exportCmd.Flags().IntVar(&exportColumns, "columns", 1, "card columns (1-4)")
	exportCmd.Flags().IntVar(&exportStrings, "strings", 4, "bass string count (4 or 5)")
	exportCmd.Flags().IntVar(&exportMode, "mode", int(model.Standard), "display mode: 1 standard, 2 educational")
	exportCmd.Flags().BoolVar(&exportPrint, "print", false, "emit a self-printing page")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (random name when empty)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <chart-file|cards-file>",
	Short: "Exports bass cards as HTML",
	Long: `Exports bass cards as an HTML page. The input is either a chord
chart or a previously saved cards document (.yaml/.yml).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportHTML(args[0])
	},
}

func exportHTML(path string) error {
	var s model.Song
	count := model.StringCount(exportStrings)
	mode := model.DisplayMode(exportMode)

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		loaded, settings, err := persist.Load(path)
		if err != nil {
			return err
		}
		s = loaded
		count = model.StringCount(settings.StringCount)
		mode = model.DisplayMode(settings.DisplayMode)
	} else {
		loaded, err := loadSong(path, exportTitle, exportAuthor, "")
		if err != nil {
			return err
		}
		s = loaded
	}

	outcomes := card.BuildAll(s.Chords, s.Key, count)

	out := exportOut
	if out == "" {
		out = uuid.New().String() + ".html"
	}

	opts := export.Options{Columns: exportColumns, DisplayMode: mode, PrintMode: exportPrint}
	if err := export.WriteFile(out, s, count, outcomes, opts); err != nil {
		return err
	}
	fmt.Printf("Exported %v cards to %v\n", len(outcomes), out)
	return nil
}
