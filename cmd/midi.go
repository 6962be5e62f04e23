package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/basscard/midi"
)

var (
	midiTitle string
	midiOut   string
)

func init() {
	midiCmd.Flags().StringVar(&midiTitle, "title", "", "song title")
	midiCmd.Flags().StringVarP(&midiOut, "out", "o", "bassline.mid", "output path")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <chart-file>",
	Short: "Writes a bass-line MIDI file",
	Long:  `Writes the chart's bass line (one whole note per chord) as a Standard MIDI File.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSong(args[0], midiTitle, "", "")
		if err != nil {
			return err
		}
		if err := midi.WriteFile(midiOut, s); err != nil {
			return err
		}
		fmt.Printf("Wrote %v notes to %v\n", len(s.Chords), midiOut)
		return nil
	},
}
