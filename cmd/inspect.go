package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/basscard/persist"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <cards-file>",
	Short: "Inspects a cards document",
	Long:  `Inspects a saved cards document: song metadata, settings and chords.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, settings, err := persist.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("title: %v\n", s.Title)
	fmt.Printf("author: %v\n", s.Author)
	fmt.Printf("key: %v\n", s.Key)
	fmt.Printf("string_count: %v\n", settings.StringCount)
	fmt.Printf("display_mode: %v\n", settings.DisplayMode)
	for _, c := range s.Chords {
		fmt.Printf("chord: %v section: %v root: %v suffix: %v bass: %v\n",
			c.Symbol, c.Section, c.Root, c.Suffix, c.BassNote)
	}
	return nil
}
