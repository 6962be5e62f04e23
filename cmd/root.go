package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "basscard",
	Short: "Bass chord chart assistant",
	Long:  `Parses chord charts and builds per-chord bass fretboard cards.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
