package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jsphweid/basscard/chart"
	"github.com/jsphweid/basscard/file"
	"github.com/jsphweid/basscard/song"
	"github.com/jsphweid/basscard/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <chart-file>",
	Short: "Creates a chart report",
	Long:  `Creates a report of a chart: chord counts per root and section, plus the detected key.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(args[0])
	},
}

func report(path string) error {
	text, err := file.LoadChart(path)
	if err != nil {
		return err
	}
	chords := chart.Parse(text)

	rootCounts := make(map[string]int64)
	sectionCounts := make(map[string]int64)
	for _, c := range chords {
		rootCounts[c.Root]++
		sectionCounts[c.Section]++
	}

	roots := util.GetKeys(rootCounts)
	sort.Strings(roots)
	for _, root := range roots {
		fmt.Printf("root %v: %v\n", root, rootCounts[root])
	}

	sections := util.GetKeys(sectionCounts)
	sort.Strings(sections)
	for _, section := range sections {
		fmt.Printf("section %q: %v\n", section, sectionCounts[section])
	}

	var counts []int64
	for _, root := range roots {
		counts = append(counts, rootCounts[root])
	}
	fmt.Printf("total chords: %v\n", util.Sum(counts))
	fmt.Printf("detected key: %v\n", song.DetectKey(chords))
	return nil
}
