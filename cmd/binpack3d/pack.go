package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack3d/report"
)

var packScenarioPath string

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack a scenario file and print a summary",
	RunE:  runPack,
}

func init() {
	packCmd.Flags().StringVar(&packScenarioPath, "scenario", "", "path to the scenario JSON file")
	packCmd.MarkFlagRequired("scenario")
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	d, err := LoadScenario(packScenarioPath)
	if err != nil {
		return err
	}

	d.Pack()

	for _, s := range report.Summarize(d) {
		fmt.Printf("%s: %d items, weight %.1f, efficiency %.1f%%\n",
			s.Name, len(s.Placements), s.TotalWeight(), s.Efficiency()*100)
		for _, p := range s.Placements {
			fmt.Printf("  %-20s pos=(%d,%d,%d) rot=%s\n", p.Name, p.Position.X, p.Position.Y, p.Position.Z, p.Rotation)
		}
	}

	if unfit := report.UnfitNames(d); len(unfit) > 0 {
		fmt.Printf("unfit: %v\n", unfit)
	}

	return nil
}
