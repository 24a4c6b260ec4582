package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack3d"
	"github.com/piwi3910/binpack3d/report"
)

var (
	reportScenarioPath string
	reportFormat       string
	reportOutPath      string
	reportContainer    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Pack a scenario file and write a report artifact",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportScenarioPath, "scenario", "", "path to the scenario JSON file")
	reportCmd.Flags().StringVar(&reportFormat, "format", "pdf", "report format: pdf, xlsx, qrcode, dxf")
	reportCmd.Flags().StringVar(&reportOutPath, "out", "", "output file path")
	reportCmd.Flags().StringVar(&reportContainer, "container", "", "container name (qrcode and dxf formats, first container by default)")
	reportCmd.MarkFlagRequired("scenario")
	reportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	d, err := LoadScenario(reportScenarioPath)
	if err != nil {
		return err
	}
	d.Pack()

	switch reportFormat {
	case "pdf":
		return report.WritePDF(reportOutPath, d)
	case "xlsx":
		return report.WriteXLSX(reportOutPath, d)
	case "qrcode":
		s, err := selectContainer(d)
		if err != nil {
			return err
		}
		png, err := report.ContainerQRCode(s, 256)
		if err != nil {
			return err
		}
		return os.WriteFile(reportOutPath, png, 0644)
	case "dxf":
		s, err := selectContainer(d)
		if err != nil {
			return err
		}
		return report.WriteFloorplanDXF(reportOutPath, s)
	default:
		return fmt.Errorf("unknown report format %q", reportFormat)
	}
}

// selectContainer picks the summary named by --container, or the
// first container in the driver's order when the flag is unset. Pack
// sorts containers by ascending volume, so that is the smallest
// container, not necessarily the first one in the scenario file.
func selectContainer(d *binpack3d.Driver) (report.ContainerSummary, error) {
	summaries := report.Summarize(d)
	if len(summaries) == 0 {
		return report.ContainerSummary{}, fmt.Errorf("scenario has no containers")
	}
	if reportContainer == "" {
		return summaries[0], nil
	}
	for _, s := range summaries {
		if s.Name == reportContainer {
			return s, nil
		}
	}
	return report.ContainerSummary{}, fmt.Errorf("no container named %q", reportContainer)
}
