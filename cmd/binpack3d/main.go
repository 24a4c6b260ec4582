// Command binpack3d loads a JSON scenario describing containers and
// items, runs the packing engine, and optionally writes a report
// artifact (PDF, XLSX, QR label, or DXF floorplan).
//
// Usage:
//
//	binpack3d pack --scenario scenario.json
//	binpack3d report --scenario scenario.json --format pdf --out result.pdf
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "binpack3d",
	Short: "3D bin packing with stacking constraints",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
