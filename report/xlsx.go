package report

import (
	"fmt"

	"github.com/piwi3910/binpack3d"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes one sheet per container listing its placements
// (name, position, rotation, extent, weight), plus a summary sheet
// that also lists the unfit items. There is no separate unfit sheet.
func WriteXLSX(path string, d *binpack3d.Driver) error {
	summaries := Summarize(d)

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, summaries, UnfitNames(d)); err != nil {
		return err
	}

	for _, s := range summaries {
		if err := writeContainerSheet(f, s); err != nil {
			return err
		}
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, summaries []ContainerSummary, unfit []string) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	headers := []string{"Container", "Width", "Height", "Depth", "Items", "Weight", "Efficiency"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, s := range summaries {
		values := []any{s.Name, s.Dimension.Width, s.Dimension.Height, s.Dimension.Depth,
			len(s.Placements), s.TotalWeight(), s.Efficiency()}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	if len(unfit) > 0 {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Unfit items")
		row++
		for _, name := range unfit {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
			row++
		}
	}

	return nil
}

func writeContainerSheet(f *excelize.File, s ContainerSummary) error {
	sheet := sheetName(s)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet for container %s: %w", s.Name, err)
	}

	headers := []string{"Item", "X", "Y", "Z", "Width", "Height", "Depth", "Rotation", "Weight"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range s.Placements {
		values := []any{
			p.Name, p.Position.X, p.Position.Y, p.Position.Z,
			p.Extent.Width, p.Extent.Height, p.Extent.Depth,
			p.Rotation.String(), p.Weight,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return nil
}

// sheetName truncates to Excel's 31-character sheet name limit and
// strips characters the format disallows.
func sheetName(s ContainerSummary) string {
	name := s.Name
	if name == "" {
		name = s.ContainerID
	}
	cleaned := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			continue
		default:
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}
	if len(cleaned) == 0 {
		return "Container"
	}
	return string(cleaned)
}
