package report

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/binpack3d"
)

// layerColors mirrors the teacher's per-index color cycling, applied
// here per distinct y-layer rather than per placement order.
var layerColors = []struct{ R, G, B int }{
	{76, 175, 80},
	{33, 150, 243},
	{255, 152, 0},
	{156, 39, 176},
	{0, 188, 212},
	{244, 67, 54},
	{255, 235, 59},
	{121, 85, 72},
}

const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// WritePDF renders one top-down (x/z) floorplan page per container,
// color-coded by y-layer, followed by a summary page listing unfit
// items. Containers with no placements are skipped.
func WritePDF(path string, d *binpack3d.Driver) error {
	summaries := Summarize(d)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, s := range summaries {
		if len(s.Placements) == 0 {
			continue
		}
		pdf.AddPage()
		renderContainerPage(pdf, s, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, summaries, UnfitNames(d))

	return pdf.OutputFileAndClose(path)
}

func renderContainerPage(pdf *fpdf.Fpdf, s ContainerSummary, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Container %d: %s (%d x %d x %d)", pageNum, s.Name, s.Dimension.Width, s.Dimension.Height, s.Dimension.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Weight: %.1f | Volume efficiency: %.1f%%",
		len(s.Placements), s.TotalWeight(), s.Efficiency()*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 20

	scaleX := drawWidth / float64(s.Dimension.Width)
	scaleZ := drawHeight / float64(s.Dimension.Depth)
	scale := math.Min(scaleX, scaleZ)

	canvasW := float64(s.Dimension.Width) * scale
	canvasD := float64(s.Dimension.Depth) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetZ := drawAreaTop

	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetZ, canvasW, canvasD, "FD")

	layers := distinctYLayers(s.Placements)

	for _, p := range s.Placements {
		col := layerColors[layerIndex(layers, p.Position.Y)%len(layerColors)]
		px := offsetX + float64(p.Position.X)*scale
		pz := offsetZ + float64(p.Position.Z)*scale
		pw := float64(p.Extent.Width) * scale
		pd := float64(p.Extent.Depth) * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, pz, pw, pd, "FD")

		if pw > 15 && pd > 8 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%s (y=%d)", p.Name, p.Position.Y)
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, pz+pd/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	pdf.SetTextColor(0, 0, 0)
	drawLegend(pdf, s, offsetZ+canvasD+5)
}

func distinctYLayers(placements []Placement) []int {
	seen := map[int]bool{}
	var layers []int
	for _, p := range placements {
		if !seen[p.Position.Y] {
			seen[p.Position.Y] = true
			layers = append(layers, p.Position.Y)
		}
	}
	return layers
}

func layerIndex(layers []int, y int) int {
	for i, v := range layers {
		if v == y {
			return i
		}
	}
	return 0
}

func drawLegend(pdf *fpdf.Fpdf, s ContainerSummary, startY float64) {
	if len(s.Placements) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight
	y := startY

	for _, p := range s.Placements {
		label := fmt.Sprintf("%s %dx%dx%d @ y=%d", p.Name, p.Extent.Width, p.Extent.Height, p.Extent.Depth, p.Position.Y)
		labelW := pdf.GetStringWidth(label) + 4
		if xPos+labelW > maxX {
			y += 5
			xPos = marginLeft
		}
		pdf.SetXY(xPos, y)
		pdf.CellFormat(labelW, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, summaries []ContainerSummary, unfit []string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	colWidths := []float64{60, 60, 40, 40, 50}
	headers := []string{"Container", "Dimensions", "Items", "Weight", "Efficiency"}
	xPos := marginLeft
	for i, h := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, s := range summaries {
		xPos = marginLeft
		row := []string{
			s.Name,
			fmt.Sprintf("%d x %d x %d", s.Dimension.Width, s.Dimension.Height, s.Dimension.Depth),
			fmt.Sprintf("%d", len(s.Placements)),
			fmt.Sprintf("%.1f", s.TotalWeight()),
			fmt.Sprintf("%.1f%%", s.Efficiency()*100),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(unfit) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unfit Items", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, name := range unfit {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+name, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by binpack3d", "", 0, "C", false, 0, "")
}
