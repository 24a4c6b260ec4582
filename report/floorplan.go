package report

import (
	"fmt"

	"github.com/yofu/dxf"
)

// WriteFloorplanDXF draws a container's top-down (x/z) floorplan as a
// DXF drawing, one layer per placed item, each item's footprint as a
// closed rectangle of four LINE entities. This mirrors the teacher's
// DXF entity construction in the importer package, run in the write
// direction instead of the read direction.
func WriteFloorplanDXF(path string, s ContainerSummary) error {
	d := dxf.NewDrawing()

	d.Layer("CONTAINER", false)
	drawRectangle(d, 0, 0, float64(s.Dimension.Width), float64(s.Dimension.Depth))

	for i, p := range s.Placements {
		layer := fmt.Sprintf("ITEM_%d_%s", i, sanitizeLayerName(p.Name))
		d.Layer(layer, false)
		x0 := float64(p.Position.X)
		z0 := float64(p.Position.Z)
		drawRectangle(d, x0, z0, float64(p.Extent.Width), float64(p.Extent.Depth))
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save dxf floorplan: %w", err)
	}
	return nil
}

// drawRectangle emits the four edges of an axis-aligned rectangle in
// the z=0 plane, corners (x,z) to (x+w,z+h).
func drawRectangle(d *dxf.Drawing, x, z, w, h float64) {
	d.Line(x, z, 0, x+w, z, 0)
	d.Line(x+w, z, 0, x+w, z+h, 0)
	d.Line(x+w, z+h, 0, x, z+h, 0)
	d.Line(x, z+h, 0, x, z, 0)
}

// sanitizeLayerName replaces every character other than an ASCII
// letter, digit, or underscore with an underscore.
func sanitizeLayerName(name string) string {
	cleaned := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			cleaned = append(cleaned, r)
		default:
			cleaned = append(cleaned, '_')
		}
	}
	if len(cleaned) == 0 {
		return "ITEM"
	}
	return string(cleaned)
}
