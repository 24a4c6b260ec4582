// Package report renders a completed binpack3d.Driver's results to PDF
// floorplans, an XLSX placement manifest, per-container QR labels, and
// DXF floorplans. It is a downstream collaborator of the engine: it
// only reads Driver.Containers()/UnfitItems(), never the driver's
// internals.
package report

import "github.com/piwi3910/binpack3d"

// Placement is a flattened, serializable view of one placed item.
type Placement struct {
	ItemID   string
	Name     string
	Color    string
	Weight   float64
	Rotation binpack3d.Rotation
	Position binpack3d.Position
	Extent   binpack3d.Dimension
}

// ContainerSummary is a flattened, serializable view of one container
// and everything placed in it.
type ContainerSummary struct {
	ContainerID string
	Name        string
	Dimension   binpack3d.Dimension
	MaxWeight   float64
	Placements  []Placement
}

// TotalWeight sums the weight of every placement in the container.
func (s ContainerSummary) TotalWeight() float64 {
	var total float64
	for _, p := range s.Placements {
		total += p.Weight
	}
	return total
}

// UsedVolume sums the projected volume of every placement.
func (s ContainerSummary) UsedVolume() int {
	var total int
	for _, p := range s.Placements {
		total += p.Extent.Volume()
	}
	return total
}

// Efficiency returns the fraction of the container's volume occupied
// by placements, or 0 for a zero-volume container.
func (s ContainerSummary) Efficiency() float64 {
	v := s.Dimension.Volume()
	if v <= 0 {
		return 0
	}
	return float64(s.UsedVolume()) / float64(v)
}

// Summarize flattens a driver's containers into the shape every
// writer in this package consumes.
func Summarize(d *binpack3d.Driver) []ContainerSummary {
	summaries := make([]ContainerSummary, 0, len(d.Containers()))
	for _, c := range d.Containers() {
		s := ContainerSummary{
			ContainerID: c.ID,
			Name:        c.Name,
			Dimension:   c.Dimension(),
			MaxWeight:   c.MaxWeight,
		}
		for _, it := range c.Items {
			s.Placements = append(s.Placements, Placement{
				ItemID:   it.ID,
				Name:     it.Name,
				Color:    it.Color,
				Weight:   it.Weight,
				Rotation: it.Rotation,
				Position: it.Position,
				Extent:   it.ProjectedDimension(),
			})
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// UnfitNames returns the name of every item the driver could not place.
func UnfitNames(d *binpack3d.Driver) []string {
	names := make([]string, 0, len(d.UnfitItems()))
	for _, it := range d.UnfitItems() {
		names = append(names, it.Name)
	}
	return names
}
