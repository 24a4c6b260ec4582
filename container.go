package binpack3d

import "github.com/google/uuid"

// Container is a rectangular axis-aligned volume into which items are
// packed. Image, Description, and ID are opaque metadata the engine
// never reads; of the three, the report package reads only ID.
type Container struct {
	Box

	ID          string
	Image       string
	Description string

	MaxWeight float64
	Items     []*Item
}

// NewContainer constructs an empty container with no weight limit.
func NewContainer(name string, width, height, depth int) *Container {
	return &Container{
		Box: Box{Name: name, Width: width, Height: height, Depth: depth},
		ID:  uuid.New().String(),
	}
}

// TotalWeight sums the weight of every currently placed item.
func (c *Container) TotalWeight() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Weight
	}
	return total
}

// scoreRotation returns (d_x/W)^2 + (d_y/H)^2 + (d_z/D)^2 for item
// under rotation, or 0 if any projected extent exceeds the container.
func (c *Container) scoreRotation(item *Item, rotation Rotation) float64 {
	d := rotation.Apply(item.Box.Dimension())
	if d.Width > c.Width || d.Height > c.Height || d.Depth > c.Depth {
		return 0
	}
	wr := float64(d.Width) / float64(c.Width)
	hr := float64(d.Height) / float64(c.Height)
	dr := float64(d.Depth) / float64(c.Depth)
	return wr*wr + hr*hr + dr*dr
}

// selectBestRotation evaluates scoreRotation for each of item's allowed
// rotations and returns the highest-scoring one, breaking ties toward
// the smallest rotation ordinal.
func (c *Container) selectBestRotation(item *Item) Rotation {
	best := item.AllowedRotations[0]
	bestScore := c.scoreRotation(item, best)
	for _, r := range item.AllowedRotations[1:] {
		s := c.scoreRotation(item, r)
		if s > bestScore || (s == bestScore && r < best) {
			best = r
			bestScore = s
		}
	}
	return best
}

// putItem sets item's position and best rotation, then attempts to
// place it: fails if the rotated item extends past the container on
// any axis, intersects an already-placed item, or would push the
// container's total weight past MaxWeight (when MaxWeight > 0). On
// success item is appended to c.Items and putItem returns true. On
// failure c.Items is unchanged, but item's Position/Rotation fields
// have still been overwritten — callers must treat them as meaningful
// only once putItem returns true.
func (c *Container) putItem(item *Item, position Position) bool {
	item.Position = position
	item.Rotation = c.selectBestRotation(item)
	d := item.ProjectedDimension()

	if position.X+d.Width > c.Width || position.Y+d.Height > c.Height || position.Z+d.Depth > c.Depth {
		return false
	}

	if c.MaxWeight > 0 && c.TotalWeight()+item.Weight > c.MaxWeight {
		return false
	}

	for _, placed := range c.Items {
		if intersects3D(position, d, placed.Position, placed.ProjectedDimension()) {
			return false
		}
	}

	c.Items = append(c.Items, item)
	return true
}

// removeItem removes the first item equal by identity (pointer
// equality) to item, reporting whether a removal occurred.
func (c *Container) removeItem(item *Item) bool {
	for i, placed := range c.Items {
		if placed == item {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
