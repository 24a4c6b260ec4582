package binpack3d

// Dimension is an integer (width, height, depth) triple in the fixed
// unit the caller scaled to at the system boundary (see scale.go).
type Dimension struct {
	Width, Height, Depth int
}

// Volume returns the product of the three extents.
func (d Dimension) Volume() int {
	return d.Width * d.Height * d.Depth
}

// Position is an integer (x, y, z) coordinate of an item's minimum
// corner within its container. Y is "up".
type Position struct {
	X, Y, Z int
}

// Add returns the component-wise sum of p and d treated as a vector.
func (p Position) Add(d Dimension) Position {
	return Position{X: p.X + d.Width, Y: p.Y + d.Height, Z: p.Z + d.Depth}
}

// Box is a named axis-aligned extent: the common base shared by items
// and containers.
type Box struct {
	Name   string
	Width  int
	Height int
	Depth  int
}

// Dimension returns the box's native (unrotated) extents.
func (b Box) Dimension() Dimension {
	return Dimension{Width: b.Width, Height: b.Height, Depth: b.Depth}
}

// Volume returns width * height * depth.
func (b Box) Volume() int {
	return b.Width * b.Height * b.Depth
}

// Rotation is one of the six permutations of an item's native (w, h, d)
// onto a container's (x, y, z) axes. Ordinal order is the tie-break
// order used by selectBestRotation: whd < hwd < hdw < dhw < dwh < wdh.
type Rotation int

const (
	RotationWHD Rotation = iota
	RotationHWD
	RotationHDW
	RotationDHW
	RotationDWH
	RotationWDH
)

// AllRotations is the default allowed-rotation set, in ordinal order.
var AllRotations = []Rotation{
	RotationWHD, RotationHWD, RotationHDW, RotationDHW, RotationDWH, RotationWDH,
}

func (r Rotation) String() string {
	switch r {
	case RotationWHD:
		return "whd"
	case RotationHWD:
		return "hwd"
	case RotationHDW:
		return "hdw"
	case RotationDHW:
		return "dhw"
	case RotationDWH:
		return "dwh"
	case RotationWDH:
		return "wdh"
	default:
		return "unknown"
	}
}

// Apply permutes native to the container's (x, y, z) axes under r.
func (r Rotation) Apply(native Dimension) Dimension {
	w, h, d := native.Width, native.Height, native.Depth
	switch r {
	case RotationWHD:
		return Dimension{w, h, d}
	case RotationHWD:
		return Dimension{h, w, d}
	case RotationHDW:
		return Dimension{h, d, w}
	case RotationDHW:
		return Dimension{d, h, w}
	case RotationDWH:
		return Dimension{d, w, h}
	case RotationWDH:
		return Dimension{w, d, h}
	default:
		return native
	}
}

// intersects3D reports whether two axis-aligned boxes, placed at pa/pb
// with projected extents da/db, overlap with positive measure along
// all three axes. Touching faces (one's max equals the other's min on
// an axis) do not count as intersecting.
func intersects3D(pa Position, da Dimension, pb Position, db Dimension) bool {
	return overlap1D(pa.X, da.Width, pb.X, db.Width) &&
		overlap1D(pa.Y, da.Height, pb.Y, db.Height) &&
		overlap1D(pa.Z, da.Depth, pb.Z, db.Depth)
}

func overlap1D(a0, aLen, b0, bLen int) bool {
	aMax := a0 + aLen
	bMax := b0 + bLen
	lo := a0
	if b0 > lo {
		lo = b0
	}
	hi := aMax
	if bMax < hi {
		hi = bMax
	}
	return hi > lo
}

// footprintOverlapArea returns the area of intersection of a's and b's
// xz-projected rectangles (their footprints).
func footprintOverlapArea(pa Position, da Dimension, pb Position, db Dimension) int {
	xOverlap := axisOverlapLength(pa.X, da.Width, pb.X, db.Width)
	zOverlap := axisOverlapLength(pa.Z, da.Depth, pb.Z, db.Depth)
	return xOverlap * zOverlap
}

func axisOverlapLength(a0, aLen, b0, bLen int) int {
	aMax := a0 + aLen
	bMax := b0 + bLen
	lo := a0
	if b0 > lo {
		lo = b0
	}
	hi := aMax
	if bMax < hi {
		hi = bMax
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}
