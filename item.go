package binpack3d

import "github.com/google/uuid"

// HeightConstraintKind selects whether the stacking_height / max_layers_above
// rules below are a ceiling (MAXIMUM) or must be hit exactly (EXACT).
type HeightConstraintKind int

const (
	HeightMaximum HeightConstraintKind = iota
	HeightExact
)

// HeightConstraint decorates stacking_height and max_layers_above with a
// MAXIMUM/EXACT interpretation. Its mere presence (Set=true) also
// activates the strict "nothing may overlap above at any fraction"
// rule alongside disable_stacking, independent of whether
// stacking_height or max_layers_above are themselves nonzero — this
// mirrors the reference implementation's independent height_constrained
// flag (see DESIGN.md).
type HeightConstraint struct {
	Set  bool
	Kind HeightConstraintKind
}

// Item is a rectangular solid with a set of permitted rotations, an
// optional current placement, and optional stacking rules. Two items
// are equal iff they are the same instance (Go pointer identity); the
// ID field below is for external bookkeeping (reports, logs) only and
// plays no role in equality or in constraint self-skip checks.
type Item struct {
	Box

	ID    string
	Color string
	Weight float64

	AllowedRotations []Rotation
	Rotation         Rotation
	Position         Position

	// Stacking constraints. Zero value disables each rule.
	MaxLayersAbove   int
	MaxWeightAbove   float64
	StackingHeight   int
	HeightConstraint HeightConstraint
	BottomLoadOnly   bool
	DisableStacking  bool
}

// NewItem constructs an Item with the given native dimensions and all
// six rotations allowed. Color defaults to "#000000", matching the
// reference implementation's default.
func NewItem(name string, width, height, depth int) *Item {
	it := &Item{
		Box:              Box{Name: name, Width: width, Height: height, Depth: depth},
		ID:               uuid.New().String(),
		Color:            "#000000",
		AllowedRotations: append([]Rotation(nil), AllRotations...),
	}
	it.Rotation = it.AllowedRotations[0]
	return it
}

// WithAllowedRotations overrides the item's allowed rotation set. The
// set must be non-empty; the current rotation resets to its first
// entry. Returns the item for chaining.
func (it *Item) WithAllowedRotations(rotations ...Rotation) *Item {
	it.AllowedRotations = rotations
	if len(rotations) > 0 {
		it.Rotation = rotations[0]
	}
	return it
}

// ProjectedDimension returns the item's extents along the container's
// x, y, z axes under its current rotation.
func (it *Item) ProjectedDimension() Dimension {
	return it.Rotation.Apply(it.Box.Dimension())
}

// Top returns the item's top face y coordinate under its current
// position and rotation.
func (it *Item) Top() int {
	return it.Position.Y + it.ProjectedDimension().Height
}

// Footprint returns the item's current position and projected
// dimension, the two values every footprint-overlap computation needs.
func (it *Item) Footprint() (Position, Dimension) {
	return it.Position, it.ProjectedDimension()
}

// hasAnyStackingRule reports whether any stacking constraint is active,
// letting callers skip the constraint evaluator entirely for plain items.
func (it *Item) hasAnyStackingRule() bool {
	return it.BottomLoadOnly || it.DisableStacking || it.MaxLayersAbove > 0 ||
		it.MaxWeightAbove > 0 || it.StackingHeight > 0 || it.HeightConstraint.Set
}

// forbidsAnyOverlapAbove reports whether disable_stacking or a present
// height_constraint applies — the two rules that forbid any overlap
// above the item, even a fractional one, per spec.md §4.4.
func (it *Item) forbidsAnyOverlapAbove() bool {
	return it.DisableStacking || it.HeightConstraint.Set
}

// heightConstraintKind returns the kind to apply when evaluating
// stacking_height and max_layers_above, defaulting to MAXIMUM when no
// height_constraint was set.
func (it *Item) heightConstraintKind() HeightConstraintKind {
	return it.HeightConstraint.Kind
}
