package binpack3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemDefaults(t *testing.T) {
	it := NewItem("crate", 2, 3, 4)
	assert.Equal(t, "crate", it.Name)
	assert.Equal(t, "#000000", it.Color)
	assert.NotEmpty(t, it.ID)
	assert.Len(t, it.AllowedRotations, 6)
	assert.Equal(t, RotationWHD, it.Rotation)
}

func TestWithAllowedRotationsResetsCurrent(t *testing.T) {
	it := NewItem("crate", 2, 3, 4)
	it.WithAllowedRotations(RotationDWH, RotationWDH)
	assert.Equal(t, []Rotation{RotationDWH, RotationWDH}, it.AllowedRotations)
	assert.Equal(t, RotationDWH, it.Rotation)
}

func TestProjectedDimensionFollowsRotation(t *testing.T) {
	it := NewItem("crate", 2, 3, 4)
	it.Rotation = RotationHWD
	assert.Equal(t, Dimension{Width: 3, Height: 2, Depth: 4}, it.ProjectedDimension())
}

func TestItemTop(t *testing.T) {
	it := NewItem("crate", 2, 3, 4)
	it.Position = Position{X: 0, Y: 10, Z: 0}
	assert.Equal(t, 13, it.Top())
}

func TestHasAnyStackingRule(t *testing.T) {
	plain := NewItem("plain", 1, 1, 1)
	assert.False(t, plain.hasAnyStackingRule())

	withRule := NewItem("rule", 1, 1, 1)
	withRule.MaxLayersAbove = 2
	assert.True(t, withRule.hasAnyStackingRule())

	// A bare height_constraint with no stacking_height/max_layers_above
	// of its own must still count as a stacking rule, or
	// checkOwnConstraints/checkExistingConstraints skip it before ever
	// reaching forbidsAnyOverlapAbove.
	onlyHeightConstraint := NewItem("height-only", 1, 1, 1)
	onlyHeightConstraint.HeightConstraint = HeightConstraint{Set: true, Kind: HeightMaximum}
	assert.True(t, onlyHeightConstraint.hasAnyStackingRule())
}

func TestForbidsAnyOverlapAbove(t *testing.T) {
	plain := NewItem("plain", 1, 1, 1)
	assert.False(t, plain.forbidsAnyOverlapAbove())

	disabled := NewItem("disabled", 1, 1, 1)
	disabled.DisableStacking = true
	assert.True(t, disabled.forbidsAnyOverlapAbove())

	constrained := NewItem("constrained", 1, 1, 1)
	constrained.HeightConstraint = HeightConstraint{Set: true, Kind: HeightExact}
	assert.True(t, constrained.forbidsAnyOverlapAbove())

	// A nonzero stacking_height/max_layers_above alone does not imply
	// height_constraint: the reference implementation treats it as an
	// independent flag.
	onlyLayers := NewItem("only-layers", 1, 1, 1)
	onlyLayers.StackingHeight = 5
	assert.False(t, onlyLayers.forbidsAnyOverlapAbove())
}

func TestHeightConstraintKindDefaultsToMaximum(t *testing.T) {
	it := NewItem("plain", 1, 1, 1)
	assert.Equal(t, HeightMaximum, it.heightConstraintKind())
}
