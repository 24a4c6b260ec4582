package binpack3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainerDefaults(t *testing.T) {
	c := NewContainer("box", 10, 10, 10)
	assert.Equal(t, "box", c.Name)
	assert.NotEmpty(t, c.ID)
	assert.Zero(t, c.MaxWeight)
	assert.Empty(t, c.Items)
}

func TestTotalWeight(t *testing.T) {
	c := NewContainer("box", 10, 10, 10)
	a := NewItem("a", 1, 1, 1)
	a.Weight = 2.5
	b := NewItem("b", 1, 1, 1)
	b.Weight = 4
	require.True(t, c.putItem(a, Position{}))
	require.True(t, c.putItem(b, Position{X: 2}))
	assert.Equal(t, 6.5, c.TotalWeight())
}

func TestScoreRotationZeroWhenOversize(t *testing.T) {
	c := NewContainer("box", 5, 5, 5)
	it := NewItem("oversize", 10, 1, 1)
	assert.Zero(t, c.scoreRotation(it, RotationWHD))
}

func TestSelectBestRotationPrefersTightestFit(t *testing.T) {
	c := NewContainer("box", 10, 2, 10)
	it := NewItem("flat", 2, 10, 2)
	it.WithAllowedRotations(AllRotations...)
	got := c.selectBestRotation(it)
	d := got.Apply(it.Box.Dimension())
	assert.LessOrEqual(t, d.Height, 2)
}

func TestSelectBestRotationTiesBreakTowardSmallestOrdinal(t *testing.T) {
	// A cube-native item has an identical score under every rotation in
	// a cubic container: the two allowed rotations tie, so the result
	// must be whichever allowed rotation has the smallest ordinal,
	// regardless of AllowedRotations' order.
	c := NewContainer("box", 10, 10, 10)
	it := NewItem("cube", 2, 2, 2)
	it.WithAllowedRotations(RotationWDH, RotationWHD)
	assert.Equal(t, RotationWHD, c.selectBestRotation(it))
}

func TestPutItemRejectsOutOfBounds(t *testing.T) {
	c := NewContainer("box", 5, 5, 5)
	it := NewItem("too-big", 6, 6, 6)
	it.WithAllowedRotations(RotationWHD)
	assert.False(t, c.putItem(it, Position{}))
	assert.Empty(t, c.Items)
}

func TestPutItemRejectsIntersection(t *testing.T) {
	c := NewContainer("box", 10, 10, 10)
	a := NewItem("a", 5, 5, 5)
	require.True(t, c.putItem(a, Position{0, 0, 0}))

	b := NewItem("b", 5, 5, 5)
	assert.False(t, c.putItem(b, Position{2, 2, 2}))
	assert.Len(t, c.Items, 1)
}

func TestPutItemRejectsOverWeight(t *testing.T) {
	c := NewContainer("box", 10, 10, 10)
	c.MaxWeight = 5

	a := NewItem("a", 1, 1, 1)
	a.Weight = 4
	require.True(t, c.putItem(a, Position{0, 0, 0}))

	b := NewItem("b", 1, 1, 1)
	b.Weight = 2
	assert.False(t, c.putItem(b, Position{1, 0, 0}))
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 4.0, c.TotalWeight())
}

func TestPutItemAllowsWeightAtExactLimit(t *testing.T) {
	c := NewContainer("box", 10, 10, 10)
	c.MaxWeight = 6

	a := NewItem("a", 1, 1, 1)
	a.Weight = 4
	require.True(t, c.putItem(a, Position{0, 0, 0}))

	b := NewItem("b", 1, 1, 1)
	b.Weight = 2
	assert.True(t, c.putItem(b, Position{1, 0, 0}))
	assert.Equal(t, 6.0, c.TotalWeight())
}

func TestPutItemMutatesPositionEvenOnFailure(t *testing.T) {
	c := NewContainer("box", 5, 5, 5)
	it := NewItem("too-big", 6, 1, 1)
	it.WithAllowedRotations(RotationWHD)
	ok := c.putItem(it, Position{X: 1})
	assert.False(t, ok)
	assert.Equal(t, Position{X: 1}, it.Position)
}

func TestRemoveItem(t *testing.T) {
	c := NewContainer("box", 10, 10, 10)
	a := NewItem("a", 2, 2, 2)
	require.True(t, c.putItem(a, Position{}))
	assert.True(t, c.removeItem(a))
	assert.Empty(t, c.Items)
	assert.False(t, c.removeItem(a))
}
