package binpack3d

// Overlap-fraction thresholds for "above with overlap". Two different
// values are used by the reference implementation for reasons it never
// documents: a loose 50% threshold for counting/summing rules, and a
// strict 10% threshold for an item's own stacking-prohibition rule.
// An already-placed item's prohibition is stricter still: any positive
// footprint overlap above it is rejected (checkExistingConstraints).
// Reproduced literally; see spec.md §9.
const (
	countingOverlapFraction = 0.5
	stackingOverlapFraction = 0.1
)

// isAboveWithOverlap reports whether candidate is above base with
// footprint overlap at least frac of base's footprint area.
func isAboveWithOverlap(basePos Position, baseDim Dimension, candPos Position, candDim Dimension, frac float64) bool {
	if candPos.Y < basePos.Y+baseDim.Height {
		return false
	}
	overlapArea := footprintOverlapArea(basePos, baseDim, candPos, candDim)
	baseArea := baseDim.Width * baseDim.Depth
	if baseArea <= 0 {
		return overlapArea > 0
	}
	return float64(overlapArea) >= frac*float64(baseArea)
}

// checkOwnConstraints evaluates item's own stacking rules against
// container's current population (item is assumed already placed in
// container at position). Returns true only if every active rule
// holds.
func checkOwnConstraints(container *Container, item *Item, position Position) bool {
	if item.BottomLoadOnly && position.Y != 0 {
		return false
	}

	if !item.hasAnyStackingRule() {
		return true
	}

	dim := item.ProjectedDimension()
	top := position.Y + dim.Height

	if item.forbidsAnyOverlapAbove() {
		for _, other := range container.Items {
			if other == item {
				continue
			}
			if isAboveWithOverlap(position, dim, other.Position, other.ProjectedDimension(), stackingOverlapFraction) {
				return false
			}
		}
	}

	// EXACT's "the stack above must be present / must match exactly"
	// requirement is not enforceable at trial time: an item freshly
	// placed has nothing above it yet. Per spec.md §9 Open Questions,
	// EXACT is evaluated only at final container acceptance
	// (finalizeExactConstraints, called from the driver); here both
	// MAXIMUM and EXACT only enforce the "not exceeded" ceiling.
	if item.StackingHeight > 0 {
		maxAllowedTop := top + item.StackingHeight
		for _, other := range container.Items {
			if other == item {
				continue
			}
			if !isAboveWithOverlap(position, dim, other.Position, other.ProjectedDimension(), countingOverlapFraction) {
				continue
			}
			if other.Top() > maxAllowedTop {
				return false
			}
		}
	}

	if item.MaxLayersAbove > 0 {
		layers := map[int]bool{}
		for _, other := range container.Items {
			if other == item {
				continue
			}
			if isAboveWithOverlap(position, dim, other.Position, other.ProjectedDimension(), countingOverlapFraction) {
				layers[other.Position.Y] = true
			}
		}
		if len(layers) > item.MaxLayersAbove {
			return false
		}
	}

	if item.MaxWeightAbove > 0 {
		var weight float64
		for _, other := range container.Items {
			if other == item {
				continue
			}
			if isAboveWithOverlap(position, dim, other.Position, other.ProjectedDimension(), countingOverlapFraction) {
				weight += other.Weight
			}
		}
		if weight > item.MaxWeightAbove {
			return false
		}
	}

	return true
}

// checkExistingConstraints determines whether placing newItem at
// newPosition in container would break any already-placed item's
// stacking rules, counting newItem among the items "above" that
// existing item whenever it qualifies.
func checkExistingConstraints(container *Container, newItem *Item, newPosition Position) bool {
	newDim := newItem.ProjectedDimension()

	for _, existing := range container.Items {
		if existing == newItem {
			continue
		}
		if !existing.hasAnyStackingRule() {
			continue
		}

		existingDim := existing.ProjectedDimension()

		if existing.forbidsAnyOverlapAbove() {
			if newPosition.Y >= existing.Top() && footprintOverlapArea(existing.Position, existingDim, newPosition, newDim) > 0 {
				return false
			}
		}

		if !isAboveWithOverlap(existing.Position, existingDim, newPosition, newDim, countingOverlapFraction) {
			continue
		}

		if existing.StackingHeight > 0 {
			maxAllowedTop := existing.Top() + existing.StackingHeight
			if newPosition.Y+newDim.Height > maxAllowedTop {
				return false
			}
		}

		if existing.MaxLayersAbove > 0 {
			layers := map[int]bool{newPosition.Y: true}
			for _, other := range container.Items {
				if other == existing || other == newItem {
					continue
				}
				if isAboveWithOverlap(existing.Position, existingDim, other.Position, other.ProjectedDimension(), countingOverlapFraction) {
					layers[other.Position.Y] = true
				}
			}
			if len(layers) > existing.MaxLayersAbove {
				return false
			}
		}

		if existing.MaxWeightAbove > 0 {
			weight := newItem.Weight
			for _, other := range container.Items {
				if other == existing || other == newItem {
					continue
				}
				if isAboveWithOverlap(existing.Position, existingDim, other.Position, other.ProjectedDimension(), countingOverlapFraction) {
					weight += other.Weight
				}
			}
			if weight > existing.MaxWeightAbove {
				return false
			}
		}
	}

	return true
}

// violatesExactConstraints reports whether item's EXACT height_constraint
// (on stacking_height, requiring a non-empty stack above, or on
// max_layers_above, requiring the layer count to match exactly) is
// unmet by container's final population. Called once per container
// after a batch has finished packing into it — see driver.go's
// finalizeExactConstraints.
func violatesExactConstraints(container *Container, item *Item) bool {
	if item.heightConstraintKind() != HeightExact {
		return false
	}

	dim := item.ProjectedDimension()

	if item.StackingHeight > 0 {
		hasAbove := false
		for _, other := range container.Items {
			if other == item {
				continue
			}
			if isAboveWithOverlap(item.Position, dim, other.Position, other.ProjectedDimension(), countingOverlapFraction) {
				hasAbove = true
				break
			}
		}
		if !hasAbove {
			return true
		}
	}

	if item.MaxLayersAbove > 0 {
		layers := map[int]bool{}
		for _, other := range container.Items {
			if other == item {
				continue
			}
			if isAboveWithOverlap(item.Position, dim, other.Position, other.ProjectedDimension(), countingOverlapFraction) {
				layers[other.Position.Y] = true
			}
		}
		if len(layers) != item.MaxLayersAbove {
			return true
		}
	}

	return false
}
