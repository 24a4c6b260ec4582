package binpack3d

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// defaultPackBudget is the total wall-clock budget for a single Pack()
// call, matching the reference implementation's MAX_PACK_TIME_MS.
const defaultPackBudget = 30 * time.Second

// Driver orders items and containers, drives placements through
// Container.putItem and the constraint evaluator, escalates to larger
// containers, and collects items that could not be placed. A Driver
// instance owns its own containers, items, and unfit list; pack() is
// synchronous and single-threaded, so no locking is required.
type Driver struct {
	// PackBudget bounds the total wall-clock time Pack() may spend
	// searching for placements; zero selects the 30s default. Any
	// items still unresolved when the budget expires are appended to
	// the unfit list.
	PackBudget time.Duration

	// Logger receives structured trace events (escalation, constraint
	// rejection, budget expiry). Defaults to a no-op logger.
	Logger *zap.Logger

	// now is overridable so tests can simulate budget expiry without
	// sleeping.
	now func() time.Time

	containers []*Container
	items      []*Item
	unfit      []*Item
}

// NewDriver constructs an empty Driver with default budget and a no-op
// logger.
func NewDriver() *Driver {
	return &Driver{
		PackBudget: defaultPackBudget,
		Logger:     zap.NewNop(),
		now:        time.Now,
	}
}

func (d *Driver) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d *Driver) budget() time.Duration {
	if d.PackBudget <= 0 {
		return defaultPackBudget
	}
	return d.PackBudget
}

func (d *Driver) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}

// AddContainer registers a container with the driver.
func (d *Driver) AddContainer(c *Container) {
	d.containers = append(d.containers, c)
}

// AddItem registers an item with the driver.
func (d *Driver) AddItem(it *Item) {
	d.items = append(d.items, it)
}

// Containers returns the registered containers, each listing its
// placed items in insertion order.
func (d *Driver) Containers() []*Container {
	return d.containers
}

// Items returns every item registered with the driver, whether placed
// or unfit.
func (d *Driver) Items() []*Item {
	return d.items
}

// UnfitItems returns the items Pack could not place in any container.
func (d *Driver) UnfitItems() []*Item {
	return d.unfit
}

// Pack consumes the driver's registered items, placing each into
// exactly one container's item list or the unfit list. Calling Pack
// twice on identical inputs and tie-breaks produces identical results.
func (d *Driver) Pack() {
	sortContainersByVolume(d.containers)
	queue := sortItemsForPacking(d.items)

	deadline := d.clock().Add(d.budget())

	for len(queue) > 0 {
		if d.clock().After(deadline) {
			d.logger().Warn("pack budget expired; remaining items marked unfit", zap.Int("remaining", len(queue)))
			d.unfit = append(d.unfit, queue...)
			return
		}

		head := queue[0]
		container := d.findFittedBin(head)
		if container == nil {
			d.logger().Debug("no container fits item", zap.String("item", head.ID))
			d.unfit = append(d.unfit, head)
			queue = queue[1:]
			continue
		}

		unpacked := d.packToBin(container, queue, deadline)
		queue = unpacked
	}
}

// sortContainersByVolume orders containers ascending by volume so the
// engine prefers the smallest container that still fits.
func sortContainersByVolume(containers []*Container) {
	sort.SliceStable(containers, func(i, j int) bool {
		return containers[i].Volume() < containers[j].Volume()
	})
}

// sortItemsForPacking returns a new slice ordered by the three-tier
// key from spec.md §4.5: items with max_layers_above first, then items
// with any other stacking constraint, then descending volume. Input
// order is the tie-break within a tier (stable sort).
func sortItemsForPacking(items []*Item) []*Item {
	ordered := append([]*Item(nil), items...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ti, tj := packingTier(ordered[i]), packingTier(ordered[j])
		if ti != tj {
			return ti < tj
		}
		return ordered[i].Box.Volume() > ordered[j].Box.Volume()
	})
	return ordered
}

func packingTier(it *Item) int {
	switch {
	case it.MaxLayersAbove > 0:
		return 0
	case it.hasAnyStackingRule():
		return 1
	default:
		return 2
	}
}

var originPosition = Position{X: 0, Y: 0, Z: 0}

// findFittedBin scans containers in order and returns the first one in
// which item can be placed at the origin (geometry and both constraint
// checks). The probe placement is undone before returning, since the
// real placement happens in packToBin.
func (d *Driver) findFittedBin(item *Item) *Container {
	for _, c := range d.containers {
		if !c.putItem(item, originPosition) {
			continue
		}
		ok := checkOwnConstraints(c, item, originPosition) && checkExistingConstraints(c, item, originPosition)
		c.removeItem(item)
		if ok {
			return c
		}
	}
	return nil
}

// getBiggerBinThan returns the first container in the driver's sorted
// list with strictly greater volume than other, or nil.
func (d *Driver) getBiggerBinThan(other *Container) *Container {
	for _, c := range d.containers {
		if c.Volume() > other.Volume() {
			return c
		}
	}
	return nil
}

// candidatePosition describes one axis-extension placement candidate
// generated from an already-placed item.
type candidatePosition struct {
	position Position
}

// generateCandidates produces, for every item already placed in
// container, the three axis-extension positions (abutting its top,
// far-depth face, and right face, in that order), sorted by ascending
// Manhattan distance to the origin.
func generateCandidates(container *Container) []candidatePosition {
	candidates := make([]candidatePosition, 0, len(container.Items)*3)
	for _, placed := range container.Items {
		dim := placed.ProjectedDimension()
		pos := placed.Position
		candidates = append(candidates,
			candidatePosition{position: Position{X: pos.X, Y: pos.Y + dim.Height, Z: pos.Z}},
			candidatePosition{position: Position{X: pos.X, Y: pos.Y, Z: pos.Z + dim.Depth}},
			candidatePosition{position: Position{X: pos.X + dim.Width, Y: pos.Y, Z: pos.Z}},
		)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return manhattan(candidates[i].position) < manhattan(candidates[j].position)
	})
	return candidates
}

func manhattan(p Position) int {
	return p.X + p.Y + p.Z
}

// packToBin places queue[0] at the origin, then each subsequent item at
// the first viable axis-extension candidate, escalating to a strictly
// larger container whenever an item can't be placed anywhere in the
// current one. Returns the subset of queue it could not place.
//
// Escalation recurses on the tail of the queue (item i and everything
// after it) rather than on item i alone: once that recursive call has
// run, every item from i onward has either been committed to the
// larger container (or one further still) or come back in its
// leftover slice, so this loop must not touch index i+1 again here —
// doing so would re-offer an already-placed item to this container
// and fail it against its own now-identical position. This departs
// from a literal per-item reading of escalation in favor of the
// conservation the "terminate the loop" framing actually requires; see
// DESIGN.md.
func (d *Driver) packToBin(container *Container, queue []*Item, deadline time.Time) []*Item {
	// A single invocation may use at most half of the total budget, and
	// never runs past the overall Pack deadline.
	callDeadline := d.clock().Add(d.budget() / 2)
	if callDeadline.After(deadline) {
		callDeadline = deadline
	}

	head := queue[0]
	if !d.tryPlace(container, head, originPosition) {
		if bigger := d.getBiggerBinThan(container); bigger != nil {
			d.logger().Debug("escalating first item to bigger container",
				zap.String("item", head.ID), zap.String("container", bigger.ID))
			return d.packToBin(bigger, queue, deadline)
		}
		return queue
	}

	var unpacked []*Item

	for i := 1; i < len(queue); i++ {
		if d.clock().After(callDeadline) {
			unpacked = append(unpacked, queue[i:]...)
			break
		}

		item := queue[i]
		fitted := false

		for _, cand := range generateCandidates(container) {
			if d.tryPlace(container, item, cand.position) {
				fitted = true
				break
			}
		}

		if fitted {
			continue
		}

		bigger := d.getBiggerBinThan(container)
		if bigger == nil {
			unpacked = append(unpacked, item)
			continue
		}

		d.logger().Debug("escalating item to bigger container",
			zap.String("item", item.ID), zap.String("container", bigger.ID))

		rest := append([]*Item{item}, queue[i+1:]...)
		left := d.packToBin(bigger, rest, deadline)
		unpacked = append(unpacked, left...)

		d.finalizeExactConstraints(container)
		return unpacked
	}

	d.finalizeExactConstraints(container)

	return unpacked
}

// tryPlace attempts a geometric placement followed by both constraint
// checks, rolling back on any failure.
func (d *Driver) tryPlace(container *Container, item *Item, position Position) bool {
	if !container.putItem(item, position) {
		return false
	}
	if !checkOwnConstraints(container, item, position) || !checkExistingConstraints(container, item, position) {
		container.removeItem(item)
		d.logger().Debug("rolled back placement on constraint violation",
			zap.String("item", item.ID), zap.String("container", container.ID))
		return false
	}
	return true
}

// finalizeExactConstraints removes, from container, any placed item
// whose EXACT height_constraint is unmet by the container's final
// population (see spec.md §9 Open Questions and DESIGN.md). Removed
// items are appended directly to the driver's unfit list; they do not
// re-enter the queue and are not offered to any other container.
func (d *Driver) finalizeExactConstraints(container *Container) {
	var violators []*Item
	for _, it := range container.Items {
		if violatesExactConstraints(container, it) {
			violators = append(violators, it)
		}
	}
	for _, it := range violators {
		container.removeItem(it)
		d.logger().Warn("EXACT height_constraint unmet at final acceptance; item displaced",
			zap.String("item", it.ID), zap.String("container", container.ID))
		d.unfit = append(d.unfit, it)
	}
}
