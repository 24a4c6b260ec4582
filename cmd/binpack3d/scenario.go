package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/binpack3d"
)

// ContainerSpec is the JSON shape of one container entry in a scenario
// file.
type ContainerSpec struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Depth     int     `json:"depth"`
	MaxWeight float64 `json:"max_weight"`
}

// ItemSpec is the JSON shape of one item entry in a scenario file.
type ItemSpec struct {
	Name             string   `json:"name"`
	Width            int      `json:"width"`
	Height           int      `json:"height"`
	Depth            int      `json:"depth"`
	Weight           float64  `json:"weight"`
	Color            string   `json:"color"`
	AllowedRotations []string `json:"allowed_rotations"`

	BottomLoadOnly  bool    `json:"bottom_load_only"`
	DisableStacking bool    `json:"disable_stacking"`
	MaxLayersAbove  int     `json:"max_layers_above"`
	MaxWeightAbove  float64 `json:"max_weight_above"`
	StackingHeight  int     `json:"stacking_height"`

	HeightConstraint *HeightConstraintSpec `json:"height_constraint"`
}

// HeightConstraintSpec is the JSON shape of an item's height
// constraint; Kind is either "maximum" or "exact".
type HeightConstraintSpec struct {
	Kind string `json:"kind"`
}

// Scenario is the top-level JSON document a `pack` or `report` run
// loads: the containers and items to pack.
type Scenario struct {
	Containers []ContainerSpec `json:"containers"`
	Items      []ItemSpec      `json:"items"`
}

// LoadScenario reads a scenario file and builds the driver it
// describes. Scenario parsing is the one place in this program that
// validates untrusted input; the engine itself never returns an error.
func LoadScenario(path string) (*binpack3d.Driver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}

	if len(s.Containers) == 0 {
		return nil, fmt.Errorf("scenario has no containers")
	}

	d := binpack3d.NewDriver()

	for _, cs := range s.Containers {
		c := binpack3d.NewContainer(cs.Name, cs.Width, cs.Height, cs.Depth)
		c.MaxWeight = cs.MaxWeight
		d.AddContainer(c)
	}

	for _, is := range s.Items {
		it, err := buildItem(is)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", is.Name, err)
		}
		d.AddItem(it)
	}

	return d, nil
}

func buildItem(is ItemSpec) (*binpack3d.Item, error) {
	it := binpack3d.NewItem(is.Name, is.Width, is.Height, is.Depth)
	it.Weight = is.Weight
	if is.Color != "" {
		it.Color = is.Color
	}

	if len(is.AllowedRotations) > 0 {
		rotations := make([]binpack3d.Rotation, 0, len(is.AllowedRotations))
		for _, name := range is.AllowedRotations {
			r, err := parseRotation(name)
			if err != nil {
				return nil, err
			}
			rotations = append(rotations, r)
		}
		it.WithAllowedRotations(rotations...)
	}

	it.BottomLoadOnly = is.BottomLoadOnly
	it.DisableStacking = is.DisableStacking
	it.MaxLayersAbove = is.MaxLayersAbove
	it.MaxWeightAbove = is.MaxWeightAbove
	it.StackingHeight = is.StackingHeight

	if is.HeightConstraint != nil {
		kind, err := parseHeightConstraintKind(is.HeightConstraint.Kind)
		if err != nil {
			return nil, err
		}
		it.HeightConstraint = binpack3d.HeightConstraint{Set: true, Kind: kind}
	}

	return it, nil
}

func parseRotation(name string) (binpack3d.Rotation, error) {
	for _, r := range binpack3d.AllRotations {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rotation %q", name)
}

func parseHeightConstraintKind(name string) (binpack3d.HeightConstraintKind, error) {
	switch name {
	case "maximum", "":
		return binpack3d.HeightMaximum, nil
	case "exact":
		return binpack3d.HeightExact, nil
	default:
		return 0, fmt.Errorf("unknown height constraint kind %q", name)
	}
}
