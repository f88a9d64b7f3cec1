package limelight

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single step in a JSON guide script.
type scriptStep struct {
	UI      string      `json:"ui,omitempty"`
	Object  string      `json:"object,omitempty"`
	World   *[3]float64 `json:"world,omitempty"`
	Radius  float64     `json:"radius,omitempty"`
	Text    string      `json:"text,omitempty"`
	Shape   string      `json:"shape,omitempty"`
	Padding float64     `json:"padding,omitempty"`
	Pulse   float64     `json:"pulse,omitempty"`
}

// guideScript is the top-level JSON structure for a guide script.
type guideScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptResolver maps the labels used in a guide script to live handles.
// UI and Object may be nil if the script uses only world targets; a label
// that resolves to nil is a load error.
type ScriptResolver struct {
	UI     func(label string) UIElement
	Object func(label string) TrackedObject
}

// LoadGuideScript parses a JSON guide script into steps ready for
// Guide.SetSteps. World targets are inline [x, y, z] positions; UI and
// object targets are labels resolved through the resolver.
//
//	{"steps": [
//	  {"ui": "craft-button", "padding": 10, "text": "Open crafting", "pulse": 6},
//	  {"world": [12, 0, -3], "radius": 2, "shape": "square", "text": "Mine here"},
//	  {"object": "first-enemy", "text": "Watch out"}
//	]}
func LoadGuideScript(jsonData []byte, resolver ScriptResolver) ([]Step, error) {
	var script guideScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse guide script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse guide script: no steps")
	}

	steps := make([]Step, 0, len(script.Steps))
	for i, raw := range script.Steps {
		step := Step{
			Text:    raw.Text,
			Padding: raw.Padding,
			Pulse:   raw.Pulse,
		}

		if raw.Shape != "" {
			shape, err := parseShape(raw.Shape)
			if err != nil {
				return nil, fmt.Errorf("guide script step %d: %w", i+1, err)
			}
			step.Shape = &shape
		}

		switch {
		case raw.UI != "":
			if resolver.UI == nil {
				return nil, fmt.Errorf("guide script step %d: ui target %q but no UI resolver", i+1, raw.UI)
			}
			step.UI = resolver.UI(raw.UI)
			if step.UI == nil {
				return nil, fmt.Errorf("guide script step %d: unknown ui target %q", i+1, raw.UI)
			}
		case raw.World != nil:
			step.World = &WorldPoint{
				Position: Vec3{raw.World[0], raw.World[1], raw.World[2]},
				Radius:   raw.Radius,
			}
		case raw.Object != "":
			if resolver.Object == nil {
				return nil, fmt.Errorf("guide script step %d: object target %q but no object resolver", i+1, raw.Object)
			}
			step.Object = resolver.Object(raw.Object)
			if step.Object == nil {
				return nil, fmt.Errorf("guide script step %d: unknown object target %q", i+1, raw.Object)
			}
		default:
			return nil, fmt.Errorf("guide script step %d: no target", i+1)
		}

		steps = append(steps, step)
	}
	return steps, nil
}

// parseShape converts a script shape name to a Shape.
func parseShape(name string) (Shape, error) {
	switch name {
	case "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	case "triangle":
		return ShapeTriangle, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}
