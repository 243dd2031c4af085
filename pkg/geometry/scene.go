package geometry

import "github.com/chazu/gable/pkg/building"

// Solid proportions shared across the layout. Units follow the building
// dimensions (feet in practice).
const (
	WallThickness     = 0.5  // extruded depth of every wall solid
	RoofThickness     = 0.3  // roof panel thickness
	RidgeWidth        = 1.0  // ridge cap footprint across the apex
	RidgeHeight       = 0.4  // ridge cap height
	SkylightThickness = 0.15 // glazing panel thickness
	FeatureDepth      = 0.15 // door/window panel depth
	BeamSection       = 0.35 // vertical beam cross-section
	TieSection        = 0.3  // horizontal tie beam cross-section
	GutterHeight      = 0.4
	GutterDepth       = 0.4
	BracketSize       = 0.25
	DownspoutRadius   = 0.15
)

// Fixed accent colors for elements the building palette does not cover.
const (
	colorTrim    = "#E4E7E9" // doors, windows, gutters, downspouts
	colorFrame   = "#5A5F64" // structural steel
	colorGlazing = "#9FBFD4" // skylight panels
)

// Layout computes the complete descriptor scene for a building: the four
// walls, the roof group (panels, ridge, skylights), the structural frame,
// the rainware, and every wall feature.
//
// Layout is a pure function of its input. It performs no I/O, touches no
// shared state, and never mutates the building; identical buildings
// produce identical scenes, so callers may memoize results keyed on
// building.Fingerprint. It assumes the building already passed
// building.Validate and does not re-check any invariant.
func Layout(b *building.Building) *Scene {
	nodes := make([]*Node, 0, 7+len(b.Features))
	nodes = append(nodes, LayoutWalls(b)...)
	nodes = append(nodes, LayoutRoof(b))
	nodes = append(nodes, LayoutFrame(b))
	nodes = append(nodes, LayoutGutters(b))
	nodes = append(nodes, LayoutFeatures(b)...)
	return &Scene{Nodes: nodes}
}
