package geometry

import (
	"fmt"
	"math"

	"github.com/chazu/gable/pkg/building"
)

// Roof holds the measurements derived from width and pitch. Everything
// else in the roof and gable layout is expressed in these four numbers.
type Roof struct {
	// Height is the vertical rise from the eave line to the ridge.
	Height float64
	// Angle is the slope of each panel from horizontal, in radians.
	Angle float64
	// PanelLength is the true (sloped) eave-to-ridge run of one panel,
	// always ≥ width/2.
	PanelLength float64
	// TotalHeight is the ground-to-ridge height.
	TotalHeight float64
}

// SolveRoof derives the roof measurements from the building dimensions.
// RoofPitch uses the rise-per-12 convention, so pitch/12 is the slope
// ratio over the half-width run. A pitch of 0 degenerates cleanly: zero
// rise, zero angle, panel length exactly width/2 (flat roof).
func SolveRoof(d building.Dimensions) Roof {
	halfW := d.Width / 2
	rise := halfW * (d.RoofPitch / 12)
	return Roof{
		Height:      rise,
		Angle:       math.Atan2(rise, halfW),
		PanelLength: math.Hypot(halfW, rise),
		TotalHeight: d.Height + rise,
	}
}

// LayoutRoof builds the roof descriptor group: two sloped panels, the
// ridge cap, and any skylights nested inside their panels.
//
// The group origin sits at eave height on the building centerline, so
// panel transforms below are in roof-local coordinates. Each panel is a
// box of panelLength × length rotated about the length axis; rotating
// ±Angle about z swings the panel's outer edge down to the eave and its
// inner edge up to the ridge, so the two panels and the cap meet at
// (0, Height) with no gap.
//
// Skylights are assigned by the sign of XOffset: negative goes to the
// left panel, zero or positive to the right. The offset pair is taken as
// a position in the panel's own frame and the skylight is emitted as a
// child of that panel, inheriting the tilt by nesting; the panel's
// rotation is never re-derived. Note the assignment tests the sign only,
// not the panel extent, so a large offset keeps its panel's tilt even
// when it floats past the panel edge (the boundary validation warns
// about that case).
func LayoutRoof(b *building.Building) *Node {
	d := b.Dimensions
	roof := SolveRoof(d)

	left := &Node{
		Name:  "roof-panel-left",
		Kind:  KindRoofPanel,
		Shape: ShapeBox,
		Transform: Transform{
			Translation: Vec3{X: -d.Width / 4, Y: roof.Height / 2},
			Rotation:    Euler{Z: roof.Angle},
		},
		Size:  Vec3{X: roof.PanelLength, Y: RoofThickness, Z: d.Length},
		Color: b.RoofColor,
	}
	right := &Node{
		Name:  "roof-panel-right",
		Kind:  KindRoofPanel,
		Shape: ShapeBox,
		Transform: Transform{
			Translation: Vec3{X: d.Width / 4, Y: roof.Height / 2},
			Rotation:    Euler{Z: -roof.Angle},
		},
		Size:  Vec3{X: roof.PanelLength, Y: RoofThickness, Z: d.Length},
		Color: b.RoofColor,
	}
	ridge := &Node{
		Name:  "ridge-cap",
		Kind:  KindRidgeCap,
		Shape: ShapeBox,
		Transform: Transform{
			Translation: Vec3{Y: roof.Height},
		},
		Size:  Vec3{X: RidgeWidth, Y: RidgeHeight, Z: d.Length},
		Color: b.RoofColor,
	}

	for i, s := range b.Skylights {
		panel := right
		if s.XOffset < 0 {
			panel = left
		}
		panel.Children = append(panel.Children, &Node{
			Name:  fmt.Sprintf("skylight-%d", i),
			Kind:  KindSkylight,
			Shape: ShapeBox,
			Transform: Transform{
				Translation: Vec3{
					X: s.XOffset,
					Y: RoofThickness/2 + SkylightThickness/2,
					Z: s.YOffset,
				},
			},
			Size:  Vec3{X: s.Width, Y: SkylightThickness, Z: s.Length},
			Color: colorGlazing,
			Ref:   fmt.Sprintf("%d", i),
		})
	}

	return &Node{
		Name: "roof",
		Kind: KindGroup,
		Transform: Transform{
			Translation: Vec3{Y: d.Height},
		},
		Children: []*Node{left, right, ridge},
	}
}
