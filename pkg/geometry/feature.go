package geometry

import (
	"fmt"

	"github.com/chazu/gable/pkg/building"
)

// Clearance is how far a feature sits proud of its wall plane, so the
// feature face never renders coplanar with the wall (z-fighting).
const Clearance = 0.1

// PlaceFeature resolves a wall feature into its world transform: flush
// against its wall, pushed outward by Clearance, yawed to face out.
//
// The lateral offset is computed once in the wall's own coordinates and
// mapped through the wall frame's lateral axis. Because each frame's
// lateral axis already encodes the wall's handedness (the back and right
// walls run opposite to the world axes), this single formula reproduces
// the per-wall sign behavior for every alignment: e.g. align-left on the
// front wall lands at x = −width/2 + hw + xOffset while align-left on
// the back wall lands at x = +width/2 − hw − xOffset.
//
// Vertically the feature is anchored at its bottom edge: the center sits
// at yOffset + height/2 above the ground.
//
// The resolver is total: it never clamps and never checks bounds. An
// offset past the wall edge places the feature exactly where asked;
// building validation reports that case separately.
func PlaceFeature(f building.WallFeature, d building.Dimensions) Transform {
	frame := FrameFor(f.Position.Wall, d)

	hw := f.Width / 2
	var lateral float64
	switch f.Position.Align {
	case building.AlignLeft:
		lateral = -frame.Width/2 + hw + f.Position.XOffset
	case building.AlignRight:
		lateral = frame.Width/2 - hw - f.Position.XOffset
	default: // center
		lateral = f.Position.XOffset
	}

	pos := frame.Normal.Scale(frame.NormalHalf + Clearance).
		Add(frame.Lateral.Scale(lateral))
	pos.Y = f.Position.YOffset + f.Height/2

	return Transform{
		Translation: pos,
		Rotation:    Euler{Y: frame.Yaw},
	}
}

// LayoutFeatures builds one descriptor node per wall feature, in feature
// order. Node names combine the feature kind with its index; Ref carries
// the feature ID for picking.
func LayoutFeatures(b *building.Building) []*Node {
	var nodes []*Node
	for i, f := range b.Features {
		nodes = append(nodes, &Node{
			Name:      fmt.Sprintf("%s-%d", f.Kind, i),
			Kind:      KindFeature,
			Shape:     ShapeBox,
			Transform: PlaceFeature(f, b.Dimensions),
			Size:      Vec3{X: f.Width, Y: f.Height, Z: FeatureDepth},
			Color:     colorTrim,
			Ref:       f.ID,
		})
	}
	return nodes
}
