package geometry

import (
	"fmt"
	"math"

	"github.com/chazu/gable/pkg/building"
)

// Beam spacing rule: columns keep beamMargin clear of the wall corners
// and divide the remaining span into equal spaces between beamMinSpacing
// and beamMaxSpacing wide.
const (
	beamMargin     = 2.0
	beamMinSpacing = 4.0
	beamMaxSpacing = 8.0
)

// tieFractions are the eave-height fractions carrying horizontal tie
// beams, independent of the vertical beam spacing.
var tieFractions = [3]float64{0.25, 0.5, 0.75}

// BeamPositions returns the lateral offsets of the vertical beams across
// a wall of width w, from the wall centerline.
//
// The space count comes from flooring the available span against the
// maximum spacing (never fewer than two spaces), then the actual spacing
// is the span divided evenly, floored at the minimum. Beams start at the
// left margin and step by the spacing while they remain inside the right
// margin. The floor/max interaction is deliberate: it keeps the beam
// count scaling with wall width at every building size.
func BeamPositions(w float64) []float64 {
	avail := w - 2*beamMargin
	if avail <= 0 {
		return nil
	}
	spaces := math.Max(2, math.Floor(avail/beamMaxSpacing))
	spacing := math.Max(beamMinSpacing, avail/spaces)

	var xs []float64
	for x := -w/2 + beamMargin; x <= w/2-beamMargin; x += spacing {
		xs = append(xs, x)
	}
	return xs
}

// BeamHeight returns the column height at lateral offset x on a wall of
// width w. On a pitched gable wall the height follows the roofline,
// linearly interpolating from eave height at the corners to the full
// ridge height at the centerline; eave walls pass gable=false and keep a
// constant eave height.
func BeamHeight(x, w, eave, roofRise float64, gable bool) float64 {
	if !gable || roofRise == 0 {
		return eave
	}
	ratio := 1 - math.Abs(x)/(w/2)
	return eave + roofRise*ratio
}

// LayoutFrame builds the structural frame group: vertical beams on every
// wall, spaced adaptively, plus three tie beams per wall at fixed
// fractions of the eave height. Beams sit just inside the wall skin.
func LayoutFrame(b *building.Building) *Node {
	d := b.Dimensions
	roof := SolveRoof(d)

	frame := &Node{Name: "frame", Kind: KindGroup}
	for _, pos := range building.Walls() {
		wf := FrameFor(pos, d)
		gable := pos == building.WallFront || pos == building.WallBack
		inset := wf.Normal.Scale(wf.NormalHalf - WallThickness)

		for i, x := range BeamPositions(wf.Width) {
			h := BeamHeight(x, wf.Width, d.Height, roof.Height, gable)
			p := inset.Add(wf.Lateral.Scale(x))
			p.Y = h / 2
			frame.Children = append(frame.Children, &Node{
				Name:      fmt.Sprintf("beam-%s-%d", pos, i),
				Kind:      KindBeam,
				Shape:     ShapeBox,
				Transform: Transform{Translation: p},
				Size:      Vec3{X: BeamSection, Y: h, Z: BeamSection},
				Color:     colorFrame,
			})
		}

		for i, frac := range tieFractions {
			p := inset
			p.Y = d.Height * frac
			frame.Children = append(frame.Children, &Node{
				Name:  fmt.Sprintf("tie-%s-%d", pos, i),
				Kind:  KindTieBeam,
				Shape: ShapeBox,
				Transform: Transform{
					Translation: p,
					Rotation:    Euler{Y: wf.Yaw},
				},
				Size:  Vec3{X: wf.Width - 1, Y: TieSection, Z: TieSection},
				Color: colorFrame,
			})
		}
	}
	return frame
}
