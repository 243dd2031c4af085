package geometry

import (
	"fmt"
	"math"

	"github.com/chazu/gable/pkg/building"
)

// bracketSpacing is the fixed distance between gutter mounting brackets;
// brackets land on every multiple of it that falls within the wall span.
const bracketSpacing = 4.0

// LayoutGutters builds the rainware group: two eave-line gutter runs on
// the front and back walls spanning the building width, pushed outward
// from the wall plane by the wall thickness; a downspout at each of the
// four run ends dropping from the eave to mid-height; and mounting
// brackets along each run. Purely geometric, no error states.
func LayoutGutters(b *building.Building) *Node {
	d := b.Dimensions
	group := &Node{Name: "gutters", Kind: KindGroup}

	halfW := d.Width / 2
	dropLength := d.Height / 2

	for _, side := range []struct {
		name string
		sign float64
	}{
		{"front", 1},
		{"back", -1},
	} {
		z := side.sign * (d.Length/2 + WallThickness)

		group.Children = append(group.Children, &Node{
			Name:  "gutter-" + side.name,
			Kind:  KindGutter,
			Shape: ShapeBox,
			Transform: Transform{
				Translation: Vec3{Y: d.Height, Z: z},
			},
			Size:  Vec3{X: d.Width, Y: GutterHeight, Z: GutterDepth},
			Color: colorTrim,
		})

		// Brackets at every multiple of the spacing inside the span.
		lo := int(math.Ceil(-halfW / bracketSpacing))
		hi := int(math.Floor(halfW / bracketSpacing))
		for k := lo; k <= hi; k++ {
			group.Children = append(group.Children, &Node{
				Name:  fmt.Sprintf("bracket-%s-%d", side.name, k-lo),
				Kind:  KindBracket,
				Shape: ShapeBox,
				Transform: Transform{
					Translation: Vec3{
						X: float64(k) * bracketSpacing,
						Y: d.Height + GutterHeight/2,
						Z: z,
					},
				},
				Size:  Vec3{X: BracketSize, Y: BracketSize, Z: BracketSize},
				Color: colorTrim,
			})
		}

		for _, corner := range []struct {
			name string
			sign float64
		}{
			{"left", -1},
			{"right", 1},
		} {
			group.Children = append(group.Children, &Node{
				Name:  fmt.Sprintf("downspout-%s-%s", side.name, corner.name),
				Kind:  KindDownspout,
				Shape: ShapeCylinder,
				Transform: Transform{
					Translation: Vec3{
						X: corner.sign * halfW,
						Y: d.Height - dropLength/2,
						Z: z,
					},
				},
				Size:  Vec3{X: 2 * DownspoutRadius, Y: dropLength, Z: 2 * DownspoutRadius},
				Color: colorTrim,
			})
		}
	}

	return group
}
