package geometry

import (
	"math"

	"github.com/chazu/gable/pkg/building"
)

// wallBasis is the dimension-independent part of a wall's coordinate
// frame. The four instances below fully encode which world axis each
// wall's width runs along and which way it faces; everything downstream
// (wall solids, feature placement, beam rows) shares them instead of
// re-deriving per-wall sign logic.
type wallBasis struct {
	yaw        float64
	normal     Vec3 // outward unit normal
	lateral    Vec3 // world direction of the wall's local +x
	alongWidth bool // wall width spans the building width (else length)
}

var wallBases = [4]wallBasis{
	building.WallFront: {yaw: 0, normal: Vec3{Z: 1}, lateral: Vec3{X: 1}, alongWidth: true},
	building.WallBack:  {yaw: math.Pi, normal: Vec3{Z: -1}, lateral: Vec3{X: -1}, alongWidth: true},
	building.WallLeft:  {yaw: math.Pi / 2, normal: Vec3{X: -1}, lateral: Vec3{Z: 1}, alongWidth: false},
	building.WallRight: {yaw: -math.Pi / 2, normal: Vec3{X: 1}, lateral: Vec3{Z: -1}, alongWidth: false},
}

// WallFrame is a wall's local→world frame: the transform places the wall
// center at half eave height on its side of the footprint, with the
// wall's local +x running along its width, +y up, and +z facing outward.
type WallFrame struct {
	Wall      building.WallPosition
	Transform Transform
	// Width is the wall's own width: building width for the gable walls,
	// building length for the eave walls.
	Width float64
	// NormalHalf is the distance from the building centerline to the
	// wall plane along the outward normal.
	NormalHalf float64
	// Yaw, Normal and Lateral expose the frame's basis for callers that
	// compose offsets (feature placement, beam rows).
	Yaw     float64
	Normal  Vec3
	Lateral Vec3
}

// FrameFor returns the frame for one wall of a building with the given
// dimensions.
func FrameFor(pos building.WallPosition, d building.Dimensions) WallFrame {
	basis := wallBases[pos]
	width, normalHalf := d.Width, d.Length/2
	if !basis.alongWidth {
		width, normalHalf = d.Length, d.Width/2
	}
	return WallFrame{
		Wall: pos,
		Transform: Transform{
			Translation: basis.normal.Scale(normalHalf).Add(Vec3{Y: d.Height / 2}),
			Rotation:    Euler{Y: basis.yaw},
		},
		Width:      width,
		NormalHalf: normalHalf,
		Yaw:        basis.yaw,
		Normal:     basis.normal,
		Lateral:    basis.lateral,
	}
}

// GableOutline returns the closed planar profile of a gable wall in the
// wall's local frame: a rectangle of the wall width and eave height
// topped by an isosceles triangle whose apex sits at the ridge. Vertices
// run counter-clockwise from the bottom-left corner; the polygon closes
// back to the first vertex.
func GableOutline(d building.Dimensions) []Vec2 {
	roof := SolveRoof(d)
	halfW, halfH := d.Width/2, d.Height/2
	return []Vec2{
		{X: -halfW, Y: -halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
		{X: 0, Y: halfH + roof.Height},
		{X: -halfW, Y: halfH},
	}
}

// GableUV returns the texture parameterization for the gable outline:
// u = (x + w/2) / w, v = (y + h/2) / totalHeight. Tiling is continuous
// across the sloped edges only under this mapping, so renderers must use
// it verbatim.
func GableUV(d building.Dimensions) UVRule {
	roof := SolveRoof(d)
	return UVRule{
		UOrigin: -d.Width / 2,
		USpan:   d.Width,
		VOrigin: -d.Height / 2,
		VSpan:   roof.TotalHeight,
	}
}

// LayoutWalls builds the four wall descriptor nodes in canonical order.
// With a pitched roof the gable walls (front/back) are extrusions of the
// gable outline; with a flat roof they degenerate to plain boxes like the
// eave walls, which are always rectangular solids of the eave height.
func LayoutWalls(b *building.Building) []*Node {
	d := b.Dimensions
	roof := SolveRoof(d)

	var nodes []*Node
	for _, pos := range building.Walls() {
		frame := FrameFor(pos, d)
		n := &Node{
			Name:      "wall-" + pos.String(),
			Kind:      KindWall,
			Transform: frame.Transform,
			Color:     b.Color,
		}
		gable := pos == building.WallFront || pos == building.WallBack
		if gable && roof.Height > 0 {
			uv := GableUV(d)
			n.Shape = ShapeExtrusion
			n.Outline = GableOutline(d)
			n.Thickness = WallThickness
			n.UV = &uv
		} else {
			n.Shape = ShapeBox
			n.Size = Vec3{X: frame.Width, Y: d.Height, Z: WallThickness}
		}
		nodes = append(nodes, n)
	}
	return nodes
}
