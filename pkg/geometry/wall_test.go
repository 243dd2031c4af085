package geometry

import (
	"math"
	"testing"

	"github.com/chazu/gable/pkg/building"
)

func TestFrameFor(t *testing.T) {
	d := building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4}

	tests := []struct {
		wall        building.WallPosition
		translation Vec3
		yaw         float64
		width       float64
		normalHalf  float64
		normal      Vec3
		lateral     Vec3
	}{
		{building.WallFront, Vec3{0, 7, 30}, 0, 40, 30, Vec3{Z: 1}, Vec3{X: 1}},
		{building.WallBack, Vec3{0, 7, -30}, math.Pi, 40, 30, Vec3{Z: -1}, Vec3{X: -1}},
		{building.WallLeft, Vec3{-20, 7, 0}, math.Pi / 2, 60, 20, Vec3{X: -1}, Vec3{Z: 1}},
		{building.WallRight, Vec3{20, 7, 0}, -math.Pi / 2, 60, 20, Vec3{X: 1}, Vec3{Z: -1}},
	}
	for _, tc := range tests {
		frame := FrameFor(tc.wall, d)
		if frame.Wall != tc.wall {
			t.Errorf("%v: frame reports wall %v", tc.wall, frame.Wall)
		}
		if !vecAlmostEqual(frame.Transform.Translation, tc.translation) {
			t.Errorf("%v: translation = %v, expected %v", tc.wall, frame.Transform.Translation, tc.translation)
		}
		if !almostEqual(frame.Transform.Rotation.Y, tc.yaw) {
			t.Errorf("%v: yaw = %v, expected %v", tc.wall, frame.Transform.Rotation.Y, tc.yaw)
		}
		if frame.Yaw != frame.Transform.Rotation.Y {
			t.Errorf("%v: Yaw field disagrees with the transform", tc.wall)
		}
		if !almostEqual(frame.Width, tc.width) {
			t.Errorf("%v: width = %v, expected %v", tc.wall, frame.Width, tc.width)
		}
		if !almostEqual(frame.NormalHalf, tc.normalHalf) {
			t.Errorf("%v: normal half = %v, expected %v", tc.wall, frame.NormalHalf, tc.normalHalf)
		}
		if !vecAlmostEqual(frame.Normal, tc.normal) {
			t.Errorf("%v: normal = %v, expected %v", tc.wall, frame.Normal, tc.normal)
		}
		if !vecAlmostEqual(frame.Lateral, tc.lateral) {
			t.Errorf("%v: lateral = %v, expected %v", tc.wall, frame.Lateral, tc.lateral)
		}
	}
}

func TestFrameForLateralMatchesYaw(t *testing.T) {
	// The stored lateral axis must be exactly where the yaw rotation sends
	// local +x, so offset math done in wall coordinates agrees with the
	// node transform a renderer applies.
	d := building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4}
	for _, pos := range building.Walls() {
		frame := FrameFor(pos, d)
		rotated := Euler{Y: frame.Yaw}.Apply(Vec3{X: 1})
		if !vecAlmostEqual(rotated, frame.Lateral) {
			t.Errorf("%v: yaw sends +x to %v but lateral is %v", pos, rotated, frame.Lateral)
		}
	}
}

func TestGableOutline(t *testing.T) {
	d := building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4}
	outline := GableOutline(d)

	if len(outline) != 5 {
		t.Fatalf("gable outline has %d vertices, expected 5", len(outline))
	}
	rise := 20.0 * 4 / 12
	want := []Vec2{
		{X: -20, Y: -7},
		{X: 20, Y: -7},
		{X: 20, Y: 7},
		{X: 0, Y: 7 + rise},
		{X: -20, Y: 7},
	}
	for i, w := range want {
		if !almostEqual(outline[i].X, w.X) || !almostEqual(outline[i].Y, w.Y) {
			t.Errorf("vertex %d = %v, expected %v", i, outline[i], w)
		}
	}
}

func TestGableUV(t *testing.T) {
	d := building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4}
	uv := GableUV(d)

	if !almostEqual(uv.UOrigin, -20) || !almostEqual(uv.USpan, 40) {
		t.Errorf("u mapping = (%v, %v), expected (-20, 40)", uv.UOrigin, uv.USpan)
	}
	rise := 20.0 * 4 / 12
	if !almostEqual(uv.VOrigin, -7) || !almostEqual(uv.VSpan, 14+rise) {
		t.Errorf("v mapping = (%v, %v), expected (-7, %v)", uv.VOrigin, uv.VSpan, 14+rise)
	}

	// Corners map to the unit square edges and the apex to the top center.
	u, v := uv.Map(-20, -7)
	if !almostEqual(u, 0) || !almostEqual(v, 0) {
		t.Errorf("bottom-left maps to (%v, %v), expected (0, 0)", u, v)
	}
	u, v = uv.Map(20, -7)
	if !almostEqual(u, 1) || !almostEqual(v, 0) {
		t.Errorf("bottom-right maps to (%v, %v), expected (1, 0)", u, v)
	}
	u, v = uv.Map(0, 7+rise)
	if !almostEqual(u, 0.5) || !almostEqual(v, 1) {
		t.Errorf("apex maps to (%v, %v), expected (0.5, 1)", u, v)
	}
}

func TestLayoutWallsPitched(t *testing.T) {
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	walls := LayoutWalls(b)

	if len(walls) != 4 {
		t.Fatalf("expected 4 walls, got %d", len(walls))
	}
	wantNames := []string{"wall-front", "wall-back", "wall-left", "wall-right"}
	for i, n := range walls {
		if n.Name != wantNames[i] {
			t.Errorf("wall %d = %q, expected %q", i, n.Name, wantNames[i])
		}
		if n.Kind != KindWall {
			t.Errorf("%s: kind = %v", n.Name, n.Kind)
		}
		if n.Color != b.Color {
			t.Errorf("%s: color = %q, expected the wall color", n.Name, n.Color)
		}
	}

	// Gable walls extrude the pentagon profile.
	for _, n := range walls[:2] {
		if n.Shape != ShapeExtrusion {
			t.Errorf("%s: shape = %v, expected extrusion", n.Name, n.Shape)
		}
		if len(n.Outline) != 5 {
			t.Errorf("%s: outline has %d vertices, expected 5", n.Name, len(n.Outline))
		}
		if !almostEqual(n.Thickness, WallThickness) {
			t.Errorf("%s: thickness = %v", n.Name, n.Thickness)
		}
		if n.UV == nil {
			t.Errorf("%s: extrusion must carry its texture rule", n.Name)
		}
	}

	// Eave walls are plain boxes of the eave height.
	for _, n := range walls[2:] {
		if n.Shape != ShapeBox {
			t.Errorf("%s: shape = %v, expected box", n.Name, n.Shape)
		}
		if !vecAlmostEqual(n.Size, Vec3{X: 60, Y: 14, Z: WallThickness}) {
			t.Errorf("%s: size = %v", n.Name, n.Size)
		}
	}
}

func TestLayoutWallsFlat(t *testing.T) {
	// With no rise the gable profile degenerates to the eave rectangle, so
	// all four walls become boxes.
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 0})
	walls := LayoutWalls(b)

	for _, n := range walls {
		if n.Shape != ShapeBox {
			t.Errorf("%s: shape = %v, expected box on a flat roof", n.Name, n.Shape)
		}
	}
	if !vecAlmostEqual(walls[0].Size, Vec3{X: 40, Y: 14, Z: WallThickness}) {
		t.Errorf("flat front wall size = %v", walls[0].Size)
	}
}
