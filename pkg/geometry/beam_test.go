package geometry

import (
	"testing"

	"github.com/chazu/gable/pkg/building"
)

func TestBeamPositions(t *testing.T) {
	tests := []struct {
		width float64
		want  []float64
	}{
		// 16 ft of span, two 8 ft spaces.
		{20, []float64{-8, 0, 8}},
		// 36 ft of span, four 9 ft spaces.
		{40, []float64{-18, -9, 0, 9, 18}},
		// 56 ft of span, seven 8 ft spaces.
		{60, []float64{-28, -20, -12, -4, 4, 12, 20, 28}},
	}
	for _, tc := range tests {
		got := BeamPositions(tc.width)
		if len(got) != len(tc.want) {
			t.Errorf("BeamPositions(%v) has %d beams, expected %d: %v", tc.width, len(got), len(tc.want), got)
			continue
		}
		for i := range got {
			if !almostEqual(got[i], tc.want[i]) {
				t.Errorf("BeamPositions(%v)[%d] = %v, expected %v", tc.width, i, got[i], tc.want[i])
			}
		}
	}
}

func TestBeamPositionsDegenerate(t *testing.T) {
	// Walls narrower than twice the corner margin hold no beams at all.
	if got := BeamPositions(4); got != nil {
		t.Errorf("BeamPositions(4) = %v, expected none", got)
	}
	if got := BeamPositions(3); got != nil {
		t.Errorf("BeamPositions(3) = %v, expected none", got)
	}
	// Barely past the margins the spacing floor leaves just the left beam.
	if got := BeamPositions(5); len(got) != 1 || !almostEqual(got[0], -0.5) {
		t.Errorf("BeamPositions(5) = %v, expected the single margin beam", got)
	}
}

func TestBeamPositionsSymmetry(t *testing.T) {
	// The row is symmetric about the centerline whenever the span divides
	// evenly, which it does at every whole-foot width that clears the
	// margins by a multiple of the spacing.
	for _, w := range []float64{20, 40, 60, 100} {
		xs := BeamPositions(w)
		for i := range xs {
			if !almostEqual(xs[i], -xs[len(xs)-1-i]) {
				t.Errorf("width %v: positions %v are not symmetric", w, xs)
				break
			}
		}
	}
}

func TestBeamHeight(t *testing.T) {
	rise := 20.0 * 4 / 12

	// Gable wall: ridge height at the centerline, eave height at the
	// corners, linear in between.
	if got := BeamHeight(0, 40, 14, rise, true); !almostEqual(got, 14+rise) {
		t.Errorf("center gable beam = %v, expected %v", got, 14+rise)
	}
	if got := BeamHeight(20, 40, 14, rise, true); !almostEqual(got, 14) {
		t.Errorf("corner gable beam = %v, expected 14", got)
	}
	if got := BeamHeight(-20, 40, 14, rise, true); !almostEqual(got, 14) {
		t.Errorf("far corner gable beam = %v, expected 14", got)
	}
	if got := BeamHeight(10, 40, 14, rise, true); !almostEqual(got, 14+rise/2) {
		t.Errorf("half-way gable beam = %v, expected %v", got, 14+rise/2)
	}

	// Eave walls and flat roofs keep the eave height everywhere.
	if got := BeamHeight(10, 60, 14, rise, false); !almostEqual(got, 14) {
		t.Errorf("eave wall beam = %v, expected 14", got)
	}
	if got := BeamHeight(0, 40, 14, 0, true); !almostEqual(got, 14) {
		t.Errorf("flat roof beam = %v, expected 14", got)
	}
}

func TestLayoutFrame(t *testing.T) {
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	frame := LayoutFrame(b)

	if frame.Name != "frame" || frame.Kind != KindGroup {
		t.Fatalf("unexpected frame group: %q %v", frame.Name, frame.Kind)
	}

	// 5 beams on each 40 ft gable wall, 8 on each 60 ft eave wall, plus
	// 3 ties per wall.
	beams, ties := 0, 0
	for _, n := range frame.Children {
		switch n.Kind {
		case KindBeam:
			beams++
		case KindTieBeam:
			ties++
		default:
			t.Errorf("unexpected frame child kind %v (%s)", n.Kind, n.Name)
		}
	}
	if beams != 5+5+8+8 {
		t.Errorf("beam count = %d, expected 26", beams)
	}
	if ties != 12 {
		t.Errorf("tie count = %d, expected 12", ties)
	}
}

func TestLayoutFrameCenterBeam(t *testing.T) {
	// The middle front beam stands on the centerline just inside the wall
	// skin and reaches the ridge.
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	frame := LayoutFrame(b)

	n := childNamed(t, frame, "beam-front-2")
	rise := 20.0 * 4 / 12
	if !vecAlmostEqual(n.Transform.Translation, Vec3{0, (14 + rise) / 2, 30 - WallThickness}) {
		t.Errorf("center beam translation = %v", n.Transform.Translation)
	}
	if !vecAlmostEqual(n.Size, Vec3{BeamSection, 14 + rise, BeamSection}) {
		t.Errorf("center beam size = %v", n.Size)
	}

	// A corner-adjacent beam is shorter, per the roofline.
	edge := childNamed(t, frame, "beam-front-0")
	wantH := 14 + rise*(1-18.0/20)
	if !almostEqual(edge.Size.Y, wantH) {
		t.Errorf("edge beam height = %v, expected %v", edge.Size.Y, wantH)
	}
	if !almostEqual(edge.Transform.Translation.X, -18) {
		t.Errorf("edge beam x = %v, expected -18", edge.Transform.Translation.X)
	}
}

func TestLayoutFrameEaveWallBeams(t *testing.T) {
	// Eave wall beams keep the eave height and run along the length axis,
	// inset from the side wall.
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	frame := LayoutFrame(b)

	n := childNamed(t, frame, "beam-left-0")
	if !vecAlmostEqual(n.Transform.Translation, Vec3{-(20 - WallThickness), 7, -28}) {
		t.Errorf("left wall first beam translation = %v", n.Transform.Translation)
	}
	if !almostEqual(n.Size.Y, 14) {
		t.Errorf("eave wall beam height = %v, expected 14", n.Size.Y)
	}
}

func TestLayoutFrameTies(t *testing.T) {
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	frame := LayoutFrame(b)

	// Ties sit at quarter fractions of the eave height, one foot short of
	// the wall width, yawed to their wall.
	mid := childNamed(t, frame, "tie-front-1")
	if !vecAlmostEqual(mid.Transform.Translation, Vec3{0, 7, 30 - WallThickness}) {
		t.Errorf("front middle tie translation = %v", mid.Transform.Translation)
	}
	if !vecAlmostEqual(mid.Size, Vec3{39, TieSection, TieSection}) {
		t.Errorf("front tie size = %v", mid.Size)
	}
	if !mid.Transform.Rotation.IsZero() {
		t.Errorf("front tie should not be yawed, got %v", mid.Transform.Rotation)
	}

	low := childNamed(t, frame, "tie-left-0")
	if !almostEqual(low.Transform.Translation.Y, 3.5) {
		t.Errorf("low tie y = %v, expected 3.5", low.Transform.Translation.Y)
	}
	if !almostEqual(low.Transform.Rotation.Y, FrameFor(building.WallLeft, b.Dimensions).Yaw) {
		t.Errorf("left tie yaw = %v, expected the wall yaw", low.Transform.Rotation.Y)
	}
	if !almostEqual(low.Size.X, 59) {
		t.Errorf("left tie length = %v, expected 59", low.Size.X)
	}
}

// childNamed fails the test if the group has no direct child with the name.
func childNamed(t *testing.T, group *Node, name string) *Node {
	t.Helper()
	for _, n := range group.Children {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("group %q has no child %q", group.Name, name)
	return nil
}
