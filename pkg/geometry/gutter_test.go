package geometry

import (
	"strings"
	"testing"

	"github.com/chazu/gable/pkg/building"
)

func TestLayoutGutters(t *testing.T) {
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	g := LayoutGutters(b)

	if g.Name != "gutters" || g.Kind != KindGroup {
		t.Fatalf("unexpected gutters group: %q %v", g.Name, g.Kind)
	}

	// Per side: one run, brackets every 4 ft across the 40 ft span
	// (offsets -20 through 20 inclusive, 11 of them), two downspouts.
	runs, brackets, spouts := 0, 0, 0
	for _, n := range g.Children {
		switch n.Kind {
		case KindGutter:
			runs++
		case KindBracket:
			brackets++
		case KindDownspout:
			spouts++
		default:
			t.Errorf("unexpected gutter child kind %v (%s)", n.Kind, n.Name)
		}
	}
	if runs != 2 {
		t.Errorf("gutter run count = %d, expected 2", runs)
	}
	if brackets != 22 {
		t.Errorf("bracket count = %d, expected 11 per side", brackets)
	}
	if spouts != 4 {
		t.Errorf("downspout count = %d, expected 4", spouts)
	}
}

func TestLayoutGuttersRuns(t *testing.T) {
	// Runs span the building width at eave height, pushed out past the
	// gable wall face by the wall thickness.
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	g := LayoutGutters(b)

	front := childNamed(t, g, "gutter-front")
	if !vecAlmostEqual(front.Transform.Translation, Vec3{0, 14, 30 + WallThickness}) {
		t.Errorf("front run translation = %v", front.Transform.Translation)
	}
	if !vecAlmostEqual(front.Size, Vec3{40, GutterHeight, GutterDepth}) {
		t.Errorf("front run size = %v", front.Size)
	}

	back := childNamed(t, g, "gutter-back")
	if !almostEqual(back.Transform.Translation.Z, -(30 + WallThickness)) {
		t.Errorf("back run z = %v", back.Transform.Translation.Z)
	}
}

func TestLayoutGuttersBrackets(t *testing.T) {
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	g := LayoutGutters(b)

	// Brackets land on multiples of the spacing, numbered left to right,
	// and straddle the run's top edge.
	first := childNamed(t, g, "bracket-front-0")
	if !vecAlmostEqual(first.Transform.Translation, Vec3{-20, 14 + GutterHeight/2, 30 + WallThickness}) {
		t.Errorf("first bracket translation = %v", first.Transform.Translation)
	}
	last := childNamed(t, g, "bracket-front-10")
	if !almostEqual(last.Transform.Translation.X, 20) {
		t.Errorf("last bracket x = %v, expected 20", last.Transform.Translation.X)
	}
	mid := childNamed(t, g, "bracket-front-5")
	if !almostEqual(mid.Transform.Translation.X, 0) {
		t.Errorf("middle bracket x = %v, expected 0", mid.Transform.Translation.X)
	}
	if !vecAlmostEqual(first.Size, Vec3{BracketSize, BracketSize, BracketSize}) {
		t.Errorf("bracket size = %v", first.Size)
	}
}

func TestLayoutGuttersBracketCountOddWidth(t *testing.T) {
	// A width whose half-span is not a spacing multiple still brackets
	// every interior multiple: half-span 5 covers offsets -4, 0, 4.
	b := building.New(building.Dimensions{Width: 10, Length: 60, Height: 14, RoofPitch: 4})
	g := LayoutGutters(b)

	var xs []float64
	for _, n := range g.Children {
		if n.Kind == KindBracket && strings.HasPrefix(n.Name, "bracket-front-") {
			xs = append(xs, n.Transform.Translation.X)
		}
	}
	want := []float64{-4, 0, 4}
	if len(xs) != len(want) {
		t.Fatalf("front bracket offsets = %v, expected %v", xs, want)
	}
	for i := range want {
		if !almostEqual(xs[i], want[i]) {
			t.Errorf("bracket %d at %v, expected %v", i, xs[i], want[i])
		}
	}
}

func TestLayoutGuttersDownspouts(t *testing.T) {
	// Downspouts are cylinders dropping from the eave to mid-height at
	// each run end.
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	g := LayoutGutters(b)

	left := childNamed(t, g, "downspout-front-left")
	if left.Shape != ShapeCylinder {
		t.Errorf("downspout shape = %v, expected cylinder", left.Shape)
	}
	if !vecAlmostEqual(left.Transform.Translation, Vec3{-20, 14 - 3.5, 30 + WallThickness}) {
		t.Errorf("downspout translation = %v", left.Transform.Translation)
	}
	if !vecAlmostEqual(left.Size, Vec3{2 * DownspoutRadius, 7, 2 * DownspoutRadius}) {
		t.Errorf("downspout size = %v", left.Size)
	}

	right := childNamed(t, g, "downspout-back-right")
	if !almostEqual(right.Transform.Translation.X, 20) || !almostEqual(right.Transform.Translation.Z, -(30 + WallThickness)) {
		t.Errorf("back-right downspout translation = %v", right.Transform.Translation)
	}
}
