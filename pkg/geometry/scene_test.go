package geometry

import (
	"reflect"
	"testing"

	"github.com/chazu/gable/pkg/building"
)

func layoutFixture() *building.Building {
	b := building.New(building.Dimensions{Width: 40, Length: 60, Height: 14, RoofPitch: 4})
	b.AddFeature(building.WallFeature{
		ID: "bay", Kind: building.FeatureRollupDoor, Width: 12, Height: 12,
		Position: building.FeaturePosition{Wall: building.WallFront, Align: building.AlignCenter},
	})
	b.AddFeature(building.WallFeature{
		ID: "win", Kind: building.FeatureWindow, Width: 4, Height: 3,
		Position: building.FeaturePosition{Wall: building.WallLeft, XOffset: 8, YOffset: 5, Align: building.AlignLeft},
	})
	b.AddSkylight(building.Skylight{Width: 4, Length: 6, XOffset: -6, YOffset: 10})
	b.AddSkylight(building.Skylight{Width: 4, Length: 6, XOffset: 6, YOffset: -10})
	return b
}

func TestLayoutTopLevel(t *testing.T) {
	scene := Layout(layoutFixture())

	// Four walls, roof, frame, gutters, then one node per feature.
	if len(scene.Nodes) != 7+2 {
		t.Fatalf("top-level node count = %d, expected 9", len(scene.Nodes))
	}
	wantNames := []string{
		"wall-front", "wall-back", "wall-left", "wall-right",
		"roof", "frame", "gutters",
		"rollup-door-0", "window-1",
	}
	for i, n := range scene.Nodes {
		if n.Name != wantNames[i] {
			t.Errorf("node %d = %q, expected %q", i, n.Name, wantNames[i])
		}
	}
}

func TestLayoutDeterministic(t *testing.T) {
	// Layout is a pure function: equal buildings yield deeply equal
	// scenes, which is what makes fingerprint-keyed memoization sound.
	a := Layout(layoutFixture())
	b := Layout(layoutFixture())
	if !reflect.DeepEqual(a, b) {
		t.Error("two layouts of equal buildings differ")
	}
}

func TestLayoutDoesNotMutateBuilding(t *testing.T) {
	b := layoutFixture()
	snapshot := *b
	snapshot.Features = append([]building.WallFeature(nil), b.Features...)
	snapshot.Skylights = append([]building.Skylight(nil), b.Skylights...)

	Layout(b)

	if !reflect.DeepEqual(*b, snapshot) {
		t.Error("Layout mutated its input building")
	}
}

func TestSceneWalkOrder(t *testing.T) {
	scene := Layout(layoutFixture())

	// Depth-first, parents before children: the roof group precedes its
	// panels, and each panel precedes its skylights.
	order := map[string]int{}
	i := 0
	scene.Walk(func(n *Node) {
		if _, dup := order[n.Name]; dup {
			t.Errorf("duplicate node name %q", n.Name)
		}
		order[n.Name] = i
		i++
	})

	before := func(a, b string) {
		t.Helper()
		ia, oka := order[a]
		ib, okb := order[b]
		if !oka || !okb {
			t.Fatalf("missing node: %s=%v %s=%v", a, oka, b, okb)
		}
		if ia >= ib {
			t.Errorf("%q (%d) should be visited before %q (%d)", a, ia, b, ib)
		}
	}
	before("roof", "roof-panel-left")
	before("roof-panel-left", "skylight-0")
	before("roof-panel-right", "skylight-1")
	before("frame", "beam-front-0")
	before("gutters", "downspout-back-right")
}

func TestSceneFind(t *testing.T) {
	scene := Layout(layoutFixture())

	sky := scene.Find("skylight-0")
	if sky == nil || sky.Kind != KindSkylight {
		t.Fatalf("Find(skylight-0) = %v", sky)
	}
	if scene.Find("no-such-node") != nil {
		t.Error("Find of a missing name should return nil")
	}
}

func TestSceneSolids(t *testing.T) {
	scene := Layout(layoutFixture())

	// Solids agrees with an explicit walk, and every solid is renderable:
	// named, colored, shaped.
	count := 0
	scene.Walk(func(n *Node) {
		if n.Shape == ShapeNone {
			if n.Kind != KindGroup {
				t.Errorf("shapeless non-group node %q", n.Name)
			}
			return
		}
		count++
		if n.Name == "" {
			t.Error("solid node with no name")
		}
		if n.Color == "" {
			t.Errorf("solid node %q with no color", n.Name)
		}
	})
	if got := scene.Solids(); got != count {
		t.Errorf("Solids() = %d, walk counted %d", got, count)
	}
	if count == 0 {
		t.Fatal("scene has no solids at all")
	}
}

func TestLayoutColorsFollowBuilding(t *testing.T) {
	b := layoutFixture()
	b.Color = "#AA0000"
	b.RoofColor = "#00AA00"
	scene := Layout(b)

	if got := scene.Find("wall-front").Color; got != "#AA0000" {
		t.Errorf("wall color = %q", got)
	}
	if got := scene.Find("roof-panel-right").Color; got != "#00AA00" {
		t.Errorf("roof panel color = %q", got)
	}
	if got := scene.Find("ridge-cap").Color; got != "#00AA00" {
		t.Errorf("ridge color = %q", got)
	}
}
