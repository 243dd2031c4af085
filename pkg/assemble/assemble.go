// Package assemble realizes a layout scene as triangle meshes using a
// geometry kernel. One mesh is produced per solid-bearing descriptor
// node; grouping nodes only contribute their transforms.
package assemble

import (
	"fmt"
	"math"

	"github.com/chazu/gable/pkg/geometry"
	"github.com/chazu/gable/pkg/kernel"
)

// Part pairs a realized mesh with the display color its descriptor
// carried.
type Part struct {
	Mesh  *kernel.Mesh
	Color string
}

// Assemble walks the scene and returns one Part per solid node, in scene
// order. It is read-only over the scene.
func Assemble(s *geometry.Scene, k kernel.Kernel) ([]Part, error) {
	if s == nil {
		return nil, nil
	}

	var parts []Part
	for _, n := range s.Nodes {
		built, err := walkNode(k, n)
		if err != nil {
			return nil, fmt.Errorf("assemble: %w", err)
		}
		for _, b := range built {
			mesh, err := k.ToMesh(b.solid)
			if err != nil {
				return nil, fmt.Errorf("assemble: ToMesh failed for %q: %w", b.name, err)
			}
			mesh.PartName = b.name
			parts = append(parts, Part{Mesh: mesh, Color: b.color})
		}
	}
	return parts, nil
}

// pending is a solid not yet meshed, carried upward while ancestor
// placements are applied to it.
type pending struct {
	solid kernel.Solid
	name  string
	color string
}

// walkNode builds the node's own solid plus its children's, then applies
// the node's placement to everything gathered. Children are composed
// innermost-first, so a skylight nested in a tilted panel picks up the
// panel rotation before the roof group's lift, exactly the local→world
// order the descriptors promise.
func walkNode(k kernel.Kernel, n *geometry.Node) ([]pending, error) {
	var out []pending

	if n.Shape != geometry.ShapeNone {
		solid, err := buildSolid(k, n)
		if err != nil {
			return nil, err
		}
		out = append(out, pending{solid: solid, name: n.Name, color: n.Color})
	}

	for _, child := range n.Children {
		built, err := walkNode(k, child)
		if err != nil {
			return nil, err
		}
		out = append(out, built...)
	}

	for i := range out {
		s := out[i].solid
		if r := n.Transform.Rotation; !r.IsZero() {
			s = k.Rotate(s, r.X, r.Y, r.Z)
		}
		if t := n.Transform.Translation; t != (geometry.Vec3{}) {
			s = k.Translate(s, t.X, t.Y, t.Z)
		}
		out[i].solid = s
	}
	return out, nil
}

// buildSolid constructs the primitive for a shaped node in its local
// frame.
func buildSolid(k kernel.Kernel, n *geometry.Node) (kernel.Solid, error) {
	switch n.Shape {
	case geometry.ShapeBox:
		return k.Box(n.Size.X, n.Size.Y, n.Size.Z), nil

	case geometry.ShapeCylinder:
		// Descriptor cylinders stand on the local y axis; the kernel
		// builds along z, so swing the axis up.
		s := k.Cylinder(n.Size.Y, n.Size.X/2, 32)
		return k.Rotate(s, math.Pi/2, 0, 0), nil

	case geometry.ShapeExtrusion:
		profile := make([][2]float64, len(n.Outline))
		for i, p := range n.Outline {
			profile[i] = [2]float64{p.X, p.Y}
		}
		return k.Extrude(profile, n.Thickness), nil

	default:
		return nil, fmt.Errorf("node %q has unsupported shape %v", n.Name, n.Shape)
	}
}
