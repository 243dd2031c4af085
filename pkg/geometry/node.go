package geometry

import "fmt"

// Kind classifies a node by the structural element it describes.
type Kind int

const (
	KindGroup Kind = iota
	KindWall
	KindRoofPanel
	KindRidgeCap
	KindSkylight
	KindBeam
	KindTieBeam
	KindGutter
	KindDownspout
	KindBracket
	KindFeature
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindWall:
		return "wall"
	case KindRoofPanel:
		return "roof-panel"
	case KindRidgeCap:
		return "ridge-cap"
	case KindSkylight:
		return "skylight"
	case KindBeam:
		return "beam"
	case KindTieBeam:
		return "tie-beam"
	case KindGutter:
		return "gutter"
	case KindDownspout:
		return "downspout"
	case KindBracket:
		return "bracket"
	case KindFeature:
		return "feature"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape selects how a node's solid is constructed from its parameters.
type Shape int

const (
	ShapeNone      Shape = iota // grouping only, no solid
	ShapeBox                    // box of extent Size, centered on the origin
	ShapeExtrusion              // Outline extruded to Thickness, centered
	ShapeCylinder               // axis along local +y: Size.X diameter, Size.Y height
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeBox:
		return "box"
	case ShapeExtrusion:
		return "extrusion"
	case ShapeCylinder:
		return "cylinder"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// UVRule maps outline coordinates to texture coordinates:
// u = (x − UOrigin)/USpan, v = (y − VOrigin)/VSpan. Carried as plain data
// so a renderer can reproduce the parameterization exactly; tiling across
// the gable's sloped edge is only seam-free under this rule.
type UVRule struct {
	UOrigin float64 `json:"u_origin"`
	USpan   float64 `json:"u_span"`
	VOrigin float64 `json:"v_origin"`
	VSpan   float64 `json:"v_span"`
}

// Map returns the texture coordinates for an outline point.
func (r UVRule) Map(x, y float64) (u, v float64) {
	return (x - r.UOrigin) / r.USpan, (y - r.VOrigin) / r.VSpan
}

// Node is one transform descriptor in the layout tree. A node may carry a
// solid (Shape ≠ ShapeNone), children, or both. Child transforms are
// expressed in the parent's local frame, so a child of a tilted roof panel
// inherits the tilt without restating it.
type Node struct {
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Shape     Shape     `json:"shape"`
	Transform Transform `json:"transform"`
	Size      Vec3      `json:"size"`
	Outline   []Vec2    `json:"outline,omitempty"`
	Thickness float64   `json:"thickness,omitempty"`
	UV        *UVRule   `json:"uv,omitempty"`
	Color     string    `json:"color,omitempty"`
	Ref       string    `json:"ref,omitempty"`
	Children  []*Node   `json:"children,omitempty"`
}

// Scene is the complete layout for one building: a forest of descriptor
// trees, one entry per top-level element or group.
type Scene struct {
	Nodes []*Node `json:"nodes"`
}

// Walk visits every node in the scene depth-first, parents before
// children.
func (s *Scene) Walk(fn func(n *Node)) {
	var visit func(n *Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, n := range s.Nodes {
		visit(n)
	}
}

// Find returns the first node with the given name, or nil.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.Walk(func(n *Node) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}

// Solids counts the nodes that carry a solid shape.
func (s *Scene) Solids() int {
	count := 0
	s.Walk(func(n *Node) {
		if n.Shape != ShapeNone {
			count++
		}
	})
	return count
}
