// Package kernel defines the abstract geometry kernel interface used to
// realize layout descriptors as solids and triangle meshes.
// Implementations (sdfx today) provide primitives, boolean operations and
// meshing behind this interface so the backend can be swapped without
// touching the layout or assembly code.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Primitives are
// centered on the origin; placement happens through Translate/Rotate,
// mirroring how layout descriptors address element centers.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid
	// Extrude sweeps a closed planar profile (in the xy plane) along z
	// to the given thickness, centered like the other primitives. Used
	// for gable wall outlines.
	Extrude(profile [][2]float64, thickness float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in radians, x then y then z

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
