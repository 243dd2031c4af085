// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/gable/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// Marching cubes resolution is chosen per solid: enough cells to put
// cellsAcrossFeature samples across the solid's thinnest dimension, so a
// half-foot wall skin survives meshing even on a building-length solid.
// The thinnest dimension is tracked through transforms on the wrapper
// because a rotated panel's bounding box no longer reveals it. The cell
// count is clamped so near-cubic fittings don't get needlessly dense
// grids and extreme aspect ratios stay within memory.
const (
	cellsAcrossFeature = 3
	minMeshCells       = 16
	maxMeshCells       = 768
)

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid. minFeature is
// the solid's thinnest dimension, invariant under the rigid transforms
// the kernel applies.
type sdfxSolid struct {
	s          sdf.SDF3
	minFeature float64
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3, minFeature float64) kernel.Solid {
	return &sdfxSolid{s: s, minFeature: minFeature}
}

// Box creates a box with the given extents, centered on the origin.
// Layout descriptors address element centers, so the sdf.Box3D centering
// is exactly the placement contract.
func (k *SdfxKernel) Box(x, y, z float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	return wrap(s, math.Min(x, math.Min(y, z)))
}

// Cylinder creates a cylinder of the given height and radius, centered on
// the origin with its axis along z. The segments parameter is ignored
// since SDF represents smooth surfaces.
func (k *SdfxKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	return wrap(s, math.Min(height, 2*radius))
}

// Extrude sweeps a closed profile in the xy plane along z, centered on
// the origin like the other primitives. The extrusion depth is taken as
// the thinnest dimension; profiles here (wall outlines) are always wider
// than the skin they extrude to.
func (k *SdfxKernel) Extrude(profile [][2]float64, thickness float64) kernel.Solid {
	pts := make([]v2.Vec, len(profile))
	for i, p := range profile {
		pts[i] = v2.Vec{X: p[0], Y: p[1]}
	}
	s2, err := sdf.Polygon2D(pts)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Polygon2D: %v", err))
	}
	return wrap(sdf.Extrude3D(s2, thickness), thickness)
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)),
		math.Min(a.(*sdfxSolid).minFeature, b.(*sdfxSolid).minFeature))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)),
		math.Min(a.(*sdfxSolid).minFeature, b.(*sdfxSolid).minFeature))
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)),
		math.Min(a.(*sdfxSolid).minFeature, b.(*sdfxSolid).minFeature))
}

// Translate moves a solid by (x, y, z).
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m), s.(*sdfxSolid).minFeature)
}

// Rotate rotates a solid by Euler angles in radians, applied about the
// x, then y, then z axes.
func (k *SdfxKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.RotateZ(z).Mul(sdf.RotateY(y)).Mul(sdf.RotateX(x))
	return wrap(sdf.Transform3D(unwrap(s), m), s.(*sdfxSolid).minFeature)
}

// meshCells returns the marching cubes cell count along the longest
// bounding box axis for this solid.
func meshCells(s *sdfxSolid) int {
	bb := s.s.BoundingBox()
	size := bb.Size()
	longest := math.Max(size.X, math.Max(size.Y, size.Z))
	if longest <= 0 {
		return minMeshCells
	}

	cellSize := longest / float64(maxMeshCells)
	if s.minFeature > 0 {
		cellSize = s.minFeature / cellsAcrossFeature
	}

	cells := int(math.Ceil(longest / cellSize))
	if cells < minMeshCells {
		return minMeshCells
	}
	if cells > maxMeshCells {
		return maxMeshCells
	}
	return cells
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	solid := s.(*sdfxSolid)

	renderer := render.NewMarchingCubesUniform(meshCells(solid))
	triangles := render.ToTriangles(solid.s, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Flat shading: one face normal per triangle corner.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
