package geometry

import "math"

// Vec2 is a point in a planar outline.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec3 is a point or direction in building space: +x across the width,
// +y up, +z along the length. The ground plane is y = 0 and the building
// footprint is centered on the origin.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// RotateX returns v rotated by a radians about the x axis.
func (v Vec3) RotateX(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY returns v rotated by a radians about the y axis.
func (v Vec3) RotateY(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ returns v rotated by a radians about the z axis.
func (v Vec3) RotateZ(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Euler holds rotation angles in radians about the x, y and z axes,
// applied in x, y, z order (the z rotation is outermost).
type Euler struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IsZero reports whether the rotation is the identity.
func (e Euler) IsZero() bool {
	return e.X == 0 && e.Y == 0 && e.Z == 0
}

// Apply rotates v by the Euler angles.
func (e Euler) Apply(v Vec3) Vec3 {
	if e.X != 0 {
		v = v.RotateX(e.X)
	}
	if e.Y != 0 {
		v = v.RotateY(e.Y)
	}
	if e.Z != 0 {
		v = v.RotateZ(e.Z)
	}
	return v
}

// Transform is a rigid local→world placement: rotation about the local
// origin followed by translation.
type Transform struct {
	Translation Vec3  `json:"translation"`
	Rotation    Euler `json:"rotation"`
}

// Apply maps a local-frame point into the parent frame.
func (t Transform) Apply(v Vec3) Vec3 {
	return t.Rotation.Apply(v).Add(t.Translation)
}
