// Package geometry derives the complete 3D layout of a metal building
// from its parametric model: wall frames and gable outlines, roof panels
// and ridge, skylight placement, structural beam rows, gutters and
// downspouts. Every element is described by a transform descriptor
// (translation, Euler rotation in radians, size) arranged in a small
// tree; rendering and mesh generation are consumers of these
// descriptors, never participants in their computation.
//
// Coordinate system: +x across the building width, +y up, +z along the
// length; the footprint is centered on the origin with the ground at
// y = 0. Child node transforms are local to their parent, which is how a
// skylight inherits its roof panel's tilt without restating it.
//
// All functions here are pure and total: no I/O, no mutation of the
// input building, no validation, and no error paths. A flat roof
// (pitch 0) is an ordinary input, not an edge to reject. Identical
// inputs yield identical descriptor trees, so results may be memoized
// keyed on the building fingerprint.
package geometry
