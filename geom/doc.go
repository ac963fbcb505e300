// Package geom provides the immutable 2D value types the trajectory core is
// built on: translations, rotations, and poses. All types use value semantics
// and every operation returns a new value, so they are safe to share between
// goroutines without synchronization.
//
// Angles are radians everywhere; rotations are kept normalized to (−π, π] so
// that subtracting two rotations always yields the signed shortest arc
// between them.
package geom
