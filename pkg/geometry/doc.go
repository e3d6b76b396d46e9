// Package geometry computes triangle properties from three side lengths:
// validity under the strict triangle inequality, area by Heron's formula and
// the vertex layout used to draw the triangle on a bounded surface.
//
// Nothing here returns an error. Sides that cannot form a triangle yield an
// invalid Area and a Layout reported as not drawable.
package geometry
