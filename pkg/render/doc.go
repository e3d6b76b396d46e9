// Package render draws a triangle layout as immediate-mode commands and
// rasterizes them into an image. Commands is pure; Rasterize is one of
// several possible consumers of its output.
package render
