// Package console drives the calculator state from text streams: an
// interactive session and batch totals over a file of side triples.
package console
