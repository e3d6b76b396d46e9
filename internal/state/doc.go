// Package state holds the calculator's presentation state and the pure
// functions that update it on user events.
package state
