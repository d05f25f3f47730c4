// Package layout implements the math of the tessera layout kernel.
//
// It defines the unit value algebra (absolute, parent-relative, rem, and
// viewport terms), float32 geometry, the four layout descriptors
// (Boundary, Window, Solid, Div), and the stack placement algorithm used
// for Div containers. Types are re-exported through the root tessera
// package for public consumption.
//
// Everything here is pure: descriptors map a parent rectangle plus an
// evaluation environment to a child rectangle and nothing mutates shared
// state. The tree traversal that drives these functions lives in the root
// package.
package layout
