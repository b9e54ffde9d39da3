// Package geom provides the float geometry value types shared by the layouts.
//
// Every type is a plain value: operations return new values and never mutate
// the receiver. Rectangles are half-open, so rectangles that only share an
// edge do not intersect.
package geom
