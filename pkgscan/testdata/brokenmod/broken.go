// Package brokenmod is a scan fixture with one unresolvable import.
// Mesh depends on the vanished package and cannot resolve; Point and
// Circle stay healthy.
package brokenmod

import "example.com/vanished/render"

// Point is independent of the broken import.
type Point struct {
	X, Y float64
}

// Circle is independent of the broken import.
type Circle struct {
	Center Point
	Radius float64
}

// Mesh references the vanished import and fails to resolve.
type Mesh struct {
	Renderer render.Renderer
}
