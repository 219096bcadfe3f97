// Package camera maps between world coordinates and screen pixels for a
// pannable, zoomable view. Camera is a value type: every operation returns a
// new Camera and leaves the receiver alone.
package camera

import (
	"math"

	"github.com/mpihlak/gosprouts/pkg/geometry"
)

const (
	MinZoom = 0.4
	MaxZoom = 4.0

	// ZoomStepFactor is applied per frame PageUp/PageDown is held.
	ZoomStepFactor = 1.1

	// baseKeySpeed is the pan distance in screen pixels per 60Hz frame.
	baseKeySpeed = 10.0
)

// Viewport is the size of the drawable area in pixels.
type Viewport struct {
	Width, Height float64
}

// Center returns the middle of the viewport in screen space.
func (v Viewport) Center() geometry.Point {
	return geometry.Point{X: v.Width * 0.5, Y: v.Height * 0.5}
}

// Camera is the world point shown at the viewport centre plus a zoom factor.
type Camera struct {
	X, Y float64
	Zoom float64
}

// New returns a camera centred on the world origin at 1:1 zoom.
func New() Camera {
	return Camera{Zoom: 1}
}

// WorldToScreen converts a world position into screen pixels.
func (c Camera) WorldToScreen(vp Viewport, p geometry.Point) geometry.Point {
	center := vp.Center()
	return geometry.Point{
		X: (p.X-c.X)*c.Zoom + center.X,
		Y: (p.Y-c.Y)*c.Zoom + center.Y,
	}
}

// ScreenToWorld converts screen pixels back into world coordinates.
func (c Camera) ScreenToWorld(vp Viewport, s geometry.Point) geometry.Point {
	center := vp.Center()
	return geometry.Point{
		X: (s.X-center.X)/c.Zoom + c.X,
		Y: (s.Y-center.Y)/c.Zoom + c.Y,
	}
}

// Scale converts a world length into pixels.
func (c Camera) Scale(length float64) float64 {
	return length * c.Zoom
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom], while
// keeping the world point under screen fixed on screen.
func (c Camera) ZoomAt(vp Viewport, screen geometry.Point, factor float64) Camera {
	before := c.ScreenToWorld(vp, screen)

	next := c
	next.Zoom = clampZoom(c.Zoom * factor)

	after := next.ScreenToWorld(vp, screen)
	next.X += before.X - after.X
	next.Y += before.Y - after.Y
	return next
}

// ZoomStep zooms in or out by ZoomStepFactor around the viewport centre.
func (c Camera) ZoomStep(in bool) Camera {
	next := c
	if in {
		next.Zoom = clampZoom(c.Zoom * ZoomStepFactor)
	} else {
		next.Zoom = clampZoom(c.Zoom / ZoomStepFactor)
	}
	return next
}

// Drag pans the camera by a pointer movement measured in screen pixels, so
// the world follows the pointer.
func (c Camera) Drag(dx, dy float64) Camera {
	next := c
	next.X -= dx / c.Zoom
	next.Y -= dy / c.Zoom
	return next
}

// Direction is a set of held pan keys.
type Direction struct {
	Up, Down, Left, Right bool
}

// KeyPan moves the camera for held arrow keys. mod is the frame length
// relative to a 60Hz frame. Diagonal movement is normalised so it is not
// faster than straight movement.
func (c Camera) KeyPan(dir Direction, mod float64) Camera {
	speed := baseKeySpeed * mod / c.Zoom

	vertical := dir.Up != dir.Down
	horizontal := dir.Left != dir.Right
	if vertical && horizontal {
		speed /= math.Sqrt2
	}

	next := c
	if dir.Up {
		next.Y -= speed
	}
	if dir.Down {
		next.Y += speed
	}
	if dir.Left {
		next.X -= speed
	}
	if dir.Right {
		next.X += speed
	}
	return next
}

func clampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
