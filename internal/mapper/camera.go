package mapper

// Camera is the view state needed to place the view box in world space.
// Center is the world origin the view is anchored on (the current zone);
// Pan is the drag offset in screen pixels.
type Camera struct {
	Center Point
	Pan    Point
	Zoom   float64
	Width  float64 // container size in screen pixels
	Height float64
}

// ViewBox returns the world rectangle shown by the camera.
func (c Camera) ViewBox() BoundingBox {
	zoom := ClampZoom(c.Zoom)
	w := c.Width / zoom
	h := c.Height / zoom
	cx := c.Center.X - c.Pan.X/zoom
	cy := c.Center.Y - c.Pan.Y/zoom
	return ViewportBounds(cx-w/2, cy-h/2, w, h)
}

// ScreenToWorld converts a point in container pixels to world pixels.
func (c Camera) ScreenToWorld(sx, sy float64) Point {
	box := c.ViewBox()
	return Point{
		X: box.Left + sx/c.Width*box.Width(),
		Y: box.Top + sy/c.Height*box.Height(),
	}
}

// ZoomAt scales the zoom by factor and adjusts the pan so the world point
// under (sx, sy) stays under the cursor. The result zoom is clamped.
func (c Camera) ZoomAt(sx, sy, factor float64) Camera {
	anchor := c.ScreenToWorld(sx, sy)

	next := c
	next.Zoom = ClampZoom(ClampZoom(c.Zoom) * factor)

	w := c.Width / next.Zoom
	h := c.Height / next.Zoom
	cx := anchor.X - sx/c.Width*w + w/2
	cy := anchor.Y - sy/c.Height*h + h/2

	next.Pan = Point{
		X: (c.Center.X - cx) * next.Zoom,
		Y: (c.Center.Y - cy) * next.Zoom,
	}
	return next
}

// WheelFactor returns the zoom factor for one wheel notch.
func WheelFactor(deltaY float64) float64 {
	if deltaY > 0 {
		return 0.9
	}
	return 1.1
}
