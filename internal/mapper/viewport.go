package mapper

// ViewportBounds builds the box covered by a view box. Non-positive sizes
// produce an empty or inverted box.
func ViewportBounds(originX, originY, width, height float64) BoundingBox {
	return BoundingBox{
		Left:   originX,
		Right:  originX + width,
		Top:    originY,
		Bottom: originY + height,
	}
}

// IsVisible reports whether an element's box overlaps the viewport.
// Boxes that only touch along an edge are visible.
func IsVisible(element, viewport BoundingBox) bool {
	return !(element.Right < viewport.Left ||
		element.Left > viewport.Right ||
		element.Bottom < viewport.Top ||
		element.Top > viewport.Bottom)
}
