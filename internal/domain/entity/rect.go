package entity

import "image"

// Rect is an axis-aligned bounding box in world coordinates.
// Hitboxes are derived from actor position and state each tick,
// never stored.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rects intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// RenderState is the read-only snapshot the renderer consumes after
// combat resolution: where to draw, which frame, which way to face,
// and whether the damage tint is on this tick.
type RenderState struct {
	X, Y        float64
	TextureID   string
	FrameRect   image.Rectangle
	FrameW      int
	FrameH      int
	FacingRight bool
	FlashOn     bool
}
