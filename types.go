package tween

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates both components independently.
func (Vec2) Lerp(start, end Vec2, alpha float64) Vec2 {
	return Vec2{
		X: start.X + (end.X-start.X)*alpha,
		Y: start.Y + (end.Y-start.Y)*alpha,
	}
}

// Color represents an RGBA color with components in [0, 1]. Not
// premultiplied. Easing curves that overshoot can push components outside
// [0, 1]; clamping is left to the renderer.
type Color struct {
	R, G, B, A float64
}

// Lerp interpolates all four channels independently.
func (Color) Lerp(start, end Color, alpha float64) Color {
	return Color{
		R: start.R + (end.R-start.R)*alpha,
		G: start.G + (end.G-start.G)*alpha,
		B: start.B + (end.B-start.B)*alpha,
		A: start.A + (end.A-start.A)*alpha,
	}
}
