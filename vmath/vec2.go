package vmath

// Vec2 is a float64 2D vector in field units
// Used by value; positions and velocities are never shared between entities
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Integrate returns pos advanced by vel over dt seconds
func V2Integrate(pos, vel Vec2, dt float64) Vec2 {
	return V2Add(pos, V2Scale(vel, dt))
}

// V2ReflectX returns velocity reflected off a vertical surface (paddle face)
func V2ReflectX(v Vec2) Vec2 {
	return Vec2{-v.X, v.Y}
}

// V2ReflectY returns velocity reflected off a horizontal surface (top/bottom wall)
func V2ReflectY(v Vec2) Vec2 {
	return Vec2{v.X, -v.Y}
}
