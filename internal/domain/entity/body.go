package entity

import "math"

// Vec3 is a position or direction in world space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * k
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Length returns the euclidean length
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Horizontal drops the vertical component
func (v Vec3) Horizontal() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// Normalized returns a unit vector, or the zero vector for a zero input
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// HorizontalDistance returns the distance between two points on the X/Z plane
func HorizontalDistance(a, b Vec3) float64 {
	return a.Sub(b).Horizontal().Length()
}

// Body is the kinematic state of the player character.
// Yaw and pitch are in degrees; yaw 0 looks toward -Z.
type Body struct {
	Position Vec3
	Velocity Vec3
	Yaw      float64
	Pitch    float64

	OnFloor   bool
	Running   bool
	Crouching bool
}

// Forward returns the horizontal unit vector the body faces
func (b *Body) Forward() Vec3 {
	rad := b.Yaw * math.Pi / 180
	return Vec3{X: -math.Sin(rad), Z: -math.Cos(rad)}
}

// Right returns the horizontal unit vector to the right of the facing
func (b *Body) Right() Vec3 {
	rad := b.Yaw * math.Pi / 180
	return Vec3{X: math.Cos(rad), Z: -math.Sin(rad)}
}

// AimDirection returns the unit vector along yaw and pitch
func (b *Body) AimDirection() Vec3 {
	yaw := b.Yaw * math.Pi / 180
	pitch := b.Pitch * math.Pi / 180
	return Vec3{
		X: -math.Sin(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * math.Cos(pitch),
	}
}
