package nbody

import "math"

// Vec3 is a fixed 3-component vector. Every vector in the simulation
// (position, velocity, acceleration) is exactly 3-D.
type Vec3 [3]float64

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) Scale(factor float64) Vec3 {
	return Vec3{v[0] * factor, v[1] * factor, v[2] * factor}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Truncate squeezes each component through single precision and back.
// The semi-implicit stepper applies this to every committed state to
// study the long-term effect of precision loss on orbital stability.
func (v Vec3) Truncate() Vec3 {
	return Vec3{
		float64(float32(v[0])),
		float64(float32(v[1])),
		float64(float32(v[2])),
	}
}
