package shapes

import (
	"math"

	"golang.org/x/image/math/f32"
)

// rotationZ returns a row-major rotation by angle radians around the Z axis.
func rotationZ(angle float32) f32.Mat4 {
	s, c := math.Sincos(float64(angle))
	sin, cos := float32(s), float32(c)
	return f32.Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// scale returns a row-major uniform scale in X and Y.
func scale(k float32) f32.Mat4 {
	return f32.Mat4{
		k, 0, 0, 0,
		0, k, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// mul returns a*b for row-major matrices.
func mul(a, b f32.Mat4) f32.Mat4 {
	var m f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+c]
			}
			m[r*4+c] = sum
		}
	}
	return m
}
