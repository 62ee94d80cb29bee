package render

import "github.com/taigrr/tinyrender/pkg/math3d"

// FaceNormal returns the unit normal of the face v0, v1, v2 computed as
// (v2-v0) × (v1-v0). The operand order fixes which winding faces the light;
// a degenerate face yields the zero vector.
func FaceNormal(v0, v1, v2 math3d.Vec3) math3d.Vec3 {
	return v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
}

// FaceIntensity returns the diffuse intensity of the face under a
// directional light: the dot product of the face normal and lightDir.
// lightDir is used as given; callers normally pass a unit vector.
func FaceIntensity(v0, v1, v2, lightDir math3d.Vec3) float64 {
	return FaceNormal(v0, v1, v2).Dot(lightDir)
}

// ShadeFace computes the flat color of a face. It reports false when the
// face is turned away from the light (intensity <= 0) and must be culled.
// Otherwise the RGB channels of base are scaled by the intensity and
// clamped; alpha is kept.
func ShadeFace(v0, v1, v2, lightDir math3d.Vec3, base Color) (Color, bool) {
	intensity := FaceIntensity(v0, v1, v2, lightDir)
	if intensity <= 0 {
		return Color{}, false
	}
	return ScaleColor(base, intensity), true
}
