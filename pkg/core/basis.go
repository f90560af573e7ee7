package core

import "math"

// BuildOrthonormalBasis constructs two unit vectors perpendicular to the
// given unit normal, forming a right-handed tangent frame. The helper
// axis is chosen to avoid near-parallel cross products.
func BuildOrthonormalBasis(normal Vec3) (tangent, bitangent Vec3) {
	var helper Vec3
	if math.Abs(normal.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}

	tangent = helper.Cross(normal).Normalize()
	bitangent = normal.Cross(tangent)
	return tangent, bitangent
}
