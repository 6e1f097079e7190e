package physics

import (
	"math"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/vmath"
)

// SpheresOverlap reports whether two spheres touch or intersect
func SpheresOverlap(posA, posB vmath.Vec3F, radiusA, radiusB float64) bool {
	minDist := radiusA + radiusB
	return vmath.V3FMagSq(vmath.V3FSub(posB, posA)) <= minDist*minDist
}

// BelowGround reports whether a sphere has sunk through the ground plane
func BelowGround(pos vmath.Vec3F, radius, groundY float64) bool {
	return pos.Y+radius < groundY
}

// SegmentSphereEntry tests the swept segment a→b against a sphere, catching fast bodies that tunnel between steps
// It returns the parameter t in [0,1] where the segment first reaches the sphere, 0 when a already lies inside it
func SegmentSphereEntry(a, b, center vmath.Vec3F, radius float64) (float64, bool) {
	f := vmath.V3FSub(a, center)
	c := vmath.V3FMagSq(f) - radius*radius
	if c <= 0 {
		return 0, true
	}
	d := vmath.V3FSub(b, a)
	qa := vmath.V3FMagSq(d)
	if qa == 0 {
		return 0, false
	}
	qb := vmath.V3FDot(f, d)
	disc := qb*qb - qa*c
	if disc < 0 {
		return 0, false
	}
	t := (-qb - math.Sqrt(disc)) / qa
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// Collide separates two overlapping spheres in inverse proportion to mass and,
// when they approach, exchanges an impulse scaled by restitution
// Returns false when the spheres do not overlap or are coincident
func Collide(posA, posB, velA, velB *vmath.Vec3F, radiusA, radiusB, massA, massB, restitution float64) bool {
	delta := vmath.V3FSub(*posB, *posA)
	distSq := vmath.V3FMagSq(delta)
	minDist := radiusA + radiusB
	if distSq >= minDist*minDist || distSq == 0 {
		return false
	}

	massA = math.Max(massA, parameter.MinMass)
	massB = math.Max(massB, parameter.MinMass)

	dist := math.Sqrt(distSq)
	n := vmath.V3FScale(delta, 1/dist)
	push := minDist - dist + parameter.ContactMargin
	total := massA + massB
	*posA = vmath.V3FSub(*posA, vmath.V3FScale(n, push*massB/total))
	*posB = vmath.V3FAdd(*posB, vmath.V3FScale(n, push*massA/total))

	vn := vmath.V3FDot(vmath.V3FSub(*velA, *velB), n)
	if vn <= 0 {
		return true
	}
	j := (1 + restitution) * vn / (1/massA + 1/massB)
	*velA = vmath.V3FSub(*velA, vmath.V3FScale(n, j/massA))
	*velB = vmath.V3FAdd(*velB, vmath.V3FScale(n, j/massB))
	return true
}
