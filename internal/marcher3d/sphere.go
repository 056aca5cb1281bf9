package marcher3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Sphere is a ball around Center with the given Radius.
type Sphere struct {
	Center Vector3
	Radius Real
}

// NewSphere validates the radius and builds a sphere.
func NewSphere(center Vector3, radius Real) (*Sphere, error) {
	if !(radius > 0) || math32.IsInf(radius, 1) {
		return nil, fmt.Errorf("sphere radius must be finite and > 0, got %g", radius)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("sphere center must be finite, got %v", center)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

func (s *Sphere) SignedDistance(p Vector3) Real {
	return s.Center.Distance(p) - s.Radius
}

func (s *Sphere) Position() Vector3 { return s.Center }

func (s *Sphere) String() string { return fmt.Sprintf("sphere(c=%v, r=%g)", s.Center, s.Radius) }
