package marcher3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Cube is an axis-aligned box centered at Center; Half holds the half-extents per axis.
type Cube struct {
	Center Vector3
	Half   Vector3
}

// NewCube validates the half-extents and builds a box.
func NewCube(center, half Vector3) (*Cube, error) {
	if !(half.X > 0 && half.Y > 0 && half.Z > 0) || !half.IsFinite() {
		return nil, fmt.Errorf("cube half-extents must be finite and > 0 on all axes, got %v", half)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("cube center must be finite, got %v", center)
	}
	return &Cube{Center: center, Half: half}, nil
}

// SignedDistance is the exact box distance: the outside part is the length of the
// positive slab offsets, the inside part is the least deep face penetration.
func (c *Cube) SignedDistance(p Vector3) Real {
	o := p.Sub(c.Center).Abs().Sub(c.Half)
	ud := o.MaxScalar(0).Len()
	n := math32.Max(math32.Max(math32.Min(o.X, 0), math32.Min(o.Y, 0)), math32.Min(o.Z, 0))
	return ud + n
}

func (c *Cube) Position() Vector3 { return c.Center }

func (c *Cube) String() string { return fmt.Sprintf("cube(c=%v, half=%v)", c.Center, c.Half) }
