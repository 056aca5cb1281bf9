package marcher3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

type Real = float32

// Vector3 is a point or a direction in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// V is a shorthand constructor.
func V(x, y, z Real) Vector3 { return Vector3{x, y, z} }

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Div(s Real) Vector3    { return Vector3{v.X / s, v.Y / s, v.Z / s} }

// Abs returns the component-wise absolute value.
func (v Vector3) Abs() Vector3 {
	return Vector3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}

// MaxScalar returns the component-wise maximum against s.
func (v Vector3) MaxScalar(s Real) Vector3 {
	return Vector3{math32.Max(v.X, s), math32.Max(v.Y, s), math32.Max(v.Z, s)}
}

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		-(a.X*b.Z - a.Z*b.X),
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math32.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A zero vector has no direction: the result is NaN in every component.
func (v Vector3) Norm() Vector3 {
	return v.Div(v.Len())
}

// Distance returns the distance between two points.
func (a Vector3) Distance(b Vector3) Real { return a.Sub(b).Len() }

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }

func (v Vector3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
