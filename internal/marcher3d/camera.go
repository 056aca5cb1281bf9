package marcher3d

import "github.com/chewxy/math32"

// Camera is a free-fly viewpoint. Pitch and Yaw are in radians.
type Camera struct {
	Origin Vector3
	Pitch  Real
	Yaw    Real
}

func Forward(pitch, yaw Real) Vector3 {
	xz := math32.Cos(pitch)
	return Vector3{xz * math32.Sin(-yaw), math32.Sin(pitch), xz * math32.Cos(yaw)}
}

func Backward(pitch, yaw Real) Vector3 { return Forward(pitch, yaw).Mul(-1) }

// Up mirrors the viewer's historical basis, it is not orthogonal to Forward for non-zero yaw.
func Up(pitch, yaw Real) Vector3 {
	xz := math32.Cos(pitch)
	return Vector3{xz * math32.Sin(-yaw), xz * math32.Cos(yaw), math32.Sin(pitch)}
}

func Down(pitch, yaw Real) Vector3 { return Up(pitch, yaw).Mul(-1) }

func Right(pitch, yaw Real) Vector3 {
	f := Forward(pitch, yaw)
	return Vector3{f.Z, f.Y, -f.X}
}

func Left(pitch, yaw Real) Vector3 { return Right(pitch, yaw).Mul(-1) }

func (c Camera) Forward() Vector3 { return Forward(c.Pitch, c.Yaw) }

// Ray returns the unit direction through character cell (i, j) of a width x height grid,
// j counts rows upwards from the bottom.
func (c Camera) Ray(i, j, width, height int) Vector3 {
	frag := Vector3{Real(i), Real(j), 0}
	uv := frag.Sub(Vector3{Real(width), Real(height), 0}.Mul(0.5)).Div(Real(height))
	return c.Forward().Add(Vector3{uv.X, uv.Y, 0}).Norm()
}
