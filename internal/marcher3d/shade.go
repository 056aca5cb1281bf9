package marcher3d

// Normal estimates the surface normal at p from the distance field gradient.
// Each partial is a backward difference d(p) - d(p - eps*axis).
func Normal(scene *Scene, p Vector3) Vector3 {
	d := scene.SignedDistance(p).Distance
	n := Vector3{
		d - scene.SignedDistance(p.Sub(Vector3{NormalEpsilon, 0, 0})).Distance,
		d - scene.SignedDistance(p.Sub(Vector3{0, NormalEpsilon, 0})).Distance,
		d - scene.SignedDistance(p.Sub(Vector3{0, 0, NormalEpsilon})).Distance,
	}
	return n.Norm()
}

// Light returns the diffuse intensity in [0,1] at surface point p.
// Points whose path to the light is blocked keep ShadowFactor of their intensity.
func Light(scene *Scene, p Vector3) Real {
	l := scene.LightDirection()
	n := Normal(scene, p)

	shadow := March(scene, p.Add(n.Mul(ThresholdDistance*2)), l)
	dif := clamp(n.Dot(l), 0, 1)
	if shadow.Hit() {
		dif *= ShadowFactor
	}
	return dif
}
