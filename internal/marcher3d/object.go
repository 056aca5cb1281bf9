package marcher3d

// Object is a distance-queryable body of the scene.
type Object interface {
	// SignedDistance is negative inside the body, zero on its surface and positive outside.
	SignedDistance(p Vector3) Real
	// Position is the anchor point of the body.
	Position() Vector3
}
