package marcher3d

// Ground is the infinite horizontal plane y = 0.
type Ground struct{}

func NewGround() *Ground { return &Ground{} }

func (*Ground) SignedDistance(p Vector3) Real { return p.Y }

// Position has no natural meaning for a plane, the origin is reported.
func (*Ground) Position() Vector3 { return Vector3{} }

func (*Ground) String() string { return "ground(y=0)" }
