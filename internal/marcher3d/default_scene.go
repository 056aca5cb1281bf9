package marcher3d

// DefaultScene builds the demo world: a sphere resting above the ground with a
// large cube floating behind it.
func DefaultScene(cfg *Config) (*Scene, error) {
	sphere, err := NewSphere(Vector3{0, 5, 15}, 3)
	if err != nil {
		return nil, err
	}
	cube, err := NewCube(Vector3{0, 15, 15}, Vector3{5, 5, 5})
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return NewScene(cfg.LightAngle(), []Object{sphere, cube, NewGround()}, cfg.SceneOptions()...)
}
