package marcher3d

const (
	MaxSteps          = 100   // sphere tracing iteration budget
	MaxDistance       = 1000  // rays travelling further than this escaped
	ThresholdDistance = 0.001 // distance below which a sample counts as a hit
	NormalEpsilon     = 0.01  // finite difference step for normals
	ShadowFactor      = 0.1   // intensity kept by occluded points
	// viewer defaults
	Width       = 200
	Height      = 60
	Speed       = 1.0
	TurnStep    = 0.025 // fraction of Pi per yaw/pitch/light command
	Glyphs      = ".,-~:;=!*#$@"
	ConfigPath  = "config.json"
	GIFFrames   = 48
	GIFDelay    = 8          // 100ths of a second per frame
	ImageScale  = 4          // output pixels per character cell (horizontally)
	maxPitchAbs = 0.99 * 0.5 // fraction of Pi
)
