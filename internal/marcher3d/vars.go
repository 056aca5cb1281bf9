package marcher3d

var (
	Debug   = false // set to true for verbose debug output and march statistics
	Workers = 0     // render goroutines, 0 means runtime.NumCPU()
	// Compile time checks to ensure that the Object interface is implemented by all primitives
	_ Object = (*Sphere)(nil)
	_ Object = (*Cube)(nil)
	_ Object = (*Ground)(nil)
)
