package marcher3d

import (
	"fmt"
	"strings"
	"time"
)

// Setup loads the viewer configuration and builds the demo scene and viewer.
func Setup(cfgPath string) (*Viewer, *Config, error) {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	scene, err := DefaultScene(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build scene: %w", err)
	}
	v, err := NewViewer(scene, cfg)
	if err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}

// Export renders the viewer's current state to an image file; format is "png" or "gif".
func Export(v *Viewer, cfg *Config, format, path string) error {
	start := time.Now()
	var err error
	switch strings.ToLower(format) {
	case "png":
		if path == "" {
			path = "frame.png"
		}
		err = SavePNG16(v.Frame(), path, cfg.GIF.Scale)
	case "gif":
		if path == "" {
			path = "orbit.gif"
		}
		err = SaveLightOrbitGIF(v, path, cfg.GIF.Frames, cfg.GIF.Delay, cfg.GIF.Scale)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	DebugLog("Exported %s in %s", path, time.Since(start))
	return nil
}
