package marcher3d

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
)

// CameraCfg is the starting viewpoint; angles in degrees for JSON (friendlier than radians).
type CameraCfg struct {
	Origin   *Vector3 `json:"origin,omitempty"`
	PitchDeg Real     `json:"pitchDeg"`
	YawDeg   Real     `json:"yawDeg"`
}

type GIFCfg struct {
	Frames int `json:"frames,omitempty"`
	Delay  int `json:"delay,omitempty"` // 100ths of a second per frame
	Scale  int `json:"scale,omitempty"` // output pixels per cell horizontally
}

// Config describes the viewer. The scene itself is built in code.
type Config struct {
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Speed         Real      `json:"speed"`
	Workers       int       `json:"workers,omitempty"`
	Glyphs        string    `json:"glyphs,omitempty"`
	LightAngleDeg Real      `json:"lightAngleDeg"`
	LightRadius   *Real     `json:"lightRadius,omitempty"`
	LightHeight   *Real     `json:"lightHeight,omitempty"`
	Camera        CameraCfg `json:"camera"`
	GIF           GIFCfg    `json:"gif"`
}

const degToRad = math.Pi / 180

// Build converts the configured angles to radians.
func (c CameraCfg) Build() Camera {
	origin := Vector3{0, 3, 0}
	if c.Origin != nil {
		origin = *c.Origin
	}
	return Camera{Origin: origin, Pitch: c.PitchDeg * degToRad, Yaw: c.YawDeg * degToRad}
}

// SceneOptions returns the light options requested by the configuration.
func (c *Config) SceneOptions() []SceneOption {
	var opts []SceneOption
	if c.LightRadius != nil {
		opts = append(opts, WithLightRadius(*c.LightRadius))
	}
	if c.LightHeight != nil {
		opts = append(opts, WithLightHeight(*c.LightHeight))
	}
	return opts
}

// LightAngle is the configured light azimuth in radians.
func (c *Config) LightAngle() Real { return c.LightAngleDeg * degToRad }

// DefaultConfig is the reference viewer: 200x60 cells, speed 1, 12-glyph ramp.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Width == 0 {
		c.Width = Width
	}
	if c.Height == 0 {
		c.Height = Height
	}
	if c.Speed == 0 {
		c.Speed = Speed
	}
	if c.Workers == 0 {
		c.Workers = Workers
	}
	if c.Glyphs == "" {
		c.Glyphs = Glyphs
	}
	if c.GIF.Frames <= 0 {
		c.GIF.Frames = GIFFrames
	}
	if c.GIF.Delay <= 0 {
		c.GIF.Delay = GIFDelay
	}
	if c.GIF.Scale <= 0 {
		c.GIF.Scale = ImageScale
	}
}

// Validate rejects settings that cannot be rendered.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if !isFinite(c.Speed) {
		return fmt.Errorf("speed must be finite, got %g", c.Speed)
	}
	if _, err := NewRamp(c.Glyphs); err != nil {
		return err
	}
	if o := c.Camera.Origin; o != nil && !o.IsFinite() {
		return fmt.Errorf("camera origin must be finite, got %v", *o)
	}
	return nil
}

// LoadConfig reads a JSON viewer configuration. A missing file at the default
// path yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == ConfigPath {
			DebugLog("No %s, using default viewer configuration", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), speed=%g, workers=%d, glyphs=%q", path, cfg.Width, cfg.Height, cfg.Speed, cfg.Workers, cfg.Glyphs)
	return &cfg, nil
}
