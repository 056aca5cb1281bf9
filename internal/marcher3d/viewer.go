package marcher3d

import (
	"fmt"
	"math"
	"strings"
)

// Command is a single viewer input.
type Command uint8

const (
	CmdNone Command = iota
	CmdForward
	CmdBackward
	CmdRight
	CmdLeft
	CmdUp
	CmdDown
	CmdRotateLight
	CmdYawLeft
	CmdYawRight
	CmdPitchUp
	CmdPitchDown
	CmdReset
	CmdQuit
)

var commandNames = map[string]Command{
	"w":    CmdForward,
	"s":    CmdBackward,
	"d":    CmdRight,
	"a":    CmdLeft,
	"z":    CmdUp,
	"c":    CmdDown,
	"x":    CmdRotateLight,
	"e":    CmdYawLeft,
	"q":    CmdYawRight,
	"r":    CmdPitchUp,
	"f":    CmdPitchDown,
	"0":    CmdReset,
	"quit": CmdQuit,
	"exit": CmdQuit,
}

// ParseCommand maps a line or key of user input to a command. Unknown input is CmdNone.
func ParseCommand(input string) Command {
	return commandNames[strings.ToLower(strings.TrimSpace(input))]
}

// Viewer holds the mutable state of an interactive session. It is not safe for
// concurrent use: one goroutine applies commands and renders between them.
type Viewer struct {
	Scene   *Scene
	Camera  Camera
	Start   Camera
	Speed   Real
	Ramp    Ramp
	Width   int
	Height  int
	Workers int
}

// NewViewer builds a viewer over scene from cfg.
func NewViewer(scene *Scene, cfg *Config) (*Viewer, error) {
	if scene == nil {
		return nil, ErrEmptyScene
	}
	ramp, err := NewRamp(cfg.Glyphs)
	if err != nil {
		return nil, err
	}
	cam := cfg.Camera.Build()
	return &Viewer{
		Scene:   scene,
		Camera:  cam,
		Start:   cam,
		Speed:   cfg.Speed,
		Ramp:    ramp,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Workers: cfg.Workers,
	}, nil
}

// Apply executes cmd and reports whether the session should continue.
func (v *Viewer) Apply(cmd Command) bool {
	const turn = math.Pi * TurnStep
	c := &v.Camera
	var offset Vector3
	switch cmd {
	case CmdForward:
		offset = Forward(c.Pitch, c.Yaw)
	case CmdBackward:
		offset = Backward(c.Pitch, c.Yaw)
	case CmdRight:
		offset = Right(c.Pitch, c.Yaw)
	case CmdLeft:
		offset = Left(c.Pitch, c.Yaw)
	case CmdUp:
		offset = Up(c.Pitch, c.Yaw)
	case CmdDown:
		offset = Down(c.Pitch, c.Yaw)
	case CmdRotateLight:
		v.Scene.RotateLight(turn)
	case CmdYawLeft:
		c.Yaw -= turn
	case CmdYawRight:
		c.Yaw += turn
	case CmdPitchUp:
		c.Pitch = clamp(c.Pitch+turn, -math.Pi*maxPitchAbs, math.Pi*maxPitchAbs)
	case CmdPitchDown:
		c.Pitch = clamp(c.Pitch-turn, -math.Pi*maxPitchAbs, math.Pi*maxPitchAbs)
	case CmdReset:
		*c = v.Start
	case CmdQuit:
		return false
	}
	c.Origin = c.Origin.Add(offset.Mul(v.Speed))
	return true
}

// Frame renders the current state.
func (v *Viewer) Frame() *Frame {
	return Render(v.Scene, v.Camera, v.Ramp, v.Width, v.Height, v.Workers)
}

// Screen renders the current state followed by the status line: Height+1 lines,
// each ending in a newline.
func (v *Viewer) Screen() string {
	return v.Frame().String() + v.Status() + "\n"
}

// Status is a one-line summary of the camera and light.
func (v *Viewer) Status() string {
	c := v.Camera
	return fmt.Sprintf("origin %v  pitch %.3f  yaw %.3f  light %.3f", c.Origin, c.Pitch, c.Yaw, v.Scene.LightAngle())
}
