package marcher3d

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 200 || cfg.Height != 60 || cfg.Speed != 1 || cfg.Glyphs != ".,-~:;=!*#$@" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.GIF.Frames != GIFFrames || cfg.GIF.Delay != GIFDelay || cfg.GIF.Scale != ImageScale {
		t.Fatalf("gif defaults: %+v", cfg.GIF)
	}
	if cam := cfg.Camera.Build(); cam != (Camera{Origin: V(0, 3, 0)}) {
		t.Fatalf("default camera: %+v", cam)
	}
	if len(cfg.SceneOptions()) != 0 || cfg.LightAngle() != 0 {
		t.Fatal("default light")
	}
}

func TestLoadConfigMissingDefaultPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("missing default config should fall back: %v", err)
	}
	if cfg.Width != Width {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing explicit config should fail")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"width": 80, "height": 20, "speed": 2, "workers": 3,
		"lightAngleDeg": 90, "lightRadius": 0,
		"camera": {"origin": {"X": 1, "Y": 2, "Z": 3}, "pitchDeg": 10, "yawDeg": 180},
		"gif": {"frames": 5}
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 20 || cfg.Speed != 2 || cfg.Workers != 3 {
		t.Fatalf("overrides: %+v", cfg)
	}
	if cfg.Glyphs != Glyphs || cfg.GIF.Frames != 5 || cfg.GIF.Delay != GIFDelay {
		t.Fatalf("defaults not filled: %+v", cfg)
	}
	cam := cfg.Camera.Build()
	if cam.Origin != V(1, 2, 3) || !approx(cam.Yaw, math.Pi, 1e-6) || !approx(cam.Pitch, math.Pi/18, 1e-6) {
		t.Fatalf("camera: %+v", cam)
	}
	if !approx(cfg.LightAngle(), math.Pi/2, 1e-6) {
		t.Fatalf("light angle: %v", cfg.LightAngle())
	}
	s, err := DefaultScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if l := s.LightDirection(); l != V(0, 1, 0) {
		t.Fatalf("zero light radius should light from above: %v", l)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{"workers": -1}`)); err == nil {
		t.Fatal("expected error for negative workers")
	}
	if _, err := LoadConfig(writeConfig(t, `{"width": -5}`)); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadConfig(writeConfig(t, `{"lightRadius": 0, "lightHeight": 0}`)); err != nil {
		t.Fatalf("light is validated when the scene is built: %v", err)
	}
}

func TestSetupAndExport(t *testing.T) {
	path := writeConfig(t, `{"width": 12, "height": 5, "gif": {"frames": 2, "scale": 1}}`)
	v, cfg, err := Setup(path)
	if err != nil {
		t.Fatal(err)
	}
	if v.Width != 12 || v.Height != 5 {
		t.Fatalf("viewer size: %dx%d", v.Width, v.Height)
	}
	if _, _, err := Setup(writeConfig(t, `{"lightRadius": 0, "lightHeight": 0}`)); err == nil {
		t.Fatal("expected error for a zero light")
	}

	dir := t.TempDir()
	for _, format := range []string{"png", "gif"} {
		out := filepath.Join(dir, "out."+format)
		if err := Export(v, cfg, format, out); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if st, err := os.Stat(out); err != nil || st.Size() == 0 {
			t.Fatalf("%s not written: %v", format, err)
		}
	}
	if err := Export(v, cfg, "bmp", filepath.Join(dir, "out.bmp")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
