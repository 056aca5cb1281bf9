package window

import (
	"strings"
	"testing"

	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
)

func TestCommandsFor(t *testing.T) {
	got := commandsFor([]rune("w?xq"), false)
	want := []marcher3d.Command{marcher3d.CmdForward, marcher3d.CmdRotateLight, marcher3d.CmdYawRight}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestCommandsForEscape(t *testing.T) {
	got := commandsFor(nil, true)
	if len(got) != 1 || got[0] != marcher3d.CmdQuit {
		t.Fatalf("escape should quit, got %v", got)
	}
	if got := commandsFor([]rune("  "), false); len(got) != 0 {
		t.Fatalf("blank input should yield nothing, got %v", got)
	}
}

func TestScreenTextFitsLayout(t *testing.T) {
	cfg := marcher3d.DefaultConfig()
	cfg.Width, cfg.Height = 24, 7
	scene, err := marcher3d.DefaultScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	v, err := marcher3d.NewViewer(scene, cfg)
	if err != nil {
		t.Fatal(err)
	}
	text := screenText(v)
	lines := strings.Split(text, "\n")
	w, h := screenSize(v)
	if len(lines) != cfg.Height+1 {
		t.Fatalf("expected %d rows plus status, got %d lines: %q", cfg.Height, len(lines), text)
	}
	if len(lines)*cellH != h {
		t.Fatalf("%d lines do not fill a %dpx tall layout", len(lines), h)
	}
	if !strings.HasPrefix(lines[len(lines)-1], "origin") {
		t.Fatalf("last line should be the status, got %q", lines[len(lines)-1])
	}
	if len([]rune(lines[0]))*cellW != w {
		t.Fatalf("row width %d does not match layout %d", len([]rune(lines[0])), w)
	}
}
