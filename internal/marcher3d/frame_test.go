package marcher3d

import (
	"strings"
	"testing"
)

func defaultScene(t *testing.T) *Scene {
	t.Helper()
	s, err := DefaultScene(nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDefaultScene(t *testing.T) {
	s := defaultScene(t)
	if s.Len() != 3 {
		t.Fatalf("objects: %d", s.Len())
	}
	if _, ok := s.Object(0).(*Sphere); !ok {
		t.Fatal("object 0 should be the sphere")
	}
	if _, ok := s.Object(1).(*Cube); !ok {
		t.Fatal("object 1 should be the cube")
	}
	if _, ok := s.Object(2).(*Ground); !ok {
		t.Fatal("object 2 should be the ground")
	}
}

func TestRenderIsIndependentOfWorkers(t *testing.T) {
	s := defaultScene(t)
	cam := Camera{Origin: V(0, 3, 0)}
	one := Render(s, cam, DefaultRamp(), 40, 12, 1)
	four := Render(s, cam, DefaultRamp(), 40, 12, 4)
	if one.String() != four.String() {
		t.Fatalf("frames differ:\n%s\n%s", one, four)
	}
	for i := range one.Intensity {
		if one.Intensity[i] != four.Intensity[i] || one.Hits[i] != four.Hits[i] {
			t.Fatalf("cell %d differs", i)
		}
	}
}

func TestRenderFrameShape(t *testing.T) {
	s := defaultScene(t)
	f := Render(s, Camera{Origin: V(0, 3, 0)}, nil, 40, 12, 0)
	if f.Width != 40 || f.Height != 12 || len(f.Cells) != 480 {
		t.Fatalf("frame size: %dx%d (%d cells)", f.Width, f.Height, len(f.Cells))
	}
	lines := strings.Split(strings.TrimSuffix(f.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("lines: %d", len(lines))
	}
	for y, line := range lines {
		if line != f.Row(y) || len([]rune(line)) != 40 {
			t.Fatalf("row %d mismatch", y)
		}
	}
	// the bottom row looks down at the ground
	for x := 0; x < f.Width; x++ {
		if !f.Hits[f.idx(x, f.Height-1)] || f.At(x, f.Height-1) == MissGlyph {
			t.Fatalf("bottom row cell %d should hit the ground", x)
		}
	}
	if c := f.Coverage(); c <= 0 || c > 1 {
		t.Fatalf("coverage: %v", c)
	}
	for i, hit := range f.Hits {
		if !hit && (f.Cells[i] != MissGlyph || f.Intensity[i] != 0) {
			t.Fatalf("missed cell %d should be blank and dark", i)
		}
	}
}

func TestRenderLookingAtSkyIsBlank(t *testing.T) {
	s := mustScene(t, []Object{NewGround()})
	cam := Camera{Origin: V(0, 3, 0), Pitch: 1.4}
	f := Render(s, cam, DefaultRamp(), 20, 6, 2)
	if f.Coverage() != 0 {
		t.Fatalf("sky view should miss everything, coverage %v", f.Coverage())
	}
	if strings.Trim(f.String(), " \n") != "" {
		t.Fatalf("expected a blank frame:\n%s", f)
	}
}

func TestRenderPanicsOnEmptyResolution(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Render(defaultScene(t), Camera{}, DefaultRamp(), 0, 10, 1)
}
