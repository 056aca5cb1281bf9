package marcher3d

import (
	"math"
	"testing"
)

func TestSphereSignedDistance(t *testing.T) {
	s, err := NewSphere(V(0, 0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		p    Vector3
		want Real
	}{
		{V(2, 0, 0), 1},
		{V(0, 0, 0), -1},
		{V(0, 1, 0), 0},
		{V(0, 0, -3), 2},
	}
	for _, c := range cases {
		if got := s.SignedDistance(c.p); !approx(got, c.want, 1e-6) {
			t.Errorf("sphere d(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	if s.Position() != V(0, 0, 0) {
		t.Fatalf("position: %v", s.Position())
	}
}

func TestNewSphereRejectsBadRadius(t *testing.T) {
	for _, r := range []Real{0, -1, Real(math.NaN()), Real(math.Inf(1))} {
		if _, err := NewSphere(V(0, 0, 0), r); err == nil {
			t.Errorf("expected error for radius %v", r)
		}
	}
	if _, err := NewSphere(V(Real(math.NaN()), 0, 0), 1); err == nil {
		t.Error("expected error for NaN center")
	}
}

func TestCubeSignedDistance(t *testing.T) {
	c, err := NewCube(V(0, 0, 0), V(1, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		p    Vector3
		want Real
	}{
		{V(2, 0, 0), 1},
		{V(3, 0, 0), 2},
		{V(0, 0, 0), -1},
		{V(0.5, 0, 0), -0.5},
		{V(1, 0, 0), 0},
		{V(2, 2, 0), Real(math.Sqrt2)},
		{V(2, 2, 2), Real(math.Sqrt(3))},
	}
	for _, tc := range cases {
		if got := c.SignedDistance(tc.p); !approx(got, tc.want, 1e-6) {
			t.Errorf("cube d(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestCubeOffCenterAndAnisotropic(t *testing.T) {
	c, err := NewCube(V(0, 15, 15), V(5, 2, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.SignedDistance(V(0, 15, 20)); !approx(got, 4, 1e-6) {
		t.Fatalf("z face distance: %v", got)
	}
	if got := c.SignedDistance(V(0, 0, 15)); !approx(got, 13, 1e-6) {
		t.Fatalf("y face distance: %v", got)
	}
	if got := c.SignedDistance(V(0, 15, 15)); !approx(got, -1, 1e-6) {
		t.Fatalf("inside distance: %v", got)
	}
}

func TestNewCubeRejectsBadExtents(t *testing.T) {
	for _, h := range []Vector3{V(0, 1, 1), V(1, -1, 1), V(1, 1, Real(math.Inf(1)))} {
		if _, err := NewCube(V(0, 0, 0), h); err == nil {
			t.Errorf("expected error for half-extents %v", h)
		}
	}
}

func TestGroundSignedDistance(t *testing.T) {
	g := NewGround()
	for _, p := range []Vector3{V(5, -2, 7), V(0, 0, 0), V(-100, 3.5, 1e4)} {
		if got := g.SignedDistance(p); got != p.Y {
			t.Errorf("ground d(%v) = %v", p, got)
		}
	}
	if g.Position() != V(0, 0, 0) {
		t.Fatalf("ground position: %v", g.Position())
	}
}
