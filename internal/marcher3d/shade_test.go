package marcher3d

import "testing"

func TestNormalOfGroundPointsUp(t *testing.T) {
	s := mustScene(t, []Object{NewGround()})
	n := Normal(s, V(3, 0, -7))
	if n.X != 0 || n.Z != 0 || !approx(n.Y, 1, 1e-5) {
		t.Fatalf("ground normal: %v", n)
	}
}

func TestNormalOfSphere(t *testing.T) {
	s := mustScene(t, []Object{mustSphere(t, V(0, 0, 0), 2)})
	for _, c := range []struct{ p, want Vector3 }{
		{V(0, 0, -2), V(0, 0, -1)},
		{V(2, 0, 0), V(1, 0, 0)},
		{V(0, 2, 0), V(0, 1, 0)},
	} {
		n := Normal(s, c.p)
		if n.Dot(c.want) < 0.999 {
			t.Errorf("normal at %v = %v, want ~%v", c.p, n, c.want)
		}
	}
}

func TestLightOnGroundFromAbove(t *testing.T) {
	s := mustScene(t, []Object{NewGround()}, WithLightRadius(0))
	got := Light(s, V(0, 0, 0))
	if !approx(got, 1, 1e-5) {
		t.Fatalf("ground lit from straight above: %v", got)
	}
	if DefaultRamp().Glyph(got) != '@' {
		t.Fatalf("fully lit point should use the brightest glyph")
	}
}

func TestLightIsLambertian(t *testing.T) {
	s := mustScene(t, []Object{NewGround()})
	if got := Light(s, V(-3, 0, 0)); !approx(got, 0.70710678, 1e-5) {
		t.Fatalf("45 degree light on ground: %v", got)
	}
	below := mustScene(t, []Object{NewGround()}, WithLightHeight(-1))
	if got := Light(below, V(0, 0, 0)); got != 0 {
		t.Fatalf("light from below must clamp to 0: %v", got)
	}
}

func TestShadowKeepsTenPercent(t *testing.T) {
	p := V(-3, 0, 0)
	open := mustScene(t, []Object{NewGround()})
	blocked := mustScene(t, []Object{mustSphere(t, V(0, 3, 0), 1), NewGround()})

	lit := Light(open, p)
	shadowed := Light(blocked, p)
	if !approx(shadowed, lit*ShadowFactor, 1e-6) {
		t.Fatalf("shadowed %v, unoccluded %v", shadowed, lit)
	}
	if shadowed <= 0 {
		t.Fatalf("shadowed point should keep some light: %v", shadowed)
	}
}
