package marcher3d

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

var (
	ErrEmptyScene = errors.New("scene has no objects")
	ErrNilObject  = errors.New("scene object is nil")
)

// Scene owns an ordered set of objects and a single directional light whose
// azimuth (LightAngle) may be rotated between frames.
type Scene struct {
	objects    []Object
	lightAngle Real

	// light = Norm(lightRadius*cos(a), lightHeight, lightRadius*sin(a))
	lightRadius Real
	lightHeight Real
}

// DistanceInfo is the nearest surface found for a point.
type DistanceInfo struct {
	Distance Real
	Index    int // index of Object in the scene
	Object   Object
}

// SceneOption customizes a scene at construction time.
type SceneOption func(*Scene)

// WithLightRadius scales the horizontal part of the light direction; 0 puts the light straight overhead.
func WithLightRadius(r Real) SceneOption { return func(s *Scene) { s.lightRadius = r } }

// WithLightHeight sets the vertical part of the light direction.
func WithLightHeight(h Real) SceneOption { return func(s *Scene) { s.lightHeight = h } }

// NewScene copies objects into a new scene lit from the given azimuth (radians).
func NewScene(lightAngle Real, objects []Object, opts ...SceneOption) (*Scene, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}
	for i, o := range objects {
		if o == nil {
			return nil, fmt.Errorf("object #%d: %w", i, ErrNilObject)
		}
	}
	s := &Scene{
		objects:     append([]Object(nil), objects...),
		lightAngle:  lightAngle,
		lightRadius: 1,
		lightHeight: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.lightRadius == 0 && s.lightHeight == 0 {
		return nil, errors.New("light direction must be non-zero")
	}
	DebugLog("Created scene objects=%d, lightAngle=%.4f, lightRadius=%.3f, lightHeight=%.3f", len(s.objects), lightAngle, s.lightRadius, s.lightHeight)
	return s, nil
}

// SignedDistance returns the nearest object to p. Ties go to the object added first.
// Querying a scene without objects is a programming error and panics.
func (s *Scene) SignedDistance(p Vector3) DistanceInfo {
	if len(s.objects) == 0 {
		panic(ErrEmptyScene)
	}
	best := DistanceInfo{Distance: math.MaxFloat32, Object: s.objects[0]}
	for i, o := range s.objects {
		if d := o.SignedDistance(p); d < best.Distance {
			best = DistanceInfo{Distance: d, Index: i, Object: o}
		}
	}
	return best
}

// LightDirection is the unit vector pointing from surfaces toward the light.
func (s *Scene) LightDirection() Vector3 {
	a := s.lightAngle
	return Vector3{s.lightRadius * math32.Cos(a), s.lightHeight, s.lightRadius * math32.Sin(a)}.Norm()
}

func (s *Scene) LightAngle() Real         { return s.lightAngle }
func (s *Scene) SetLightAngle(angle Real) { s.lightAngle = angle }

// RotateLight advances the light azimuth by delta radians.
func (s *Scene) RotateLight(delta Real) { s.lightAngle += delta }

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// Object returns the i-th object in insertion order.
func (s *Scene) Object(i int) Object { return s.objects[i] }

// Objects returns a copy of the object list.
func (s *Scene) Objects() []Object { return append([]Object(nil), s.objects...) }
