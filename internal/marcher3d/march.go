package marcher3d

// MarchInfo is the outcome of tracing a single ray.
type MarchInfo struct {
	TotalDistance Real
	Object        Object // nil when the ray escaped or ran out of steps
	Index         int    // -1 on a miss
	Steps         int
}

// Hit reports whether the ray reached a surface.
func (m MarchInfo) Hit() bool { return m.Object != nil }

// March sphere-traces the ray origin + t*direction through the scene.
// direction must be unit length, every step trusts the sampled distance as a safe advance.
func March(scene *Scene, origin, direction Vector3) MarchInfo {
	total := Real(0)
	for step := 1; step <= MaxSteps; step++ {
		p := origin.Add(direction.Mul(total))
		info := scene.SignedDistance(p)
		total += info.Distance

		if total > MaxDistance {
			if Debug {
				logMarch(Escaped, step, total)
			}
			return MarchInfo{TotalDistance: total, Index: -1, Steps: step}
		}
		if info.Distance < ThresholdDistance {
			if Debug {
				logMarch(Hit, step, total)
			}
			return MarchInfo{TotalDistance: total, Object: info.Object, Index: info.Index, Steps: step}
		}
	}
	if Debug {
		logMarch(Exhausted, MaxSteps, total)
	}
	return MarchInfo{TotalDistance: total, Index: -1, Steps: MaxSteps}
}
