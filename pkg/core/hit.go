package core

// Hit describes a scene-level intersection. Materials and primitives
// are referenced by index into the owning scene's registries rather
// than by pointer, so a Hit stays valid independent of scene internals.
type Hit struct {
	T             float64
	Point         Vec3
	Normal        Vec3 // unit length, outward facing
	MaterialIndex int
	SphereIndex   int
}

// TraceStats accumulates diagnostic counters for intersection queries.
// Callers own the instance: sequential renders use one, parallel
// renders keep one per worker and merge afterwards. Passing nil to a
// query skips counting. Never a correctness dependency.
type TraceStats struct {
	RaysTraced        int64
	IntersectionTests int64
}

// Merge adds the counters from another stats instance
func (ts *TraceStats) Merge(other TraceStats) {
	ts.RaysTraced += other.RaysTraced
	ts.IntersectionTests += other.IntersectionTests
}
