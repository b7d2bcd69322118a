package core

const (
	// MinHitTime is the near clip distance applied to primary rays
	MinHitTime = 1.0
	// MinReflectHitTime keeps secondary rays from hitting their own origin
	MinReflectHitTime = 0.0001
	// MaxReflections bounds the recursion depth of the tracer
	MaxReflections = 3
)
