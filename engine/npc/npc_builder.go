package npc

// SystemOption is a functional option for configuring a System before the
// herd is spawned.
type SystemOption func(*System)

// WithFollowRange sets the distance band driving the follow behavior. The
// herd starts following once the player is farther than start and stops once
// back within keep. A start below keep is raised to keep.
//
// Parameters:
//   - start: distance that triggers following, in world units
//   - keep: distance at which following stops, in world units
//
// Returns:
//   - SystemOption: functional option to set the follow range
func WithFollowRange(start, keep float32) SystemOption {
	return func(s *System) {
		s.followStart = start
		s.keepDistance = keep
	}
}

// WithSpeeds sets the movement speeds for the two behavior states.
// Non-positive values keep the corresponding default.
//
// Parameters:
//   - follow: trot speed while following, in world units per second
//   - graze: amble speed while wandering, in world units per second
//
// Returns:
//   - SystemOption: functional option to set the speeds
func WithSpeeds(follow, graze float32) SystemOption {
	return func(s *System) {
		if follow > 0 {
			s.followSpeed = follow
		}
		if graze > 0 {
			s.grazeSpeed = graze
		}
	}
}

// WithWanderRadius sets how far wander targets may land from the home
// anchor. Non-positive values keep the default.
//
// Parameters:
//   - radius: wander disc radius in world units
//
// Returns:
//   - SystemOption: functional option to set the wander radius
func WithWanderRadius(radius float32) SystemOption {
	return func(s *System) {
		if radius > 0 {
			s.wanderRadius = radius
		}
	}
}

// WithNames sets the name pool piglets draw from, cycling when the herd is
// larger than the pool. An empty pool keeps the defaults.
//
// Parameters:
//   - names: names assigned in spawn order
//
// Returns:
//   - SystemOption: functional option to set the name pool
func WithNames(names ...string) SystemOption {
	return func(s *System) {
		if len(names) > 0 {
			s.names = names
		}
	}
}

// WithBodyRadius sets the collision radius of each piglet. Non-positive
// values keep the default.
//
// Parameters:
//   - radius: body circle radius in world units
//
// Returns:
//   - SystemOption: functional option to set the body radius
func WithBodyRadius(radius float32) SystemOption {
	return func(s *System) {
		if radius > 0 {
			s.bodyRadius = radius
		}
	}
}
