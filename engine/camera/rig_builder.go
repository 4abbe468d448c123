package camera

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithYaw sets the initial horizontal orbit angle around the Y axis.
//
// Parameters:
//   - yaw: horizontal angle in radians (0 = +Z axis)
//
// Returns:
//   - RigOption: functional option to set the yaw
func WithYaw(yaw float32) RigOption {
	return func(r *rigImpl) {
		r.yaw = yaw
	}
}

// WithPhi sets the initial polar angle from the vertical axis.
//
// Parameters:
//   - phi: polar angle in radians (0 = overhead)
//
// Returns:
//   - RigOption: functional option to set the phi
func WithPhi(phi float32) RigOption {
	return func(r *rigImpl) {
		r.phi = phi
	}
}

// WithDistance sets the initial orbit distance from the aim point.
//
// Parameters:
//   - distance: distance in world units
//
// Returns:
//   - RigOption: functional option to set the distance
func WithDistance(distance float32) RigOption {
	return func(r *rigImpl) {
		r.distance = distance
	}
}

// WithPhiBounds sets the minimum and maximum polar angle.
//
// Parameters:
//   - min: minimum phi in radians (prevents flipping over the top)
//   - max: maximum phi in radians (prevents dropping below the ground)
//
// Returns:
//   - RigOption: functional option to set phi bounds
func WithPhiBounds(min, max float32) RigOption {
	return func(r *rigImpl) {
		r.minPhi = min
		r.maxPhi = max
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - RigOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) RigOption {
	return func(r *rigImpl) {
		r.minDistance = min
		r.maxDistance = max
	}
}

// WithSmoothing sets the positional damping rate. Higher values track the
// desired position more tightly.
//
// Parameters:
//   - smoothing: exponential damping rate per second
//
// Returns:
//   - RigOption: functional option to set the smoothing rate
func WithSmoothing(smoothing float32) RigOption {
	return func(r *rigImpl) {
		r.smoothing = smoothing
	}
}

// WithRotateSensitivity sets the drag-to-angle conversion factor.
//
// Parameters:
//   - sensitivity: radians per device pixel
//
// Returns:
//   - RigOption: functional option to set drag sensitivity
func WithRotateSensitivity(sensitivity float32) RigOption {
	return func(r *rigImpl) {
		r.rotateSensitivity = sensitivity
	}
}

// WithZoomStep sets the distance change per discrete scroll tick.
//
// Parameters:
//   - step: world units per tick
//
// Returns:
//   - RigOption: functional option to set the zoom step
func WithZoomStep(step float32) RigOption {
	return func(r *rigImpl) {
		r.zoomStep = step
	}
}
