package common

// Coalesce returns the first value in the list that differs from the type's
// zero value, falling back to the zero value when none does. Configuration
// loading uses it to layer file values over defaults.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
