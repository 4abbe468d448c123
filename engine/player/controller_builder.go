package player

// Option is a functional option for configuring a Controller.
type Option func(*controllerImpl)

// WithConfig replaces the default configuration. The config is validated
// during New.
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - Option: functional option to set the configuration
func WithConfig(cfg Config) Option {
	return func(c *controllerImpl) {
		c.cfg = cfg
	}
}

// WithJumpCallback registers the jump callback at construction.
//
// Parameters:
//   - cb: invoked synchronously when a jump launches
//
// Returns:
//   - Option: functional option to set the callback
func WithJumpCallback(cb func()) Option {
	return func(c *controllerImpl) {
		c.onJump = cb
	}
}

// WithMovementChangeCallback registers the movement transition callback at
// construction.
//
// Parameters:
//   - cb: invoked synchronously on each moving/idle edge
//
// Returns:
//   - Option: functional option to set the callback
func WithMovementChangeCallback(cb func(moving bool)) Option {
	return func(c *controllerImpl) {
		c.onMovementChange = cb
	}
}
