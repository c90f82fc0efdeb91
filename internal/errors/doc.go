// Package errors provides structured error handling for the navix engine.
//
// Errors carry a Code, a message, and optional metadata. Configuration
// problems (bad dimensions, unknown environment names, placement capacity)
// are reported through this package; invariant violations inside the pure
// core are programming defects and panic instead.
//
// Creating errors:
//
//	err := errors.NotFound("environment not registered")
//	err := errors.InvalidArgumentf("room too small: %dx%d", h, w)
//
// Adding metadata:
//
//	err := errors.NotFound("episode not found").
//	    WithMeta("episode_id", id)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load episode")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // start a fresh episode
//	}
//
// Validating configuration:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Height < 3 {
//	    vb.InvalidField("Height", "must be at least 3")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
