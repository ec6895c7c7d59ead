package surfaces

import "log/slog"

// Context owns a Driver and tracks which program is bound on it, so that
// programs sharing the Context can skip redundant binds.
//
// The tracked program is only correct while every bind goes through the
// Context. Code that calls the native API directly must call Invalidate
// afterwards.
type Context struct {
	driver Driver
	log    *slog.Logger

	active ProgramHandle
	bound  bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithLogger sets the logger used for diagnostics. A nil logger disables
// logging, which is also the default.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// NewContext creates a Context around d.
func NewContext(d Driver, opts ...ContextOption) *Context {
	c := &Context{
		driver: d,
		log:    newNopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Driver returns the underlying driver.
func (c *Context) Driver() Driver {
	return c.driver
}

// Use binds p unless it is already the active program.
func (c *Context) Use(p ProgramHandle) {
	if c.bound && c.active == p {
		return
	}
	c.driver.UseProgram(p)
	c.active = p
	c.bound = true
}

// Active returns the program last bound through the Context.
func (c *Context) Active() (ProgramHandle, bool) {
	return c.active, c.bound
}

// Invalidate forgets the active program. The next Use always binds.
func (c *Context) Invalidate() {
	c.active = 0
	c.bound = false
}

// release forgets p if it is the active program.
func (c *Context) release(p ProgramHandle) {
	if c.bound && c.active == p {
		c.Invalidate()
	}
}
