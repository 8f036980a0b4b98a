package cli

import (
	"context"
	"errors"

	"github.com/runoshun/oss-curator/internal/app"
	"github.com/runoshun/oss-curator/internal/explorer"
)

// ContainerBuilder creates the container once global flags are parsed.
type ContainerBuilder func(opts app.Options) (*app.Container, error)

// Runtime builds the container on first use and shares one explorer
// session across a command invocation.
type Runtime struct {
	build ContainerBuilder
	c     *app.Container
	ex    *explorer.Explorer
	opts  app.Options
}

// NewRuntime creates a runtime that builds its container with build.
func NewRuntime(build ContainerBuilder) *Runtime {
	return &Runtime{build: build}
}

// FromContainer wraps an already built container.
func FromContainer(c *app.Container) *Runtime {
	return &Runtime{c: c}
}

// Container returns the container, building it on first call.
func (r *Runtime) Container() (*app.Container, error) {
	if r.c != nil {
		return r.c, nil
	}
	if r.build == nil {
		return nil, errors.New("no container available")
	}
	c, err := r.build(r.opts)
	if err != nil {
		return nil, err
	}
	r.c = c
	return c, nil
}

// Session returns the hydrated headless explorer for this invocation.
func (r *Runtime) Session(ctx context.Context) (*app.Container, *explorer.Explorer, error) {
	c, err := r.Container()
	if err != nil {
		return nil, nil, err
	}
	if r.ex == nil {
		r.ex = c.Session(ctx)
	}
	return c, r.ex, nil
}

// Close releases the container.
func (r *Runtime) Close() error {
	if r.c == nil {
		return nil
	}
	err := r.c.Close()
	r.c = nil
	r.ex = nil
	return err
}
