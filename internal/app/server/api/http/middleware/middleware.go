// Package middleware collects huma middlewares into per-handler chains.
package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates middlewares for the handler being wired next.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear hands out the accumulated chain and resets the container
// for the next handler.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.mws
	c.mws = nil
	return mws
}
