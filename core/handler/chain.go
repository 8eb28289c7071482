package handler

// Chain builds a single handler from a middleware stack and endpoint.
// With no middleware it returns the endpoint unchanged.
func Chain[C Context](middlewares []Middleware[C], endpoint HandlerFunc[C]) HandlerFunc[C] {
	// Start with the endpoint
	h := endpoint

	// Wrap in middleware in reverse order
	// so the first middleware runs first
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return h
}
