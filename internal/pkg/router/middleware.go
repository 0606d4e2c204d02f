package router

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(next http.Handler) http.Handler

// Chain applies middlewares to a handler so the first middleware in the list
// is the outermost one at request time.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type emptyBody interface{ emptyBody() }

// EmptyBody can be embedded in a response type to omit the data field from the
// envelope so only the success flag and message are returned.
type EmptyBody struct{}

func (EmptyBody) emptyBody() {}
