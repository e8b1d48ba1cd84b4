package server

import "net/http"

type route struct {
	method string
	path   string
}

// Router dispatches on an exact (method, path) match. Requests that match no
// registered route go to NotFound.
type Router struct {
	routes   map[route]http.Handler
	NotFound http.Handler
}

func NewRouter() *Router {
	return &Router{
		routes:   make(map[route]http.Handler),
		NotFound: http.NotFoundHandler(),
	}
}

func (rt *Router) Handle(method, path string, h http.Handler) {
	rt.routes[route{method: method, path: path}] = h
}

func (rt *Router) HandleFunc(method, path string, f func(http.ResponseWriter, *http.Request)) {
	rt.Handle(method, path, http.HandlerFunc(f))
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := rt.routes[route{method: r.Method, path: r.URL.Path}]; ok {
		h.ServeHTTP(w, r)
		return
	}
	rt.NotFound.ServeHTTP(w, r)
}
