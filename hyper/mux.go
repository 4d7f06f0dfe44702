// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package hyper

import "github.com/gorilla/mux"

// MuxRegistry is a Registry over the named routes of a
// github.com/gorilla/mux router.  Routes must be registered with
// Name() before a schema is built over them.
type MuxRegistry struct {
	Router *mux.Router
}

// Lookup checks that the router has a route with the given name.
func (m MuxRegistry) Lookup(route string) error {
	if m.Router.Get(route) == nil {
		return ErrUnknownRoute{Route: route}
	}
	return nil
}

// Resolve builds the URL path for a named route, filling in its
// parameters from pairs.
func (m MuxRegistry) Resolve(route string, pairs ...string) (string, error) {
	r := m.Router.Get(route)
	if r == nil {
		return "", ErrUnknownRoute{Route: route}
	}
	url, err := r.URL(pairs...)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}
