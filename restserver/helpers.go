// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers.  Record links are
// generated through the hyper package's schemas; the urlBuilder here
// covers the root document, which needs both resolved URLs and URI
// templates.

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

type urlBuilder struct {
	Router *mux.Router
	Error  error
}

func buildURLs(router *mux.Router) *urlBuilder {
	return &urlBuilder{Router: router}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

// URL resolves a parameterless named route and stores the result in
// *out.
func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		url, u.Error = r.URL()
	}
	if u.Error == nil {
		*out = url.String()
	}
	return u
}

// Template renders a named route with a single parameter as an RFC
// 6570 URI template, e.g. "/newsletters/{id}", and stores the result
// in *out.
func (u *urlBuilder) Template(out *string, route, param string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		url, u.Error = r.URL(param, "---")
	}
	if u.Error == nil {
		*out = strings.Replace(url.String(), "---", "{"+param+"}", 1)
	}
	return u
}
