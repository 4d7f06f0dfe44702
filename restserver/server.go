// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pressbox/go-newsletter/hyper"
	"github.com/pressbox/go-newsletter/newsletter"
	"github.com/pressbox/go-newsletter/restdata"
)

// NewRouter creates a new HTTP handler that processes all newsletter
// requests.  All resources are under the URL path root, e.g.
// /newsletters/3.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
//
// The only error paths are schema-configuration mistakes, which are
// programming errors; treat a failure here as fatal at startup.
func NewRouter(storage newsletter.Storage) (http.Handler, error) {
	r := mux.NewRouter()
	err := PopulateRouter(r, storage)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// PopulateRouter adds newsletter routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the newsletter interface under a subpath:
//
//     import "github.com/pressbox/go-newsletter/memory"
//     import "github.com/gorilla/mux"
//     r := mux.NewRouter()
//     s := r.PathPrefix("/api").Subrouter()
//     err := restserver.PopulateRouter(s, memory.New())
func PopulateRouter(r *mux.Router, storage newsletter.Storage) error {
	api := &restAPI{Storage: storage, Router: r}
	return api.PopulateRouter(r)
}

// restAPI holds the persistent state for the newsletter REST API: the
// storage backend, the route registry, and the serialization schemas
// built over it.  It is constructed once at startup and shared,
// read-only, by every request.
type restAPI struct {
	Storage newsletter.Storage
	Router  *mux.Router

	// collectionSchema is the compact view used in list
	// responses; fullSchema is the complete single-record view.
	collectionSchema *hyper.Schema
	fullSchema       *hyper.Schema
}

// PopulateRouter adds all newsletter URL paths to a router, then
// builds the serialization schemas over the registered routes.
func (api *restAPI) PopulateRouter(r *mux.Router) error {
	api.PopulateNewsletter(r)
	r.Path("/").Name("root").Handler(&resourceHandler{
		Representation: restdata.Fields{},
		Context:        api.Context,
		Get:            api.RootDocument,
	})
	return api.buildSchemas()
}

// RootDocument returns the API root: a welcome message plus links to
// the rest of the system.
func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	resp := restdata.RootData{Index: "Welcome to the Newsletter RESTful API"}
	err := buildURLs(api.Router).
		URL(&resp.NewslettersURL, "newsletters").
		Template(&resp.NewsletterURL, "newsletter", "id").
		Error
	return resp, err
}
