// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/gorilla/mux"
	"github.com/pressbox/go-newsletter/hyper"
	"github.com/pressbox/go-newsletter/newsletter"
	"github.com/pressbox/go-newsletter/restdata"
)

// deletedMessage is the fixed confirmation payload of a DELETE.
const deletedMessage = "record successfully deleted"

// newsletterLinks describes the links carried by every newsletter
// representation: "self" back to the record, "collection" to the
// list.  The self link binds the route's "id" parameter to the
// record's current id at serialization time.
func newsletterLinks() []hyper.Link {
	return []hyper.Link{
		{
			Name:     "self",
			Route:    "newsletter",
			Bindings: []hyper.Binding{{Param: "id", Attr: "id"}},
		},
		{
			Name:  "collection",
			Route: "newsletters",
		},
	}
}

// buildSchemas constructs the two serialization schemas over the
// router's named routes.  Called once from PopulateRouter, after the
// routes exist; a failure here means a schema names a missing route
// and is fatal.
func (api *restAPI) buildSchemas() error {
	registry := hyper.MuxRegistry{Router: api.Router}
	var err error
	api.collectionSchema, err = hyper.NewSchema(registry,
		[]string{"title", "published_at"}, newsletterLinks())
	if err == nil {
		api.fullSchema, err = hyper.NewSchema(registry,
			[]string{"id", "title", "body", "published_at", "edited_at"},
			newsletterLinks())
	}
	return err
}

// NewsletterList gets the collection view of every newsletter, in
// ascending id order.
func (api *restAPI) NewsletterList(ctx *context) (interface{}, error) {
	all, err := api.Storage.Newsletters()
	if err != nil {
		return nil, err
	}
	records := make([]hyper.Record, len(all))
	for i, n := range all {
		records[i] = n
	}
	reps, err := api.collectionSchema.SerializeAll(records)
	if err != nil {
		return nil, err
	}
	return reps, nil
}

// NewsletterPost creates a new newsletter from the submitted fields.
func (api *restAPI) NewsletterPost(ctx *context, in interface{}) (interface{}, error) {
	fields, valid := in.(restdata.Fields)
	if !valid {
		return nil, errUnmarshal
	}
	n, err := api.Storage.Create(newsletter.Fields(fields))
	if err != nil {
		return nil, badFieldToBadRequest(err)
	}
	rep, err := api.fullSchema.Serialize(n)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: rep.Links()["self"],
		Body:     rep,
	}, nil
}

// NewsletterGet retrieves the full view of a single newsletter.
func (api *restAPI) NewsletterGet(ctx *context) (interface{}, error) {
	// If we've gotten here, the context already looked it up
	return api.fullSchema.Serialize(ctx.Newsletter)
}

// NewsletterPatch applies a partial update to a newsletter.  Only the
// writable fields may appear in the request; anything else is a 400.
func (api *restAPI) NewsletterPatch(ctx *context, in interface{}) (interface{}, error) {
	fields, valid := in.(restdata.Fields)
	if !valid {
		return nil, errUnmarshal
	}
	n, err := api.Storage.Update(ctx.Newsletter.ID, newsletter.Fields(fields))
	if err != nil {
		return nil, badFieldToBadRequest(err)
	}
	return api.fullSchema.Serialize(n)
}

// NewsletterDelete destroys a newsletter and returns a fixed
// confirmation payload.
func (api *restAPI) NewsletterDelete(ctx *context) (interface{}, error) {
	err := api.Storage.Destroy(ctx.Newsletter.ID)
	if err != nil {
		return nil, err
	}
	return restdata.Message{Message: deletedMessage}, nil
}

// badFieldToBadRequest remaps the storage layer's field allow-list
// error to a 400 response; everything else passes through.
func badFieldToBadRequest(err error) error {
	if _, bad := err.(newsletter.ErrBadField); bad {
		return restdata.ErrBadRequest{Err: err}
	}
	return err
}

// PopulateNewsletter adds newsletter-specific routes to a router.
// r should be rooted at the root of the newsletter URL tree, e.g. "/".
func (api *restAPI) PopulateNewsletter(r *mux.Router) {
	r.Path("/newsletters").Name("newsletters").Handler(&resourceHandler{
		Representation: restdata.Fields{},
		Context:        api.Context,
		Get:            api.NewsletterList,
		Post:           api.NewsletterPost,
	})
	r.Path("/newsletters/{id}").Name("newsletter").Handler(&resourceHandler{
		Representation: restdata.Fields{},
		Context:        api.Context,
		Get:            api.NewsletterGet,
		Patch:          api.NewsletterPatch,
		Delete:         api.NewsletterDelete,
	})
}
