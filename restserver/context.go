// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pressbox/go-newsletter/newsletter"
	"github.com/pressbox/go-newsletter/restdata"
)

// errUnmarshal is returned if the post/patch contract is violated and
// a handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// context holds all of the information and objects that can be
// extracted from URL parameters.
type context struct {
	// Newsletter is the record named by the {id} URL parameter,
	// if the route has one.  If the URL names an id and no record
	// has that id, context construction fails with a 404 error
	// before any handler runs.
	Newsletter *newsletter.Newsletter
}

func (api *restAPI) Context(req *http.Request) (ctx *context, err error) {
	ctx = &context{}
	vars := mux.Vars(req)

	if idVar, present := vars["id"]; present {
		var id int
		id, err = strconv.Atoi(idVar)
		if err != nil {
			return nil, restdata.ErrBadRequest{Err: err}
		}
		ctx.Newsletter, err = api.Storage.Newsletter(id)
		if _, missing := err.(newsletter.ErrNoSuchNewsletter); missing {
			err = restdata.ErrNotFound{Err: err}
		}
		if err != nil {
			return nil, err
		}
	}

	return
}
