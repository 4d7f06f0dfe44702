// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"

	"github.com/pressbox/go-newsletter/hyper"
	"github.com/pressbox/go-newsletter/newsletter"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body, or when an update names a field
// outside the writable set.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// FromError populates an ErrorResponse based on an error value.  This
// remaps the well-known newsletter and serialization errors to
// specific e.Error codes.
func (e *ErrorResponse) FromError(err error) {
	e.Error = "error"
	e.Message = err.Error()
	switch et := err.(type) {
	case newsletter.ErrNoSuchNewsletter:
		e.Error = "ErrNoSuchNewsletter"
		e.Value = strconv.Itoa(et.ID)
	case newsletter.ErrBadField:
		e.Error = "ErrBadField"
		e.Value = et.Name
	case hyper.ErrUnknownRoute:
		e.Error = "ErrUnknownRoute"
		e.Value = et.Route
	case hyper.ErrMissingAttribute:
		e.Error = "ErrMissingAttribute"
		e.Value = et.Attr
	case ErrNotFound:
		// Discard the wrapper and report the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	}
}

// ToError converts e back to one of this module's errors, if that is
// possible.  If not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrNoSuchNewsletter":
		id, err := strconv.Atoi(e.Value)
		if err == nil {
			return newsletter.ErrNoSuchNewsletter{ID: id}
		}
	case "ErrBadField":
		return newsletter.ErrBadField{Name: e.Value}
	case "ErrUnknownRoute":
		return hyper.ErrUnknownRoute{Route: e.Value}
	case "ErrMissingAttribute":
		return hyper.ErrMissingAttribute{Attr: e.Value}
	}
	return errors.New(e.Message)
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recover(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//     }
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
