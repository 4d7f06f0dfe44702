// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Generally JSON encodings of
// these are passed across the wire as the
// application/vnd.pressbox.newsletter.v1+json MIME type.
//
// API Usage
//
// HTTP GET the root document at its specified URL.  This will return
// a JSON serialization of the RootData object.  That serialization
// has links to other resources; follow these links, possibly filling
// in template values, to get to other resources.
//
// Some of the URL fields are RFC 6570 URI templates.  This is a fancy
// way of saying that they are URL strings with a {parameter} in curly
// braces.  For instance, if the system is rooted at /, a JSON
// serialization of RootData will look like
//
//     {
//         "index": "Welcome to the Newsletter RESTful API",
//         "newsletters_url": "/newsletters",
//         "newsletter_url": "/newsletters/{id}"
//     }
//
// While the URL structure is predictable and formulaic, it is not
// actually part of the API contract.  The only specific guarantee is
// that retrieving the root resource will return a serialization of
// RootData.
//
// Every newsletter representation embeds a "links" object mapping
// link names to resolved URLs: "self" points back at that record, and
// "collection" points at the newsletter list.  List responses carry a
// compact collection view of each record (title and publication time
// only); the full record is available by following its "self" link.
//
// Timestamps are represented in JSON as RFC 3339 strings,
// "2012-03-04T05:06:07.890Z".  A newsletter that has never been
// edited has a null "edited_at".
//
// HTTP Considerations
//
// The newsletter list supports HTTP GET (returning a NewsletterList)
// and POST (submitting Fields, returning a Newsletter with a Location
// header).  A single newsletter supports HTTP GET, PATCH (submitting
// a partial Fields object), and DELETE.  Any resource that supports
// GET also supports HEAD.  A PATCH may only name the writable fields,
// "title" and "body"; anything else is a 400 Bad Request.
//
// Errors
//
// Most errors should be returned as encodings of the ErrorResponse
// type.  This can round-trip this module's well-known errors but may
// return other errors as plain strings that are not the same objects
// as other standard errors.
//
// If Go server code panics, this should be captured and returned as
// an ErrorResponse with error code "panic".
package restdata

import "time"

// V1JSONMediaType is the preferred, most specific MIME type for the
// JSON representation of this content.
const V1JSONMediaType = "application/vnd.pressbox.newsletter.v1+json"

// JSONMediaType requests the most recent version of the JSON
// representation of this content.
const JSONMediaType = "application/vnd.pressbox.newsletter+json"

// Resource is a base type for all resources in this module.
type Resource struct {
	// Links maps link names to resolved URLs.  Every resource
	// carries at least a "self" link pointing back at itself;
	// newsletter resources also carry a "collection" link
	// pointing at the newsletter list.  This field does not need
	// to be provided when posting data.
	Links map[string]string `json:"links,omitempty"`
}

// RootData is returned by the root path.
type RootData struct {
	// Index is a human-readable welcome message.
	Index string `json:"index"`

	// NewslettersURL points at the newsletter list.  This
	// endpoint supports HTTP GET to return a NewsletterList, and
	// HTTP POST to submit Fields and create a new newsletter.
	NewslettersURL string `json:"newsletters_url"`

	// NewsletterURL points at the representation of a single
	// newsletter.  This endpoint supports HTTP GET, PATCH, and
	// DELETE, and its representation is a Newsletter.  This field
	// is a URI template with a single parameter, "id", which
	// should be substituted for the record's numeric ID.
	NewsletterURL string `json:"newsletter_url"`
}

// NewsletterShort is the compact collection view of a newsletter, as
// returned in list responses.  Follow the "self" link for the full
// record.
type NewsletterShort struct {
	Resource

	// Title is the newsletter's headline.
	Title string `json:"title"`

	// PublishedAt is when the record was created.
	PublishedAt time.Time `json:"published_at"`
}

// NewsletterList is a list of NewsletterShort, in ascending ID order.
type NewsletterList []NewsletterShort

// Newsletter is the complete single-record view.
type Newsletter struct {
	NewsletterShort

	// ID is the record's immutable numeric identifier.
	ID int `json:"id"`

	// Body is the newsletter's full text.
	Body string `json:"body"`

	// EditedAt is when the record was last updated, or null if it
	// has never been updated.
	EditedAt *time.Time `json:"edited_at"`
}

// Fields is the client-submitted body of a POST or PATCH: a map from
// writable field name ("title", "body") to its new value.
type Fields map[string]string

// Message is a fixed confirmation payload, as returned from DELETE.
type Message struct {
	Message string `json:"message"`
}

// ErrorResponse is the payload of any error result.
type ErrorResponse struct {
	// Error is a short machine-readable error code.
	Error string `json:"error"`

	// Message is a human-readable description of the error.
	Message string `json:"message,omitempty"`

	// Value carries error-specific detail, such as the record ID
	// of a failed lookup or the field name of a rejected update.
	Value string `json:"value,omitempty"`

	// Stack is a stack trace, only present for code "panic".
	Stack string `json:"stack,omitempty"`
}
