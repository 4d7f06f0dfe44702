// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a newsletter.Storage as a REST service
// with hypermedia links.  The restclient package is a matching client.
//
// The complete REST API is defined in the restdata package.  In
// particular, note that the URLs described here are not actually part
// of the API: clients are expected to start at the root document and
// follow the links embedded in each representation.
//
// HTTP Considerations
//
// Clients should use the standard HTTP Accept: header to request a
// format.  This interface does not (currently) support HTTP caching
// or authentication headers.
//
// Code will generally follow conventions for the Github API as an
// established example; see https://developer.github.com/v3/ for
// details.
//
// MIME Types
//
// This interface understands MIME types as follows:
//
//     application/vnd.pressbox.newsletter.v1+json
//
// JSON representation of version 1 of this interface.
//
//     application/vnd.pressbox.newsletter+json
//     application/json
//     text/json
//
// JSON representation of latest version of this interface.
//
// URL Scheme
//
// The following URLs are defined:
//
//     /
//     /newsletters
//     /newsletters/{id}
//
// where {id} is the numeric identifier a newsletter was assigned at
// creation.
package restserver
