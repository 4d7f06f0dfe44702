// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package hyper

import "fmt"

// ErrUnknownRoute is returned by NewSchema() and Registry
// implementations when a schema names a route the registry does not
// know.  This is a configuration mistake; it is detected at schema
// construction time and should be treated as fatal at startup.
type ErrUnknownRoute struct {
	Route string
}

func (err ErrUnknownRoute) Error() string {
	return fmt.Sprintf("No such route %q", err.Route)
}

// ErrMissingAttribute is returned by Serialize() when the record
// lacks an attribute the schema requires, either as an output field
// or in a link's parameter bindings.
type ErrMissingAttribute struct {
	Attr string
}

func (err ErrMissingAttribute) Error() string {
	return fmt.Sprintf("Record has no attribute %q", err.Attr)
}
