// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

// Package hyper serializes records into hypermedia representations.
//
// A Schema is a declarative description of one view of a record: an
// ordered list of attribute names to copy into the output, plus a set
// of named links.  Each link names a route in a Registry and binds
// route parameters to record attributes; serializing a record
// resolves those routes into concrete URLs and attaches them under a
// "links" key.  Clients can then navigate the API by following links
// instead of hardcoding URL structure.
//
// Schemas are constructed once at startup (NewSchema validates every
// route name against the registry and fails immediately on a bad
// one), are immutable afterwards, and are safe for concurrent use
// from any number of request-handling goroutines.
package hyper

import "fmt"

// Record is anything a Schema can serialize.  Attribute returns the
// value of a named attribute, or false if the record has no such
// attribute.
type Record interface {
	Attribute(name string) (interface{}, bool)
}

// Registry resolves symbolic route names into URLs.  The mux package
// in this module provides an implementation over named gorilla/mux
// routes.
type Registry interface {
	// Lookup checks that a route name exists, without resolving
	// it.  Returns ErrUnknownRoute if it does not.
	Lookup(route string) error

	// Resolve builds the URL for a named route.  pairs alternates
	// parameter names and values, as in gorilla/mux.  Returns
	// ErrUnknownRoute if the route name does not exist.
	Resolve(route string, pairs ...string) (string, error)
}

// Binding attaches one route parameter to one record attribute.  At
// serialization time the record's current attribute value is
// substituted into the URL, so a link can never outlive a change to
// the record's identity.
type Binding struct {
	// Param is the route parameter name, e.g. "id" in
	// "/newsletters/{id}".
	Param string

	// Attr is the record attribute whose value fills Param.
	Attr string
}

// Link describes one named link in a representation.
type Link struct {
	// Name is the key under "links" in the output, e.g. "self".
	Name string

	// Route is the symbolic route name in the Registry.
	Route string

	// Bindings fill the route's parameters from the record.  A
	// link with no bindings resolves to a fixed URL, the same for
	// every record.
	Bindings []Binding
}

// Schema is one view of a record: which attributes appear in the
// output, and which links accompany them.  Only attributes named in
// Fields appear; everything else on the record is omitted.
type Schema struct {
	fields   []string
	links    []Link
	registry Registry
}

// LinksField is the reserved output key holding the resolved links.
const LinksField = "links"

// NewSchema builds a Schema over a route registry.  Every link's
// route name is checked against the registry here, so a misconfigured
// schema fails at startup rather than on the first request that
// serializes a record.
func NewSchema(registry Registry, fields []string, links []Link) (*Schema, error) {
	for _, field := range fields {
		if field == LinksField {
			return nil, fmt.Errorf("field name %q is reserved", LinksField)
		}
	}
	for _, link := range links {
		if err := registry.Lookup(link.Route); err != nil {
			return nil, err
		}
	}
	return &Schema{fields: fields, links: links, registry: registry}, nil
}

// Representation is the serialized form of one record: the schema's
// fields plus a "links" map from link name to resolved URL.
type Representation map[string]interface{}

// Links returns the resolved link map of a representation, or nil if
// it has none.
func (rep Representation) Links() map[string]string {
	links, _ := rep[LinksField].(map[string]string)
	return links
}

// Serialize projects one record through the schema.  Field values are
// copied from the record unchanged; links are resolved against the
// registry using the record's current attribute values.  Returns
// ErrMissingAttribute if the record lacks an attribute the schema
// names, either as a field or in a link binding.  Serialize has no
// side effects and never modifies the record.
func (s *Schema) Serialize(record Record) (Representation, error) {
	rep := make(Representation, len(s.fields)+1)
	for _, field := range s.fields {
		value, present := record.Attribute(field)
		if !present {
			return nil, ErrMissingAttribute{Attr: field}
		}
		rep[field] = value
	}

	links := make(map[string]string, len(s.links))
	for _, link := range s.links {
		pairs := make([]string, 0, 2*len(link.Bindings))
		for _, binding := range link.Bindings {
			value, present := record.Attribute(binding.Attr)
			if !present {
				return nil, ErrMissingAttribute{Attr: binding.Attr}
			}
			pairs = append(pairs, binding.Param, fmt.Sprint(value))
		}
		url, err := s.registry.Resolve(link.Route, pairs...)
		if err != nil {
			return nil, err
		}
		links[link.Name] = url
	}
	rep[LinksField] = links
	return rep, nil
}

// SerializeAll projects a sequence of records through the schema,
// preserving order.  It fails on the first record that fails.
func (s *Schema) SerializeAll(records []Record) ([]Representation, error) {
	reps := make([]Representation, len(records))
	for i, record := range records {
		rep, err := s.Serialize(record)
		if err != nil {
			return nil, err
		}
		reps[i] = rep
	}
	return reps, nil
}
