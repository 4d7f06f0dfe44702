// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package hyper

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// mapRecord is a trivial Record backed by a map.
type mapRecord map[string]interface{}

func (r mapRecord) Attribute(name string) (interface{}, bool) {
	value, present := r[name]
	return value, present
}

// newRegistry builds a registry with the routes the tests use:
// "items" at /items and "item" at /items/{id}.
func newRegistry() MuxRegistry {
	router := mux.NewRouter()
	handler := http.NotFoundHandler()
	router.Path("/items").Name("items").Handler(handler)
	router.Path("/items/{id}").Name("item").Handler(handler)
	return MuxRegistry{Router: router}
}

func itemLinks() []Link {
	return []Link{
		{Name: "self", Route: "item", Bindings: []Binding{{Param: "id", Attr: "id"}}},
		{Name: "collection", Route: "items"},
	}
}

func TestSerializeFieldsAndLinks(t *testing.T) {
	schema, err := NewSchema(newRegistry(), []string{"title"}, itemLinks())
	if !assert.NoError(t, err) {
		return
	}
	rep, err := schema.Serialize(mapRecord{"id": 42, "title": "hello", "body": "unlisted"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "hello", rep["title"])
	// Strict whitelisting: nothing outside the schema appears
	assert.NotContains(t, rep, "body")
	assert.NotContains(t, rep, "id")
	assert.Equal(t, map[string]string{
		"self":       "/items/42",
		"collection": "/items",
	}, rep.Links())
}

func TestSelfLinkStable(t *testing.T) {
	schema, err := NewSchema(newRegistry(), nil, itemLinks())
	if !assert.NoError(t, err) {
		return
	}
	record := mapRecord{"id": 7}
	first, err := schema.Serialize(record)
	assert.NoError(t, err)
	second, err := schema.Serialize(record)
	assert.NoError(t, err)
	assert.Equal(t, first.Links()["self"], second.Links()["self"])
}

func TestSelfLinkTracksRecord(t *testing.T) {
	// The binding reads the record at serialization time, so a
	// changed attribute produces a changed link.
	schema, err := NewSchema(newRegistry(), nil, itemLinks())
	if !assert.NoError(t, err) {
		return
	}
	record := mapRecord{"id": 1}
	rep, err := schema.Serialize(record)
	assert.NoError(t, err)
	assert.Equal(t, "/items/1", rep.Links()["self"])

	record["id"] = 2
	rep, err = schema.Serialize(record)
	assert.NoError(t, err)
	assert.Equal(t, "/items/2", rep.Links()["self"])
}

func TestCollectionLinkFixed(t *testing.T) {
	schema, err := NewSchema(newRegistry(), nil, itemLinks())
	if !assert.NoError(t, err) {
		return
	}
	var collections []string
	for id := 1; id <= 3; id++ {
		rep, err := schema.Serialize(mapRecord{"id": id})
		if assert.NoError(t, err) {
			collections = append(collections, rep.Links()["collection"])
		}
	}
	for _, url := range collections {
		assert.Equal(t, "/items", url)
	}
}

func TestSerializeAllOrder(t *testing.T) {
	schema, err := NewSchema(newRegistry(), []string{"title"}, itemLinks())
	if !assert.NoError(t, err) {
		return
	}
	records := make([]Record, 5)
	for i := range records {
		records[i] = mapRecord{"id": i + 1, "title": fmt.Sprintf("title %v", i+1)}
	}
	reps, err := schema.SerializeAll(records)
	if !assert.NoError(t, err) {
		return
	}
	if assert.Len(t, reps, len(records)) {
		for i, rep := range reps {
			assert.Equal(t, fmt.Sprintf("title %v", i+1), rep["title"])
			assert.Equal(t, fmt.Sprintf("/items/%v", i+1), rep.Links()["self"])
		}
	}
}

func TestUnknownRouteFailsFast(t *testing.T) {
	_, err := NewSchema(newRegistry(), nil, []Link{
		{Name: "self", Route: "nonesuch"},
	})
	assert.Equal(t, ErrUnknownRoute{Route: "nonesuch"}, err)
}

func TestReservedLinksField(t *testing.T) {
	_, err := NewSchema(newRegistry(), []string{"links"}, nil)
	assert.Error(t, err)
}

func TestMissingField(t *testing.T) {
	schema, err := NewSchema(newRegistry(), []string{"title"}, nil)
	if !assert.NoError(t, err) {
		return
	}
	_, err = schema.Serialize(mapRecord{"id": 1})
	assert.Equal(t, ErrMissingAttribute{Attr: "title"}, err)
}

func TestMissingBindingAttribute(t *testing.T) {
	schema, err := NewSchema(newRegistry(), nil, itemLinks())
	if !assert.NoError(t, err) {
		return
	}
	_, err = schema.Serialize(mapRecord{"title": "no id"})
	assert.Equal(t, ErrMissingAttribute{Attr: "id"}, err)
}

func TestRegistryResolveUnknown(t *testing.T) {
	registry := newRegistry()
	_, err := registry.Resolve("nonesuch")
	assert.Equal(t, ErrUnknownRoute{Route: "nonesuch"}, err)
}
