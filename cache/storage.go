// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

// Package cache provides id-based caching of newsletter records.  The
// cache wraps some other newsletter.Storage backend.  Single-record
// reads are served from an in-process LRU cache when possible; writes
// pass through to the underlying backend and update or invalidate the
// cached copy.
//
// Records are cached by id only.  List reads always go to the backend:
// the collection view must reflect records created through other
// handles to the same backend, and the cache cannot know about those.
package cache

import "github.com/pressbox/go-newsletter/newsletter"

// cacheSize bounds the number of records held in memory.
const cacheSize = 1024

// entry adapts a newsletter record to the LRU's keyed interface.
type entry struct {
	record *newsletter.Newsletter
}

func (e entry) Key() int {
	return e.record.ID
}

type cache struct {
	backend newsletter.Storage
	records *lru
}

// New creates a caching layer around some other newsletter storage.
func New(backend newsletter.Storage) newsletter.Storage {
	return &cache{
		backend: backend,
		records: newLRU(cacheSize),
	}
}

func (c *cache) Create(fields newsletter.Fields) (*newsletter.Newsletter, error) {
	n, err := c.backend.Create(fields)
	if err == nil {
		c.records.Put(entry{record: snapshot(n)})
	}
	return n, err
}

func (c *cache) Newsletter(id int) (*newsletter.Newsletter, error) {
	item, err := c.records.Get(id, func(id int) (keyed, error) {
		n, err := c.backend.Newsletter(id)
		if err != nil {
			return nil, err
		}
		return entry{record: n}, nil
	})
	if err != nil {
		return nil, err
	}
	// Hand out a copy so callers cannot scribble on the cache
	return snapshot(item.(entry).record), nil
}

func (c *cache) Newsletters() ([]*newsletter.Newsletter, error) {
	return c.backend.Newsletters()
}

func (c *cache) Update(id int, fields newsletter.Fields) (*newsletter.Newsletter, error) {
	n, err := c.backend.Update(id, fields)
	if err == nil {
		c.records.Put(entry{record: snapshot(n)})
	} else {
		// The backend refused the update; whatever we have
		// cached may or may not still be right
		c.records.Remove(id)
	}
	return n, err
}

func (c *cache) Destroy(id int) error {
	err := c.backend.Destroy(id)
	c.records.Remove(id)
	return err
}

// snapshot copies a record so the cached copy and the caller's copy
// cannot alias each other.
func snapshot(n *newsletter.Newsletter) *newsletter.Newsletter {
	dup := *n
	if n.EditedAt != nil {
		t := *n.EditedAt
		dup.EditedAt = &t
	}
	return &dup
}
