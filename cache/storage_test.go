// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"testing"

	"github.com/pressbox/go-newsletter/memory"
	"github.com/pressbox/go-newsletter/newsletter"
	"github.com/pressbox/go-newsletter/newsletter/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic storage tests through the caching layer.
type Suite struct {
	storagetest.Suite
}

func (s *Suite) SetupTest() {
	s.Suite.SetupTest()
	s.Storage = New(memory.NewWithClock(s.Clock))
}

func TestStorage(t *testing.T) {
	suite.Run(t, &Suite{})
}

// TestReadThrough checks that a second read is served from the cache,
// even after the backend loses the record.
func TestReadThrough(t *testing.T) {
	backend := memory.New()
	cached := New(backend)

	n, err := cached.Create(newsletter.Fields{"title": "t"})
	if !assert.NoError(t, err) {
		return
	}

	// Delete behind the cache's back
	err = backend.Destroy(n.ID)
	if !assert.NoError(t, err) {
		return
	}

	got, err := cached.Newsletter(n.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "t", got.Title)
	}
}

// TestDestroyInvalidates checks that deleting through the cache also
// drops the cached copy.
func TestDestroyInvalidates(t *testing.T) {
	backend := memory.New()
	cached := New(backend)

	n, err := cached.Create(newsletter.Fields{"title": "t"})
	if !assert.NoError(t, err) {
		return
	}
	err = cached.Destroy(n.ID)
	if !assert.NoError(t, err) {
		return
	}
	_, err = cached.Newsletter(n.ID)
	assert.Equal(t, newsletter.ErrNoSuchNewsletter{ID: n.ID}, err)
}
