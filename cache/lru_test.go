// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type AKey struct {
	IAm int
}

func (a AKey) Key() int {
	return a.IAm
}

func Make(key int) (keyed, error) {
	return AKey{IAm: key}, nil
}

func DoNotMake(key int) (keyed, error) {
	return nil, assert.AnError
}

type LRUAssertions struct {
	*assert.Assertions
	LRU *lru
}

func NewLRUAssertions(t assert.TestingT, size int) *LRUAssertions {
	return &LRUAssertions{
		assert.New(t),
		newLRU(size),
	}
}

// PutKey adds an item with key to the cache.
func (a *LRUAssertions) PutKey(key int) {
	item := AKey{IAm: key}
	a.LRU.Put(item)
}

// GetKey fetches an item with key from the cache; if not present, it
// is added.
func (a *LRUAssertions) GetKey(key int) {
	item, err := a.LRU.Get(key, Make)
	if a.NoError(err) && a.IsType(AKey{}, item) {
		aKey := item.(AKey)
		a.Equal(aKey.Key(), key)
	}
}

// GetPresent fetches an item with key from the cache; if not present,
// it should produce an assertion error.
func (a *LRUAssertions) GetPresent(key int) {
	item, err := a.LRU.Get(key, DoNotMake)
	if a.NoError(err) && a.IsType(AKey{}, item) {
		aKey := item.(AKey)
		a.Equal(aKey.Key(), key)
	}
}

// GetError tries to fetch an item from the cache, but it should not
// exist, and the resulting error will be caught.
func (a *LRUAssertions) GetError(key int) {
	_, err := a.LRU.Get(key, DoNotMake)
	a.Error(err)
}

// LRUHas asserts that an item with key is in the cache.
func (a *LRUAssertions) LRUHas(key int) {
	item := a.LRU.Peek(key)
	if a.NotNil(item) {
		a.Equal(key, item.Key())
	}
}

// LRUDoesNotHave asserts that no item with key is in the cache.
func (a *LRUAssertions) LRUDoesNotHave(key int) {
	item := a.LRU.Peek(key)
	a.Nil(item)
}

// TestLRUSimple tests minimal object presence.
func TestLRUSimple(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.PutKey(1)

	a.LRUHas(1)
	a.LRUDoesNotHave(2)
}

// TestLRUAutoInsert tests lru.Get() adding absent items.
func TestLRUAutoInsert(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	// Get (and insert) two keys
	a.GetKey(1)
	a.GetKey(2)

	// At this point 1 and 2 should both be present
	a.LRUHas(1)
	a.LRUHas(2)

	// Now add one more key; since it is a third one, the oldest
	// (1) should be evicted
	a.GetKey(3)
	a.LRUDoesNotHave(1)
	a.LRUHas(2)
	a.LRUHas(3)
}

func TestLRUInsertError(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	// As before
	a.GetKey(1)
	a.GetKey(2)
	a.LRUHas(1)
	a.LRUHas(2)

	// Now try to add 3, but the add function will return an error
	a.GetError(3)
	// Since no item was added, nothing will be evicted
	a.LRUHas(1)
	a.LRUHas(2)
	a.LRUDoesNotHave(3)

	// We can call the erroring version of Get() but since the item
	// is present it will not fail
	a.GetPresent(1)
	a.GetPresent(2)
}

// TestLRUOrder tests that getting an item causes it to not get evicted.
func TestLRUOrder(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetKey(1)
	a.GetKey(2)
	a.LRUHas(1)
	a.LRUHas(2)

	// Do an *additional* get for 1, so it is more-recently-used
	a.GetKey(1)

	// Now when we add 3, 2 gets pushed out
	a.GetKey(3)
	a.LRUHas(1)
	a.LRUDoesNotHave(2)
	a.LRUHas(3)
}

// TestLRURemoval does simple tests on the Remove call.
func TestLRURemoval(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	// Obvious thing #1:
	a.GetKey(1)
	a.LRUHas(1)
	a.LRU.Remove(1)
	a.LRUDoesNotHave(1)

	// Obvious thing #2:
	a.LRU.Remove(3)
	a.LRUDoesNotHave(3)

	// Also if we remove a more-recent thing, the
	// older-but-present thing shouldn't get evicted
	a.GetKey(1)
	a.GetKey(2)
	a.LRU.Remove(2)
	a.GetKey(3)
	a.LRUHas(1)
	a.LRUDoesNotHave(2)
	a.LRUHas(3)
}
