// Package storagetest provides generic functional tests for the
// newsletter.Storage interface.  A typical backend test module wraps
// Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/pressbox/go-newsletter/newsletter/storagetest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     type Suite struct {
//             storagetest.Suite
//     }
//
//     func (s *Suite) SetupTest() {
//             s.Suite.SetupTest()
//             s.Storage = NewWithClock(s.Clock)
//     }
//
//     func TestStorage(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
package storagetest

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pressbox/go-newsletter/newsletter"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic storage backend test suite.
type Suite struct {
	suite.Suite

	// Clock is the alternate time source used in tests.  It is
	// pre-initialized to a mock clock by SetupTest.
	Clock *clock.Mock

	// Storage is the backend under test.  It must be set by the
	// importing package's SetupTest, after calling this one, and
	// must start out empty.
	Storage newsletter.Storage
}

// SetupTest resets the mock clock for each test.
func (s *Suite) SetupTest() {
	s.Clock = clock.NewMock()
}

// TestCreateAssignsIdentity checks that creation assigns distinct
// ascending IDs and stamps PublishedAt from the clock.
func (s *Suite) TestCreateAssignsIdentity() {
	first, err := s.Storage.Create(newsletter.Fields{"title": "one", "body": "b"})
	if s.NoError(err) {
		s.Equal("one", first.Title)
		s.Equal("b", first.Body)
		s.Equal(s.Clock.Now(), first.PublishedAt)
		s.Nil(first.EditedAt)
	}

	s.Clock.Add(time.Minute)
	second, err := s.Storage.Create(newsletter.Fields{"title": "two"})
	if s.NoError(err) {
		s.True(second.ID > first.ID)
		s.Equal(s.Clock.Now(), second.PublishedAt)
	}
}

// TestCreateRejectsUnknownField checks the field allow-list on
// creation.
func (s *Suite) TestCreateRejectsUnknownField() {
	_, err := s.Storage.Create(newsletter.Fields{"id": "7"})
	s.Equal(newsletter.ErrBadField{Name: "id"}, err)

	all, err := s.Storage.Newsletters()
	if s.NoError(err) {
		s.Empty(all)
	}
}

// TestFindMissing checks the not-found error path.
func (s *Suite) TestFindMissing() {
	_, err := s.Storage.Newsletter(17)
	s.Equal(newsletter.ErrNoSuchNewsletter{ID: 17}, err)
}

// TestListOrder checks that Newsletters returns every record in
// ascending ID order.
func (s *Suite) TestListOrder() {
	var ids []int
	for _, title := range []string{"a", "b", "c"} {
		n, err := s.Storage.Create(newsletter.Fields{"title": title})
		if !s.NoError(err) {
			return
		}
		ids = append(ids, n.ID)
	}
	all, err := s.Storage.Newsletters()
	if s.NoError(err) && s.Len(all, 3) {
		for i, n := range all {
			s.Equal(ids[i], n.ID)
		}
		s.Equal("a", all[0].Title)
		s.Equal("c", all[2].Title)
	}
}

// TestUpdateStampsEditedAt checks that a partial update changes only
// the named fields, sets EditedAt, and leaves PublishedAt alone.
func (s *Suite) TestUpdateStampsEditedAt() {
	n, err := s.Storage.Create(newsletter.Fields{"title": "old", "body": "keep"})
	if !s.NoError(err) {
		return
	}
	published := n.PublishedAt

	s.Clock.Add(time.Hour)
	updated, err := s.Storage.Update(n.ID, newsletter.Fields{"title": "new"})
	if s.NoError(err) {
		s.Equal("new", updated.Title)
		s.Equal("keep", updated.Body)
		s.Equal(published, updated.PublishedAt)
		if s.NotNil(updated.EditedAt) {
			s.Equal(s.Clock.Now(), *updated.EditedAt)
		}
	}

	// A second update must not move EditedAt backwards.
	s.Clock.Add(time.Hour)
	again, err := s.Storage.Update(n.ID, newsletter.Fields{"body": "changed"})
	if s.NoError(err) && s.NotNil(again.EditedAt) {
		s.False(again.EditedAt.Before(*updated.EditedAt))
	}
}

// TestUpdateMissing checks that updating an absent record fails
// without side effects.
func (s *Suite) TestUpdateMissing() {
	_, err := s.Storage.Update(3, newsletter.Fields{"title": "x"})
	s.Equal(newsletter.ErrNoSuchNewsletter{ID: 3}, err)
}

// TestUpdateRejectsUnknownField checks the allow-list on update.
func (s *Suite) TestUpdateRejectsUnknownField() {
	n, err := s.Storage.Create(newsletter.Fields{"title": "t"})
	if !s.NoError(err) {
		return
	}
	_, err = s.Storage.Update(n.ID, newsletter.Fields{"published_at": "now"})
	s.Equal(newsletter.ErrBadField{Name: "published_at"}, err)

	unchanged, err := s.Storage.Newsletter(n.ID)
	if s.NoError(err) {
		s.Nil(unchanged.EditedAt)
	}
}

// TestDestroy checks deletion and the subsequent not-found behavior.
func (s *Suite) TestDestroy() {
	n, err := s.Storage.Create(newsletter.Fields{"title": "doomed"})
	if !s.NoError(err) {
		return
	}
	err = s.Storage.Destroy(n.ID)
	s.NoError(err)

	_, err = s.Storage.Newsletter(n.ID)
	s.Equal(newsletter.ErrNoSuchNewsletter{ID: n.ID}, err)

	err = s.Storage.Destroy(n.ID)
	s.Equal(newsletter.ErrNoSuchNewsletter{ID: n.ID}, err)
}

// TestSnapshotIsolation checks that mutating a returned record does
// not change stored state.
func (s *Suite) TestSnapshotIsolation() {
	n, err := s.Storage.Create(newsletter.Fields{"title": "stable"})
	if !s.NoError(err) {
		return
	}
	n.Title = "scribbled"

	fresh, err := s.Storage.Newsletter(n.ID)
	if s.NoError(err) {
		s.Equal("stable", fresh.Title)
	}
}
