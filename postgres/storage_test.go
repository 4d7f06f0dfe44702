// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"
	"os"
	"testing"

	"github.com/pressbox/go-newsletter/newsletter/storagetest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic storage tests against a real PostgreSQL
// database.  Set NEWSLETTER_TEST_POSTGRES to a lib/pq connection
// string to enable these tests; the standard libpq environment
// variables fill in anything the string omits.  The schema is dropped
// and recreated around every test.
type Suite struct {
	storagetest.Suite
	dsn string
	db  *sql.DB
}

func (s *Suite) SetupTest() {
	s.Suite.SetupTest()
	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		s.T().Fatal(err)
	}
	s.db = db
	storage, err := NewWithClock(s.dsn, s.Clock)
	if err != nil {
		s.T().Fatal(err)
	}
	s.Storage = storage
}

func (s *Suite) TearDownTest() {
	if s.db != nil {
		_ = Drop(s.db)
		_ = s.db.Close()
	}
}

func TestStorage(t *testing.T) {
	dsn, present := os.LookupEnv("NEWSLETTER_TEST_POSTGRES")
	if !present {
		t.Skip("NEWSLETTER_TEST_POSTGRES not set")
	}
	suite.Run(t, &Suite{dsn: dsn})
}
