// Package memory provides an in-process, in-memory implementation of
// newsletter.Storage.  There is no persistence here; the entire store
// is behind a single mutex, tuned for correctness rather than
// performance.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of
// higher-level components, and as the default backend of the daemon.
package memory

import (
	"sort"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/pressbox/go-newsletter/newsletter"
)

type memStorage struct {
	mu     sync.Mutex
	clock  clock.Clock
	nextID int
	items  map[int]*newsletter.Newsletter
}

// New creates a new empty newsletter store that operates purely in
// memory.  Each call creates an independent store.
func New() newsletter.Storage {
	return NewWithClock(clock.New())
}

// NewWithClock creates a new in-memory store with an explicit time
// source.  Most application code should call New(); this entry point
// is intended for tests that need to inject a mock clock to get
// deterministic PublishedAt and EditedAt values.
func NewWithClock(clk clock.Clock) newsletter.Storage {
	return &memStorage{
		clock:  clk,
		nextID: 1,
		items:  make(map[int]*newsletter.Newsletter),
	}
}

func (s *memStorage) Create(fields newsletter.Fields) (*newsletter.Newsletter, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &newsletter.Newsletter{
		ID:          s.nextID,
		Title:       fields["title"],
		Body:        fields["body"],
		PublishedAt: s.clock.Now(),
	}
	s.nextID++
	s.items[n.ID] = n
	return copyOf(n), nil
}

func (s *memStorage) Newsletter(id int) (*newsletter.Newsletter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, present := s.items[id]
	if !present {
		return nil, newsletter.ErrNoSuchNewsletter{ID: id}
	}
	return copyOf(n), nil
}

func (s *memStorage) Newsletters() ([]*newsletter.Newsletter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*newsletter.Newsletter, 0, len(s.items))
	for _, n := range s.items {
		result = append(result, copyOf(n))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *memStorage) Update(id int, fields newsletter.Fields) (*newsletter.Newsletter, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n, present := s.items[id]
	if !present {
		return nil, newsletter.ErrNoSuchNewsletter{ID: id}
	}
	if title, set := fields["title"]; set {
		n.Title = title
	}
	if body, set := fields["body"]; set {
		n.Body = body
	}
	now := s.clock.Now()
	n.EditedAt = &now
	return copyOf(n), nil
}

func (s *memStorage) Destroy(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, present := s.items[id]; !present {
		return newsletter.ErrNoSuchNewsletter{ID: id}
	}
	delete(s.items, id)
	return nil
}

// copyOf snapshots a record so callers cannot mutate stored state.
func copyOf(n *newsletter.Newsletter) *newsletter.Newsletter {
	dup := *n
	if n.EditedAt != nil {
		t := *n.EditedAt
		dup.EditedAt = &t
	}
	return &dup
}
