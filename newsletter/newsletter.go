// Package newsletter defines the Newsletter record and an abstract
// storage API over a collection of them.
//
// Applications will generally know of a specific implementation of
// Storage (the memory or postgres packages in this module) and pass
// it to the higher layers.  Records returned from a Storage are
// snapshots; mutating one has no effect on the stored state.
package newsletter

import "time"

// Newsletter is a single published newsletter record.
type Newsletter struct {
	// ID uniquely identifies this record.  It is assigned by the
	// storage backend at creation time and never changes.
	ID int

	// Title is the newsletter's headline.
	Title string

	// Body is the newsletter's full text.
	Body string

	// PublishedAt records when the newsletter was created.  It is
	// set exactly once, at creation, and never modified.
	PublishedAt time.Time

	// EditedAt records the most recent update, or is nil if the
	// record has never been updated after creation.
	EditedAt *time.Time
}

// Attribute returns the named attribute of the record, using the
// wire-format field names.  The second return is false if no such
// attribute exists.  This is what feeds a serialization schema.
func (n *Newsletter) Attribute(name string) (interface{}, bool) {
	switch name {
	case "id":
		return n.ID, true
	case "title":
		return n.Title, true
	case "body":
		return n.Body, true
	case "published_at":
		return n.PublishedAt, true
	case "edited_at":
		return n.EditedAt, true
	default:
		return nil, false
	}
}

// Fields is a set of writable newsletter fields, keyed by wire-format
// field name.  It is used both for creation and for partial updates.
type Fields map[string]string

// UpdatableFields lists the field names a caller may set when
// creating or updating a newsletter.  Anything else in a Fields map
// is rejected with ErrBadField; identity and timestamp fields are
// owned by the storage backend.
var UpdatableFields = []string{"title", "body"}

// Validate checks f against UpdatableFields and returns ErrBadField
// for the first key that is not allowed.
func (f Fields) Validate() error {
	for key := range f {
		allowed := false
		for _, name := range UpdatableFields {
			if key == name {
				allowed = true
				break
			}
		}
		if !allowed {
			return ErrBadField{Name: key}
		}
	}
	return nil
}

// Storage is the persistence interface for newsletter records.  All
// implementations must be safe for concurrent use.
type Storage interface {
	// Create stores a new newsletter built from fields, assigning
	// its ID and PublishedAt.  Returns ErrBadField if fields
	// contains a key outside UpdatableFields.
	Create(fields Fields) (*Newsletter, error)

	// Newsletter retrieves a single record by ID.  Returns
	// ErrNoSuchNewsletter if no record has that ID.
	Newsletter(id int) (*Newsletter, error)

	// Newsletters retrieves every record, in ascending ID order.
	Newsletters() ([]*Newsletter, error)

	// Update applies fields to an existing record and stamps its
	// EditedAt.  Fields not present in the map are left unchanged.
	// Returns ErrNoSuchNewsletter if no record has that ID, or
	// ErrBadField if fields contains a key outside
	// UpdatableFields; in either case nothing is modified.
	Update(id int, fields Fields) (*Newsletter, error)

	// Destroy removes a record.  Returns ErrNoSuchNewsletter if
	// no record has that ID.
	Destroy(id int) error
}
