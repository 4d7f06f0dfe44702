package newsletter

import "fmt"

// ErrNoSuchNewsletter is returned by Storage methods that look up a
// record by ID but cannot find it.
type ErrNoSuchNewsletter struct {
	ID int
}

func (err ErrNoSuchNewsletter) Error() string {
	return fmt.Sprintf("No such newsletter %v", err.ID)
}

// ErrBadField is returned by Storage.Create() and Storage.Update()
// if the field map names a field outside UpdatableFields.
type ErrBadField struct {
	Name string
}

func (err ErrBadField) Error() string {
	return fmt.Sprintf("Cannot set newsletter field %q", err.Name)
}
