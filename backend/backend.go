// Package backend provides a standard way to construct a newsletter
// storage based on command-line flags.
package backend

import (
	"errors"
	"strings"

	"github.com/pressbox/go-newsletter/memory"
	"github.com/pressbox/go-newsletter/newsletter"
	"github.com/pressbox/go-newsletter/postgres"
)

// Backend describes user-visible parameters to store newsletter data.
// This implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "memory"}
//         flag.Var(&backend, "backend", "impl[:address] of newsletter storage")
//         flag.Parse()
//         storage, err := backend.Storage()
//     }
type Backend struct {
	// Implementation holds the name of the implementation, either
	// "memory" or "postgres".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string
}

// Storage creates a new newsletter storage.  This generally should
// only be called once.  If the backend has in-process state, such as
// a database connection pool or an in-memory store, calling this
// multiple times will create multiple copies of that state.  In
// particular, if b.Implementation is "memory", multiple calls to this
// will create multiple independent newsletter collections.
func (b *Backend) Storage() (newsletter.Storage, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "postgres":
		return postgres.New(b.Address)
	default:
		return nil, errors.New("unknown newsletter backend " + b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that neither this
// function nor Storage() attempts to validate the b.Address part of
// the string or attempts to actually make a connection.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	b.Implementation = parts[0]
	if len(parts) == 2 {
		b.Address = parts[1]
	} else {
		b.Address = ""
	}
	switch b.Implementation {
	case "memory", "postgres":
		return nil
	default:
		return errors.New("unknown newsletter backend " + b.Implementation)
	}
}
