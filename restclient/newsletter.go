// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an HTTP client for the newsletter REST
// service in the restserver package.
//
// The server in github.com/pressbox/go-newsletter/cmd/newsletterd
// runs a compatible REST server.  Call New() with the base URL of
// that service; for instance,
//
//     c, err := restclient.New("http://localhost:5980/")
//
// The client starts by fetching the root document and from then on
// only follows the URLs and URI templates the server hands back; it
// never constructs a resource path itself.
package restclient

import (
	"net/url"

	"github.com/pressbox/go-newsletter/restdata"
)

// Client speaks to an external newsletter REST server.
type Client struct {
	resource
	Representation restdata.RootData
}

// New creates a new Client rooted at baseURL, and fetches the root
// document from it.
func New(baseURL string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{resource: resource{URL: parsed}}
	err = c.Refresh()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh re-fetches the root document.
func (c *Client) Refresh() error {
	c.Representation = restdata.RootData{}
	return c.Get(&c.Representation)
}

// Index returns the root document's welcome message.
func (c *Client) Index() string {
	return c.Representation.Index
}

// Newsletters lists every newsletter on the server, in the compact
// collection view, in ascending id order.
func (c *Client) Newsletters() (restdata.NewsletterList, error) {
	var resp restdata.NewsletterList
	err := c.GetFrom(c.Representation.NewslettersURL, map[string]interface{}{}, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Create submits a new newsletter and returns its full
// representation.
func (c *Client) Create(fields restdata.Fields) (*restdata.Newsletter, error) {
	resp := &restdata.Newsletter{}
	err := c.PostTo(c.Representation.NewslettersURL, map[string]interface{}{}, fields, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Newsletter retrieves the full representation of one newsletter.
// Returns newsletter.ErrNoSuchNewsletter if the server reports no
// record with that id.
func (c *Client) Newsletter(id int) (*restdata.Newsletter, error) {
	resp := &restdata.Newsletter{}
	err := c.GetFrom(c.Representation.NewsletterURL, map[string]interface{}{"id": id}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update applies a partial update to one newsletter and returns its
// new full representation.
func (c *Client) Update(id int, fields restdata.Fields) (*restdata.Newsletter, error) {
	resp := &restdata.Newsletter{}
	err := c.PatchTo(c.Representation.NewsletterURL, map[string]interface{}{"id": id}, fields, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Destroy deletes one newsletter, returning the server's
// confirmation message.
func (c *Client) Destroy(id int) (string, error) {
	var resp restdata.Message
	err := c.DeleteAt(c.Representation.NewsletterURL, map[string]interface{}{"id": id}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
