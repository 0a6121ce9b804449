package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/athenaeumapp/athenaeum/internal/entities"
)

// UpdateBookRequest carries the full set of editable annotations for one
// user book. Rating is a pointer so "not rated" transmits as null; every
// field is sent on each update.
type UpdateBookRequest struct {
	Rating        *int     `json:"rating"`
	ReadStatus    string   `json:"read_status"`
	PersonalNotes string   `json:"personal_notes"`
	Genres        []string `json:"genres"`
	Tags          []string `json:"tags"`
}

// BookIDsRequest is the body of batch delete and membership calls.
type BookIDsRequest struct {
	UserBookIDs []string `json:"user_book_ids"`
}

// ListBooksResponse is the account-wide book listing.
type ListBooksResponse struct {
	Items      []entities.UserBook `json:"items"`
	NextCursor string              `json:"next_cursor,omitempty"`
	Limit      int                 `json:"limit,omitempty"`
}

// ListBooks fetches the account-wide book list, optionally filtered by a
// free-text query.
func (c *Client) ListBooks(ctx context.Context, query string) (*ListBooksResponse, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}

	var resp ListBooksResponse
	if err := c.do(ctx, http.MethodGet, "/books", q, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateBook persists the annotations of one user book.
func (c *Client) UpdateBook(ctx context.Context, userBookID string, req UpdateBookRequest) error {
	return c.do(ctx, http.MethodPatch, "/books/"+userBookID, nil, req, nil, true)
}

// DeleteBooks removes user books from the account entirely, including every
// library membership.
func (c *Client) DeleteBooks(ctx context.Context, userBookIDs []string) error {
	body := BookIDsRequest{UserBookIDs: userBookIDs}
	return c.do(ctx, http.MethodDelete, "/books", nil, body, nil, true)
}

// AddBook creates a user book from a previously looked-up ISBN with initial
// annotations.
func (c *Client) AddBook(ctx context.Context, isbn string, req UpdateBookRequest) error {
	return c.do(ctx, http.MethodPost, "/books/"+isbn, nil, req, nil, true)
}
