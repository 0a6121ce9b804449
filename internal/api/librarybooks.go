package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/athenaeumapp/athenaeum/internal/entities"
)

// LibraryBooksResponse is the listing of one library's books.
type LibraryBooksResponse struct {
	Library entities.Library    `json:"library"`
	Books   []entities.UserBook `json:"books"`
}

// MissingLibrariesResponse lists the libraries a user book is absent from.
// The server is authoritative for membership; the client does no local
// dedup computation.
type MissingLibrariesResponse struct {
	Libraries []entities.LibraryRef `json:"libraries"`
}

// LibraryBooks fetches the books belonging to one library.
func (c *Client) LibraryBooks(ctx context.Context, libraryID string) (*LibraryBooksResponse, error) {
	var resp LibraryBooksResponse
	if err := c.do(ctx, http.MethodGet, "/librarybooks/"+libraryID, nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MissingLibraries returns the libraries that do not yet contain the book,
// in the server's order.
func (c *Client) MissingLibraries(ctx context.Context, userBookID string) ([]entities.LibraryRef, error) {
	q := url.Values{}
	q.Set("user_book_id", userBookID)

	var resp MissingLibrariesResponse
	if err := c.do(ctx, http.MethodGet, "/librarybooks/missing-libraries/", q, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Libraries, nil
}

// AddToLibrary creates memberships for the given user books in one library.
func (c *Client) AddToLibrary(ctx context.Context, libraryID string, userBookIDs []string) error {
	body := BookIDsRequest{UserBookIDs: userBookIDs}
	return c.do(ctx, http.MethodPost, "/librarybooks/"+libraryID, nil, body, nil, true)
}

// RemoveFromLibrary deletes memberships only; the user books themselves
// survive in the account and in other libraries.
func (c *Client) RemoveFromLibrary(ctx context.Context, libraryID string, userBookIDs []string) error {
	body := BookIDsRequest{UserBookIDs: userBookIDs}
	return c.do(ctx, http.MethodDelete, "/librarybooks/"+libraryID, nil, body, nil, true)
}
