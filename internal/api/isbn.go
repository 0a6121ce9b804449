package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/athenaeumapp/athenaeum/internal/entities"
)

// LookupISBN resolves an ISBN to bibliographic data through the server's
// external lookup. The caller should validate the ISBN format first; a
// malformed ISBN must never reach the network.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	q := url.Values{}
	q.Set("isbn", isbn)

	var book entities.Book
	if err := c.do(ctx, http.MethodGet, "/isbn/", q, nil, &book, true); err != nil {
		return nil, err
	}
	return &book, nil
}
