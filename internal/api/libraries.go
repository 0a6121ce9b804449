package api

import (
	"context"
	"net/http"

	"github.com/athenaeumapp/athenaeum/internal/entities"
)

// CreateLibraryRequest creates a new, optionally public library.
type CreateLibraryRequest struct {
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}

// CreateLibraryResponse carries the slug the server minted for sharing.
type CreateLibraryResponse struct {
	Message string `json:"message"`
	Slug    string `json:"slug"`
}

// UpdateLibraryRequest renames a library or toggles its visibility.
// Pointers distinguish "leave unchanged" from zero values.
type UpdateLibraryRequest struct {
	Name     *string `json:"name,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

// PublicLibraryBook is the reduced book shape of a public library page.
type PublicLibraryBook struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	CoverURL string   `json:"cover_url,omitempty"`
	Genres   []string `json:"genres"`
}

// PublicLibraryResponse is the anonymous view of a shared library.
type PublicLibraryResponse struct {
	LibraryName string              `json:"library_name"`
	Books       []PublicLibraryBook `json:"books"`
}

// ListLibraries fetches all libraries of the account.
func (c *Client) ListLibraries(ctx context.Context) ([]entities.Library, error) {
	var libs []entities.Library
	if err := c.do(ctx, http.MethodGet, "/library", nil, nil, &libs, true); err != nil {
		return nil, err
	}
	return libs, nil
}

// CreateLibrary creates a library and returns its sharing slug.
func (c *Client) CreateLibrary(ctx context.Context, req CreateLibraryRequest) (*CreateLibraryResponse, error) {
	var resp CreateLibraryResponse
	if err := c.do(ctx, http.MethodPost, "/library", nil, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateLibrary edits a library's name or visibility. The default library
// cannot be edited.
func (c *Client) UpdateLibrary(ctx context.Context, libraryID string, req UpdateLibraryRequest) error {
	return c.do(ctx, http.MethodPatch, "/library/"+libraryID, nil, req, nil, true)
}

// DeleteLibrary removes a library and all its memberships. User books are
// untouched.
func (c *Client) DeleteLibrary(ctx context.Context, libraryID string) error {
	return c.do(ctx, http.MethodDelete, "/library/"+libraryID, nil, nil, nil, true)
}

// PublicLibrary fetches the anonymous view of a public library by slug.
// No token required.
func (c *Client) PublicLibrary(ctx context.Context, slug string) (*PublicLibraryResponse, error) {
	var resp PublicLibraryResponse
	if err := c.do(ctx, http.MethodGet, "/public/library/"+slug, nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublicLibraryURL builds the sharing URL for a public library.
func (c *Client) PublicLibraryURL(slug string) string {
	return c.baseURL + "/public/library/" + slug
}
