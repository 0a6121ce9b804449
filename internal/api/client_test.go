package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_MissingTokenAbortsBeforeNetwork(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))

	_, err := client.ListBooks(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Equal(t, 0, hits, "no request may be issued without a token")
}

func TestClient_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("test-token"))

	resp, err := client.ListBooks(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestClient_UpdateBook(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("test-token"))

	rating := 5
	err := client.UpdateBook(context.Background(), "ub-1", UpdateBookRequest{
		Rating:        &rating,
		ReadStatus:    "reading",
		PersonalNotes: "great",
		Genres:        []string{"Crime"},
		Tags:          []string{"noir", "mystery"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/books/ub-1", gotPath)
	assert.Equal(t, float64(5), gotBody["rating"])
	assert.Equal(t, "reading", gotBody["read_status"])
	assert.Equal(t, []interface{}{"noir", "mystery"}, gotBody["tags"])
}

func TestClient_UpdateBookNullRating(t *testing.T) {
	var raw map[string]json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &raw))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("test-token"))

	err := client.UpdateBook(context.Background(), "ub-1", UpdateBookRequest{
		ReadStatus: "unread",
		Genres:     []string{},
		Tags:       []string{},
	})
	require.NoError(t, err)

	// The rating field must be present and null, not omitted.
	rating, ok := raw["rating"]
	require.True(t, ok)
	assert.Equal(t, "null", string(rating))
}

func TestClient_DeleteBooksBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody BookIDsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("test-token"))

	require.NoError(t, client.DeleteBooks(context.Background(), []string{"ub-1"}))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/books", gotPath)
	assert.Equal(t, []string{"ub-1"}, gotBody.UserBookIDs)

	require.NoError(t, client.RemoveFromLibrary(context.Background(), "L1", []string{"ub-1"}))
	assert.Equal(t, "/librarybooks/L1", gotPath)
	assert.Equal(t, []string{"ub-1"}, gotBody.UserBookIDs)
}

func TestClient_MissingLibraries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/librarybooks/missing-libraries/", r.URL.Path)
		assert.Equal(t, "ub-1", r.URL.Query().Get("user_book_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"libraries": [{"_id": "L1", "name": "Fantasy"}, {"_id": "L2", "name": "To Read"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("test-token"))

	libs, err := client.MissingLibraries(context.Background(), "ub-1")
	require.NoError(t, err)
	require.Len(t, libs, 2)
	assert.Equal(t, "L1", libs[0].ID)
	assert.Equal(t, "Fantasy", libs[0].Name)
	assert.Equal(t, "L2", libs[1].ID)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		check      func(t *testing.T, err error)
	}{
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnauthorized)
			},
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var serverErr *ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
			},
		},
		{
			name:       "other client error",
			statusCode: http.StatusUnprocessableEntity,
			check: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(server.URL, StaticToken("test-token"))
			_, err := client.ListBooks(context.Background(), "")
			tt.check(t, err)
		})
	}
}

func TestClient_LoginDoesNotRequireToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds Credentials
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &creds))
		assert.Equal(t, "reader@example.com", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok", "token_type": "bearer"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))

	resp, err := client.Login(context.Background(), "reader@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestNewClient_Timeout(t *testing.T) {
	client := NewClient("http://127.0.0.1:8000", StaticToken(""))
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)

	client = NewClient("http://127.0.0.1:8000", StaticToken(""), WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)

	client = NewClient("http://127.0.0.1:8000", StaticToken(""), WithTimeout(0))
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}

func TestClient_PublicLibraryURL(t *testing.T) {
	client := NewClient("http://127.0.0.1:8000/", StaticToken(""))
	assert.Equal(t, "http://127.0.0.1:8000/public/library/my-shelf-a1b2c3", client.PublicLibraryURL("my-shelf-a1b2c3"))
}
