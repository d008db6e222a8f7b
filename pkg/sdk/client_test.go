package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServer records the last request and replies with the given status
// and JSON body
func stubServer(t *testing.T, status int, body any) (*httptest.Server, *http.Request) {
	t.Helper()

	var last http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(server.Close)

	return server, &last
}

func TestClientCreateNote(t *testing.T) {
	server, last := stubServer(t, http.StatusCreated, Note{ID: 1, Subject: "Math", Description: "two plus two"})
	client := NewClient(server.URL)

	created, err := client.CreateNote(context.Background(), &CreateNoteRequest{
		Subject:     "Math",
		Description: "two plus two",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/notes", last.URL.Path)
}

func TestClientGetNote(t *testing.T) {
	server, last := stubServer(t, http.StatusOK, Note{ID: 7, Subject: "found", Likes: 2})
	client := NewClient(server.URL)

	n, err := client.GetNote(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "found", n.Subject)
	assert.Equal(t, 2, n.Likes)
	assert.Equal(t, "/api/notes/7", last.URL.Path)
}

func TestClientModifyNote(t *testing.T) {
	server, last := stubServer(t, http.StatusOK, Note{ID: 7, Subject: "renamed"})
	client := NewClient(server.URL)

	subject := "renamed"
	n, err := client.ModifyNote(context.Background(), 7, &UpdateNoteRequest{Subject: &subject})
	require.NoError(t, err)

	assert.Equal(t, "renamed", n.Subject)
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/api/notes/7", last.URL.Path)
}

func TestClientDeleteNote(t *testing.T) {
	t.Run("confirmed deletion", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, DeleteNoteResponse{Deleted: true})
		client := NewClient(server.URL)

		require.NoError(t, client.DeleteNote(context.Background(), 3))
		assert.Equal(t, http.MethodDelete, last.Method)
		assert.Equal(t, "/api/notes/3", last.URL.Path)
	})

	t.Run("unconfirmed deletion is an error", func(t *testing.T) {
		server, _ := stubServer(t, http.StatusOK, DeleteNoteResponse{Deleted: false})
		client := NewClient(server.URL)

		assert.Error(t, client.DeleteNote(context.Background(), 3))
	})
}

func TestClientSearchNotes(t *testing.T) {
	server, last := stubServer(t, http.StatusOK, []Note{{ID: 1, Subject: "Grocery List"}})
	client := NewClient(server.URL)

	notes, err := client.SearchNotes(context.Background(), "grocery run")
	require.NoError(t, err)

	require.Len(t, notes, 1)
	assert.Equal(t, "/api/notes/search", last.URL.Path)
	assert.Equal(t, "grocery run", last.URL.Query().Get("subject"))
}

func TestClientAggregates(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, 12)
		client := NewClient(server.URL)

		count, err := client.CountNotes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(12), count)
		assert.Equal(t, "/api/notes/count", last.URL.Path)
	})

	t.Run("word count", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, 3)
		client := NewClient(server.URL)

		count, err := client.GetWordCount(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, "/api/notes/word-count/5", last.URL.Path)
	})

	t.Run("average length", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, 2.5)
		client := NewClient(server.URL)

		avg, err := client.GetAverageNoteLength(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, 2.5, avg, 1e-9)
		assert.Equal(t, "/api/notes/average-length", last.URL.Path)
	})
}

func TestClientLikeOperations(t *testing.T) {
	t.Run("like", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, Note{ID: 1, Likes: 1})
		client := NewClient(server.URL)

		n, err := client.LikeNote(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, n.Likes)
		assert.Equal(t, http.MethodPost, last.Method)
		assert.Equal(t, "/api/notes/1/like", last.URL.Path)
	})

	t.Run("unlike", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, Note{ID: 1, Likes: 0})
		client := NewClient(server.URL)

		n, err := client.UnlikeNote(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 0, n.Likes)
		assert.Equal(t, http.MethodDelete, last.Method)
		assert.Equal(t, "/api/notes/1/unlike", last.URL.Path)
	})

	t.Run("boost", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, LikeAdjustmentResponse{
			Message:    "Like Boost Activated!",
			TotalLikes: 11,
		})
		client := NewClient(server.URL)

		resp, err := client.BoostLikes(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 11, resp.TotalLikes)
		assert.Equal(t, "/api/notes/1/like-boost", last.URL.Path)
	})

	t.Run("reset", func(t *testing.T) {
		server, last := stubServer(t, http.StatusOK, LikeAdjustmentResponse{
			Message:    "All like resets",
			TotalLikes: 0,
		})
		client := NewClient(server.URL)

		resp, err := client.ResetLikes(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalLikes)
		assert.Equal(t, "/api/notes/1/like-reset", last.URL.Path)
	})
}

func TestClientErrorBodies(t *testing.T) {
	t.Run("structured error body", func(t *testing.T) {
		server, _ := stubServer(t, http.StatusNotFound, ErrorResponse{
			Timestamp: "2026-01-01T00:00:00Z",
			Status:    404,
			Error:     "Note Not Found",
			Message:   "Note with ID 42 not found",
			Path:      "/api/notes/42",
		})
		client := NewClient(server.URL)

		_, err := client.GetNote(context.Background(), 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Note Not Found")
		assert.Contains(t, err.Error(), "Note with ID 42 not found")
	})

	t.Run("unstructured error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)

		client := NewClient(server.URL)

		_, err := client.GetNotes(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}
