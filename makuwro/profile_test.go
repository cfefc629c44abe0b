package makuwro

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts/users/alice":
			w.Write([]byte(`{"id":"u1","username":"alice"}`))
		case "/contents/art/alice":
			w.Write([]byte(`[{"id":"a1","slug":"sunset"},{"id":"a2","slug":"dawn"}]`))
		case "/contents/stories/alice":
			w.Write([]byte(`[{"id":"s1","slug":"epic","title":"Epic"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	profile, err := client.GetProfile(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.User.Username)
	assert.Len(t, profile.Content[ContentArt], 2)
	assert.Len(t, profile.Content[ContentStory], 1)
	assert.Empty(t, profile.Content[ContentBlogPost])
	assert.Empty(t, profile.Content[ContentCharacter])

	story, ok := profile.Content[ContentStory][0].(*Story)
	require.True(t, ok)
	assert.Equal(t, "Epic", story.Title)
}

func TestGetProfileUnknownUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":10005,"message":"no such account"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
