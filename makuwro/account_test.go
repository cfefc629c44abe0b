package makuwro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserSelf(t *testing.T) {
	t.Run("cache short-circuits the network", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			assert.Equal(t, "/accounts/user", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"id": "u1", "username": "Alice"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, WithToken("tok"))

		first, err := client.GetUser(context.Background(), UserQuery{})
		require.NoError(t, err)
		assert.Equal(t, "Alice", first.Username)

		second, err := client.GetUser(context.Background(), UserQuery{})
		require.NoError(t, err)
		assert.Same(t, first, second)

		// Case-insensitive username match and ID match also resolve to self.
		byName, err := client.GetUser(context.Background(), UserQuery{Username: "ALICE"})
		require.NoError(t, err)
		assert.Same(t, first, byName)

		byID, err := client.GetUser(context.Background(), UserQuery{ID: "u1"})
		require.NoError(t, err)
		assert.Same(t, first, byID)

		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("empty cache without token", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetUser(context.Background(), UserQuery{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Equal(t, int32(0), requests.Load())
	})
}

func TestGetUserOther(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/accounts/users/bob", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": "u2", "username": "bob"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	for i := 0; i < 2; i++ {
		user, err := client.GetUser(context.Background(), UserQuery{Username: "bob"})
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
	}

	// Non-self lookups are never cached.
	assert.Equal(t, int32(2), requests.Load())
}

func TestGetUserByIDRequiresUsernameForOthers(t *testing.T) {
	client := newTestClient(t, "http://localhost:1", WithToken("tok"))
	client.cachedUser = &User{Account: Account{ID: "u1", Username: "alice"}}

	_, err := client.GetUser(context.Background(), UserQuery{ID: "someone-else"})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestAccountMutationPaths(t *testing.T) {
	type call struct {
		method string
		path   string
	}

	var calls []call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithToken("tok"))
	client.cachedUser = &User{Account: Account{ID: "u1", Username: "alice"}}

	ctx := context.Background()

	// Self operations omit the username segment and use the singular form.
	require.NoError(t, client.UpdateAccount(ctx, AccountUser, "", Props{"css": "body{}"}))
	require.NoError(t, client.UpdateAccount(ctx, AccountUser, "Alice", Props{"css": "body{}"}))
	require.NoError(t, client.DeleteAccount(ctx, AccountUser, "alice"))

	// Operations on others keep the pluralized segment.
	require.NoError(t, client.UpdateAccount(ctx, AccountUser, "bob", Props{"css": "body{}"}))
	require.NoError(t, client.DeleteAccount(ctx, AccountUser, "bob"))
	require.NoError(t, client.DeleteAccount(ctx, AccountTeam, "catcafe"))

	expected := []call{
		{http.MethodPatch, "/accounts/user"},
		{http.MethodPatch, "/accounts/user"},
		{http.MethodDelete, "/accounts/user"},
		{http.MethodPatch, "/accounts/users/bob"},
		{http.MethodDelete, "/accounts/users/bob"},
		{http.MethodDelete, "/accounts/teams/catcafe"},
	}
	assert.Equal(t, expected, calls)
}

func TestUpdateAccountRequiresProps(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")
	err := client.UpdateAccount(context.Background(), AccountUser, "", Props{})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestCreateUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/user", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "newbie", r.FormValue("username"))
		assert.Equal(t, "hunter2", r.FormValue("password"))
		assert.Equal(t, "2000-04-02", r.FormValue("birthDate"))
		assert.Equal(t, "newbie@example.com", r.FormValue("email"))

		json.NewEncoder(w).Encode(map[string]any{"id": "u9", "username": "newbie"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	user, err := client.CreateUser(context.Background(), NewUser{
		Username:  "newbie",
		Password:  "hunter2",
		BirthDate: time.Date(2000, 4, 2, 0, 0, 0, 0, time.UTC),
		Email:     "newbie@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", user.ID)
}

func TestCreateUserMissingFields(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")

	for i, fields := range []NewUser{
		{Password: "x", BirthDate: time.Now(), Email: "a@b.c"},
		{Username: "a", BirthDate: time.Now(), Email: "a@b.c"},
		{Username: "a", Password: "x", Email: "a@b.c"},
		{Username: "a", Password: "x", BirthDate: time.Now()},
	} {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			_, err := client.CreateUser(context.Background(), fields)
			assert.ErrorIs(t, err, ErrMissingArgument)
		})
	}
}
