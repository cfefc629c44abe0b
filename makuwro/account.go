package makuwro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AccountType selects the account directory in API paths.
type AccountType int

const (
	AccountUser AccountType = iota
	AccountTeam
)

// apiDirectory returns the path segment for the account type. Self operations
// use the singular form; operations on other accounts use the plural form.
// The asymmetry mirrors the external API's routing.
func (t AccountType) apiDirectory(self bool) string {
	switch t {
	case AccountTeam:
		if self {
			return "team"
		}
		return "teams"
	default:
		if self {
			return "user"
		}
		return "users"
	}
}

// Account holds the identity fields shared by users and teams. Accounts are
// always constructed from a server response, never persisted locally.
type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarPath  string `json:"avatarPath"`
	BannerPath  string `json:"bannerPath"`
	CSS         string `json:"css"`
	Terms       string `json:"terms"`
	IsBanned    bool   `json:"isBanned"`
}

// User is an individual account.
type User struct {
	Account
}

// Team is a shared account operated by multiple users.
type Team struct {
	Account
}

// UserQuery identifies a user to look up. A zero query resolves to the
// authenticated user.
type UserQuery struct {
	Username string
	ID       string
}

func (q UserQuery) isZero() bool { return q.Username == "" && q.ID == "" }

// GetUser resolves a user.
//
// A zero query, or one matching the cached authenticated user (usernames
// compared case-insensitively), is a self lookup: a populated cache
// short-circuits the network call, and a cache miss with no token fails with
// ErrUnauthenticated. Successful self lookups replace the cache. Non-self
// lookups always hit the network and are never cached.
func (c *Client) GetUser(ctx context.Context, query UserQuery) (*User, error) {
	if c.isSelfQuery(query) {
		if c.cachedUser != nil {
			return c.cachedUser, nil
		}
		if c.token == "" {
			return nil, fmt.Errorf("cannot resolve the authenticated user without a session: %w", ErrUnauthenticated)
		}

		user, err := c.fetchUser(ctx, "accounts/user")
		if err != nil {
			return nil, err
		}
		c.cachedUser = user
		return user, nil
	}

	// The API only exposes remote lookup by username.
	if query.Username == "" {
		return nil, fmt.Errorf("lookups by ID only resolve the authenticated user; username is required: %w", ErrMissingArgument)
	}

	return c.fetchUser(ctx, "accounts/users/"+query.Username)
}

func (c *Client) fetchUser(ctx context.Context, path string) (*User, error) {
	raw, err := c.request(ctx, http.MethodGet, path, nil, nil, "", false)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &user, nil
}

// isSelfQuery reports whether query targets the authenticated user. The
// comparison is against the cached user only; no fresh fetch is made to
// decide.
func (c *Client) isSelfQuery(query UserQuery) bool {
	if query.isZero() {
		return true
	}
	if c.cachedUser == nil {
		return false
	}
	if query.ID != "" && query.ID == c.cachedUser.ID {
		return true
	}
	return query.Username != "" && strings.EqualFold(query.Username, c.cachedUser.Username)
}

// isSelf reports whether username refers to the authenticated user. An empty
// username always does.
func (c *Client) isSelf(username string) bool {
	if username == "" {
		return true
	}
	return c.cachedUser != nil && strings.EqualFold(username, c.cachedUser.Username)
}

// accountPath builds the path for an account mutation. The username segment
// is omitted entirely for self operations.
func (c *Client) accountPath(accountType AccountType, username string) string {
	if c.isSelf(username) {
		return "accounts/" + accountType.apiDirectory(true)
	}
	return "accounts/" + accountType.apiDirectory(false) + "/" + username
}

// NewUser holds the fields required to register an account.
type NewUser struct {
	Username  string
	Password  string
	BirthDate time.Time
	Email     string
}

// CreateUser registers a new account.
func (c *Client) CreateUser(ctx context.Context, fields NewUser) (*User, error) {
	if fields.Username == "" || fields.Password == "" || fields.Email == "" || fields.BirthDate.IsZero() {
		return nil, fmt.Errorf("username, password, birth date and email are all required: %w", ErrMissingArgument)
	}

	body, contentType, err := encodeProps(Props{
		"username":  fields.Username,
		"password":  fields.Password,
		"birthDate": fields.BirthDate.Format("2006-01-02"),
		"email":     fields.Email,
	})
	if err != nil {
		return nil, err
	}

	raw, err := c.request(ctx, http.MethodPost, "accounts/user", nil, body, contentType, true)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to parse created user: %w", err)
	}
	return &user, nil
}

// UpdateAccount patches account fields. An empty username, or one matching
// the authenticated user, targets the caller's own account.
func (c *Client) UpdateAccount(ctx context.Context, accountType AccountType, username string, props Props) error {
	if len(props) == 0 {
		return fmt.Errorf("account update requires at least one field: %w", ErrMissingArgument)
	}

	body, contentType, err := encodeProps(props)
	if err != nil {
		return err
	}

	_, err = c.request(ctx, http.MethodPatch, c.accountPath(accountType, username), nil, body, contentType, false)
	return err
}

// DeleteAccount deletes an account. An empty username, or one matching the
// authenticated user, targets the caller's own account.
func (c *Client) DeleteAccount(ctx context.Context, accountType AccountType, username string) error {
	_, err := c.request(ctx, http.MethodDelete, c.accountPath(accountType, username), nil, nil, "", false)
	return err
}
