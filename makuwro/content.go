package makuwro

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ContentType tags a publishable content kind. Content operations on the
// client take the tag; it selects the API directory and the hydration of
// response bodies into typed models.
type ContentType int

const (
	ContentArt ContentType = iota
	ContentBlogPost
	ContentCharacter
	ContentStory
	ContentComment
	ContentNotification
)

// Content holds the fields shared by every content kind. Owner is always a
// fully-formed User once a response has been decoded.
type Content struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Owner       *User  `json:"owner"`
	Description string `json:"description"`
}

// ContentBase returns the shared content fields.
func (c *Content) ContentBase() *Content { return c }

// Item is implemented by every content model.
type Item interface {
	ContentBase() *Content
}

// Art is a published piece of artwork.
type Art struct {
	Content
}

// BlogPost is a published blog entry.
type BlogPost struct {
	Content
	Title     string `json:"title"`
	CoverPath string `json:"coverPath"`
}

// Character is a published character profile.
type Character struct {
	Content
	Name string `json:"name"`
}

// Story is a published story.
type Story struct {
	Content
	Title string `json:"title"`
}

// Comment is a reply attached to another content item.
type Comment struct {
	Content
	Text   string   `json:"content"`
	Parent *Content `json:"parent"`
}

// Notification is a message delivered to an account.
type Notification struct {
	Content
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// contentDescriptor binds a content tag to its API directory and hydration
// function.
type contentDescriptor struct {
	directory string
	hydrate   func(json.RawMessage) (Item, error)
}

var contentTable = map[ContentType]contentDescriptor{
	ContentArt: {"art", func(raw json.RawMessage) (Item, error) {
		var v Art
		return &v, json.Unmarshal(raw, &v)
	}},
	ContentBlogPost: {"blogs", func(raw json.RawMessage) (Item, error) {
		var v BlogPost
		return &v, json.Unmarshal(raw, &v)
	}},
	ContentCharacter: {"characters", func(raw json.RawMessage) (Item, error) {
		var v Character
		return &v, json.Unmarshal(raw, &v)
	}},
	ContentStory: {"stories", func(raw json.RawMessage) (Item, error) {
		var v Story
		return &v, json.Unmarshal(raw, &v)
	}},
	ContentComment: {"comments", func(raw json.RawMessage) (Item, error) {
		var v Comment
		return &v, json.Unmarshal(raw, &v)
	}},
	ContentNotification: {"notifications", func(raw json.RawMessage) (Item, error) {
		var v Notification
		return &v, json.Unmarshal(raw, &v)
	}},
}

// ParseContentType resolves an API directory name to its tag.
func ParseContentType(name string) (ContentType, error) {
	for typ, desc := range contentTable {
		if desc.directory == name {
			return typ, nil
		}
	}
	return 0, fmt.Errorf("unknown content type: %s", name)
}

// String returns the API directory name for the tag.
func (t ContentType) String() string {
	if desc, ok := contentTable[t]; ok {
		return desc.directory
	}
	return fmt.Sprintf("ContentType(%d)", int(t))
}

// resolveOwner defaults an empty username to the cached authenticated user.
func (c *Client) resolveOwner(username string) (string, error) {
	if username != "" {
		return username, nil
	}
	if c.cachedUser != nil {
		return c.cachedUser.Username, nil
	}
	return "", fmt.Errorf("no owner username given and no authenticated user cached: %w", ErrMissingArgument)
}

// contentPath builds contents/{dir}/{username}[/{slug}][/comments].
func (c *Client) contentPath(typ ContentType, username, slug string, thread bool) (string, error) {
	desc, ok := contentTable[typ]
	if !ok {
		return "", fmt.Errorf("unrecognized content type %d: %w", int(typ), ErrMissingArgument)
	}

	owner, err := c.resolveOwner(username)
	if err != nil {
		return "", err
	}

	path := "contents/" + desc.directory + "/" + owner
	if slug != "" {
		path += "/" + slug
	}
	if thread {
		path += "/comments"
	}
	return path, nil
}

// CreateContent publishes a new content item owned by username. Props are
// serialized into a multipart form; see Props for the encoding rules. The
// response is hydrated into the model selected by typ.
func (c *Client) CreateContent(ctx context.Context, typ ContentType, username, slug string, props Props) (Item, error) {
	return c.createContent(ctx, typ, username, slug, props, false)
}

// CreateComment posts a threaded comment under the content item identified by
// typ, username and slug. The result is always a *Comment regardless of the
// parent's type.
func (c *Client) CreateComment(ctx context.Context, typ ContentType, username, slug string, props Props) (*Comment, error) {
	if slug == "" {
		return nil, fmt.Errorf("threaded comments require the parent slug: %w", ErrMissingArgument)
	}

	item, err := c.createContent(ctx, typ, username, slug, props, true)
	if err != nil {
		return nil, err
	}
	return item.(*Comment), nil
}

func (c *Client) createContent(ctx context.Context, typ ContentType, username, slug string, props Props, thread bool) (Item, error) {
	path, err := c.contentPath(typ, username, slug, thread)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	var contentType string
	if len(props) > 0 {
		body, contentType, err = encodeProps(props)
		if err != nil {
			return nil, err
		}
	}

	raw, err := c.request(ctx, http.MethodPost, path, nil, body, contentType, true)
	if err != nil {
		return nil, err
	}

	hydrate := contentTable[typ].hydrate
	if thread {
		hydrate = contentTable[ContentComment].hydrate
	}

	item, err := hydrate(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created content: %w", err)
	}
	return item, nil
}

// GetContent fetches a single content item by owner and slug.
func (c *Client) GetContent(ctx context.Context, typ ContentType, username, slug string) (Item, error) {
	if slug == "" {
		return nil, fmt.Errorf("content lookup requires a slug: %w", ErrMissingArgument)
	}

	path, err := c.contentPath(typ, username, slug, false)
	if err != nil {
		return nil, err
	}

	raw, err := c.request(ctx, http.MethodGet, path, nil, nil, "", false)
	if err != nil {
		return nil, err
	}

	item, err := contentTable[typ].hydrate(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	return item, nil
}

// GetAllContent lists every item of the given type posted by username. An
// owner with no posts yields an empty slice, not an error.
func (c *Client) GetAllContent(ctx context.Context, typ ContentType, username string) ([]Item, error) {
	path, err := c.contentPath(typ, username, "", false)
	if err != nil {
		return nil, err
	}

	raw, err := c.request(ctx, http.MethodGet, path, nil, nil, "", false)
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse content listing: %w", err)
		}
	}

	items := make([]Item, 0, len(entries))
	hydrate := contentTable[typ].hydrate
	for _, entry := range entries {
		item, err := hydrate(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to parse content listing: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateContent patches fields of an existing content item.
func (c *Client) UpdateContent(ctx context.Context, typ ContentType, username, slug string, props Props) error {
	if slug == "" {
		return fmt.Errorf("content update requires a slug: %w", ErrMissingArgument)
	}
	if len(props) == 0 {
		return fmt.Errorf("content update requires at least one field: %w", ErrMissingArgument)
	}

	path, err := c.contentPath(typ, username, slug, false)
	if err != nil {
		return err
	}

	body, contentType, err := encodeProps(props)
	if err != nil {
		return err
	}

	_, err = c.request(ctx, http.MethodPatch, path, nil, body, contentType, false)
	return err
}

// DeleteContent removes a content item.
func (c *Client) DeleteContent(ctx context.Context, typ ContentType, username, slug string) error {
	if slug == "" {
		return fmt.Errorf("content deletion requires a slug: %w", ErrMissingArgument)
	}

	path, err := c.contentPath(typ, username, slug, false)
	if err != nil {
		return err
	}

	_, err = c.request(ctx, http.MethodDelete, path, nil, nil, "", false)
	return err
}
