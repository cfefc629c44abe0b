package makuwro

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// listableTypes are the content kinds with browsable per-user listings.
var listableTypes = []ContentType{ContentArt, ContentBlogPost, ContentCharacter, ContentStory}

// Profile bundles a user with their published content.
type Profile struct {
	User    *User
	Content map[ContentType][]Item
}

// GetProfile fetches a user and every listable content type they have
// published. Listings are fetched concurrently; each call keeps its own
// timeout.
func (c *Client) GetProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := c.GetUser(ctx, UserQuery{Username: username})
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		User:    user,
		Content: make(map[ContentType][]Item, len(listableTypes)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(len(listableTypes))

	var mu sync.Mutex
	for _, typ := range listableTypes {
		typ := typ
		g.Go(func() error {
			items, err := c.GetAllContent(ctx, typ, user.Username)
			if err != nil {
				return err
			}
			mu.Lock()
			profile.Content[typ] = items
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}
