package makuwro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// SearchResults groups matches across accounts and content types.
type SearchResults struct {
	Users      []*User      `json:"users"`
	Art        []*Art       `json:"art"`
	BlogPosts  []*BlogPost  `json:"blogs"`
	Characters []*Character `json:"characters"`
	Stories    []*Story     `json:"stories"`
}

// Search queries the service across accounts and content. An empty query
// fails with ErrMissingArgument before any network attempt.
func (c *Client) Search(ctx context.Context, query string) (*SearchResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search requires a query: %w", ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("query", query)

	raw, err := c.request(ctx, http.MethodGet, "search?"+params.Encode(), nil, nil, "", false)
	if err != nil {
		return nil, err
	}

	var results SearchResults
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}
	return &results, nil
}
