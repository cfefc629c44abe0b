package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/makuwro/makuwro-go/filter"
	"github.com/makuwro/makuwro-go/makuwro"
)

var (
	listType   string
	listOwner  string
	filterExpr string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's published content",
	Long: `List content of one type published by a user, optionally filtered
with an expression, for example:

  makuwro list --type blogs --owner alice --filter 'contains(Title, "devlog")'`,
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listType, "type", "t", "art", "content type (art, blogs, characters, stories, comments, notifications)")
	listCmd.Flags().StringVarP(&listOwner, "owner", "o", "", "owner username (defaults to the authenticated user)")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
}

func runList(cmd *cobra.Command, args []string) error {
	typ, err := makuwro.ParseContentType(listType)
	if err != nil {
		return err
	}

	ctx := context.Background()

	owner := listOwner
	if owner == "" {
		user, err := client.GetUser(ctx, makuwro.UserQuery{})
		if err != nil {
			return err
		}
		owner = user.Username
	}

	items, err := client.GetAllContent(ctx, typ, owner)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		items = f.Apply(items)
	}

	if len(items) == 0 {
		fmt.Printf("No %s found for %s.\n", typ, owner)
		return nil
	}

	fmt.Printf("\nFound %d items:\n", len(items))
	fmt.Println(strings.Repeat("-", 80))

	for _, item := range items {
		fmt.Printf("• %s\n", describeItem(item))
	}

	return nil
}

// describeItem renders a one-line summary for a content item.
func describeItem(item makuwro.Item) string {
	base := item.ContentBase()

	label := base.Slug
	switch v := item.(type) {
	case *makuwro.BlogPost:
		if v.Title != "" {
			label = fmt.Sprintf("%s (%s)", v.Title, base.Slug)
		}
	case *makuwro.Story:
		if v.Title != "" {
			label = fmt.Sprintf("%s (%s)", v.Title, base.Slug)
		}
	case *makuwro.Character:
		if v.Name != "" {
			label = fmt.Sprintf("%s (%s)", v.Name, base.Slug)
		}
	case *makuwro.Comment:
		if v.Text != "" {
			label = v.Text
		}
	}

	if base.Description != "" {
		label += " - " + base.Description
	}
	return label
}
