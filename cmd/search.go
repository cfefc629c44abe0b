package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makuwro/makuwro-go/makuwro"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search accounts and content",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	results, err := client.Search(context.Background(), args[0])
	if err != nil {
		return err
	}

	total := len(results.Users) + len(results.Art) + len(results.BlogPosts) +
		len(results.Characters) + len(results.Stories)
	if total == 0 {
		fmt.Println("No results.")
		return nil
	}

	if len(results.Users) > 0 {
		fmt.Printf("Users (%d):\n", len(results.Users))
		for _, user := range results.Users {
			name := user.Username
			if user.DisplayName != "" {
				name = fmt.Sprintf("%s (%s)", user.DisplayName, user.Username)
			}
			fmt.Printf("  • %s\n", name)
		}
	}

	printSection := func(heading string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Printf("%s (%d):\n", heading, len(lines))
		for _, line := range lines {
			fmt.Printf("  • %s\n", line)
		}
	}

	var art, blogs, characters, stories []string
	for _, item := range results.Art {
		art = append(art, ownedSlug(item.Owner, item.Slug))
	}
	for _, item := range results.BlogPosts {
		label := item.Title
		if label == "" {
			label = item.Slug
		}
		blogs = append(blogs, ownedSlug(item.Owner, label))
	}
	for _, item := range results.Characters {
		label := item.Name
		if label == "" {
			label = item.Slug
		}
		characters = append(characters, ownedSlug(item.Owner, label))
	}
	for _, item := range results.Stories {
		label := item.Title
		if label == "" {
			label = item.Slug
		}
		stories = append(stories, ownedSlug(item.Owner, label))
	}

	printSection("Art", art)
	printSection("Blog posts", blogs)
	printSection("Characters", characters)
	printSection("Stories", stories)

	return nil
}

// ownedSlug prefixes a label with its owner's username when known.
func ownedSlug(owner *makuwro.User, label string) string {
	if owner != nil && owner.Username != "" {
		return owner.Username + "/" + label
	}
	return label
}
