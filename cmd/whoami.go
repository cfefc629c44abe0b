package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makuwro/makuwro-go/makuwro"
)

// whoamiCmd shows the authenticated account
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the authenticated account",
	PreRunE: initializeApp,
	RunE:    runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	user, err := client.GetUser(context.Background(), makuwro.UserQuery{})
	if err != nil {
		return err
	}

	fmt.Printf("Username:     %s\n", user.Username)
	if user.DisplayName != "" {
		fmt.Printf("Display name: %s\n", user.DisplayName)
	}
	fmt.Printf("ID:           %s\n", user.ID)
	if user.IsBanned {
		fmt.Println("This account is banned.")
	}
	return nil
}
