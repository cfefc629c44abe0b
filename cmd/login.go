package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginPassword string

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Create a session and print the token",
	Long: `Authenticate against Makuwro with your username and password.

The returned session token is printed so it can be stored under
makuwro.token in your config file for subsequent commands.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	password := loginPassword
	if password == "" {
		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	token, err := client.CreateSession(context.Background(), username, password)
	if err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("Session created")
	fmt.Printf("Logged in as %s.\n", username)
	fmt.Printf("Session token (store under makuwro.token in your config):\n%s\n", token)
	return nil
}

// logoutCmd revokes the configured session token
var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Revoke the current session token",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.DeleteSession(context.Background(), ""); err != nil {
			return err
		}
		fmt.Println("Session revoked. Remove makuwro.token from your config.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
