package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Electrocom-Solutions/erp-console/internal/api"
)

var loginUsername string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in and out of the backend session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the session cookie locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := loginUsername
		if username == "" {
			fmt.Print("username: ")
			if _, err := fmt.Scanln(&username); err != nil {
				return fmt.Errorf("reading username: %w", err)
			}
		}
		fmt.Print("password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		user, err := apiClient.Auth.Login(cmd.Context(), api.Credentials{
			Username: username,
			Password: string(password),
		})
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s %s (%s)\n", user.FirstName, user.LastName, user.Username)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the backend session and clear local cookies",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := apiClient.Auth.Logout(cmd.Context())
		// Local cookies are cleared regardless; report but don't fail the
		// command on a backend-side teardown error.
		if err != nil {
			fmt.Fprintln(os.Stderr, "backend logout failed (local session cleared):", err)
		} else {
			fmt.Println("logged out")
		}
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := apiClient.Auth.Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
		return nil
	},
}

func init() {
	authLoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "login username")
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
}
