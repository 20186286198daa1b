package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginServer string
	loginEmail  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with a CourseHub server",
	Long: `Authenticate with a CourseHub server using email and password.
The access token is stored in ~/.coursehub/token with 0600 permissions.

Example:
  coursectl login --server http://localhost:8080 --email admin@coursehub.fr`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the stored token and forget it",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := NewClient()
		if err != nil {
			return err
		}
		if err := client.Logout(cmd.Context()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: server logout failed: %v\n", err)
		}
		if err := RemoveToken(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginServer, "server", "http://localhost:8080", "CourseHub server URL")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address for authentication")
	loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	server := strings.TrimRight(loginServer, "/")
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client := NewClientWithURL(server)
	resp, err := client.Login(cmd.Context(), loginEmail, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := SaveToken(TokenData{Token: resp.Token.AccessToken, Server: server, Email: resp.User.Email}); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Logged in as %s (%s)\n", resp.User.Email, resp.User.RoleType)
	return nil
}

// readPassword prompts for a password without echoing input.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// piped input
	var password string
	if _, err := fmt.Fscanln(os.Stdin, &password); err != nil {
		return "", err
	}
	return password, nil
}
