package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/auth"
	"github.com/s0up4200/thoth/thoth"
)

var loginEmail string

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check Thoth account credentials",
	Long: `Log in to the configured Thoth instance and report when the token expires.

Credentials come from credentials.email and credentials.password, the
THOTH_CREDENTIALS_EMAIL and THOTH_CREDENTIALS_PASSWORD environment variables,
or an interactive prompt.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (overrides credentials.email)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginEmail != "" {
		cfg.Credentials.Email = loginEmail
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	if err := login(cmd.Context(), client, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
		return err
	}

	token := client.Token()
	if token.ExpiresAt.IsZero() {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged in to %s\n", client.Endpoint())
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged in to %s, token expires %s\n",
		client.Endpoint(), token.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// login authenticates client, prompting for missing credentials when stdin
// is a terminal
func login(ctx context.Context, client *thoth.Client, in io.Reader, prompt io.Writer) error {
	email, password := cfg.Credentials.Email, cfg.Credentials.Password

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if (email == "" || password == "") && !interactive {
		return fmt.Errorf("%w: set credentials.email and credentials.password", auth.ErrMissingCredentials)
	}

	reader := bufio.NewReader(in)
	if email == "" {
		fmt.Fprint(prompt, "Email: ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Fprint(prompt, "Password: ")
		secret, err := term.ReadPassword(os.Stdin.Fd())
		fmt.Fprintln(prompt)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(secret)
	}

	return client.Login(ctx, email, password)
}
