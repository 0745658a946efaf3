package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jobdesk/internal/domain/account"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func promptPassword(out *cobra.Command) (string, error) {
	fmt.Fprint(out.OutOrStdout(), "Password: ")
	raw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func passwordFromFlagOrPrompt(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return promptPassword(cmd)
}

func newSignupCommand(env *Env) *cobra.Command {
	var name, email, password, role string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedRole, ok := account.ParseRole(role)
			if !ok {
				return fmt.Errorf("invalid role %q: must be candidate or employer", role)
			}
			pass, err := passwordFromFlagOrPrompt(cmd, password)
			if err != nil {
				return err
			}
			acc, err := env.Store.Register(cmd.Context(), name, email, pass, parsedRole)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "Welcome, %s! Signed in as %s (%s).\n", acc.Name, acc.Email, strings.ToLower(string(acc.Role)))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&role, "role", "candidate", "account role (candidate|employer)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLoginCommand(env *Env) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := passwordFromFlagOrPrompt(cmd, password)
			if err != nil {
				return err
			}
			acc, err := env.Store.Authenticate(cmd.Context(), email, pass)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(env.Out, "Signed in as %s (%s).\n", acc.Email, strings.ToLower(string(acc.Role)))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.Store.Logout(cmd.Context()); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(env.Out, "Signed out.")
			return nil
		},
	}
}

func newWhoamiCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := env.Store.Session()
			if sess == nil {
				fmt.Fprintln(env.Out, "Not signed in.")
				return nil
			}
			fmt.Fprintf(env.Out, "%s <%s> role=%s id=%s\n", sess.Name, sess.Email, strings.ToLower(string(sess.Role)), sess.ID)
			return nil
		},
	}
}
