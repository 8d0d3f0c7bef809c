package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/jwt"
)

// session is the printable view of the stored session.
type session struct {
	Authenticated bool             `json:"authenticated" yaml:"authenticated"`
	Admin         bool             `json:"admin" yaml:"admin"`
	ExpiresAt     string           `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Record        authstore.Record `json:"record,omitempty" yaml:"record,omitempty"`
	Claims        jwt.Claims       `json:"claims,omitempty" yaml:"claims,omitempty"`
}

func (a *app) session() session {
	store := a.client.AuthStore()
	store.Revalidate()

	s := session{
		Authenticated: store.IsValid(),
		Admin:         store.IsAdmin(),
		Record:        store.Record(),
	}
	if token := store.Token(); token != "" {
		if exp, err := jwt.ExpiresAt(token); err == nil && exp.Unix() > 0 {
			s.ExpiresAt = exp.UTC().Format(time.RFC3339)
		}
		if claims, err := jwt.Decode(token); err == nil {
			s.Claims = claims
		}
	}
	return s
}

func (a *app) newLoginCmd() *cobra.Command {
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login <collection> <identity>",
		Short: "Authenticate with a password and store the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				password string
				err      error
			)
			if passwordStdin {
				password, err = readLine(cmd.InOrStdin())
			} else {
				password, err = promptPassword(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("password cannot be empty")
			}

			if _, err := a.client.Collection(args[0]).AuthWithPassword(cmd.Context(), args[1], password); err != nil {
				return fmt.Errorf("login: %w", err)
			}
			return a.out.print(a.session())
		},
	}

	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}

func (a *app) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.client.AuthStore().Clear(cmd.Context())
			return a.out.print(a.session())
		},
	}
}

func (a *app) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session, its validity and token claims",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.out.print(a.session())
		},
	}
}
