package cli

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
)

func (a *app) newCookieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cookie",
		Short: "Exchange the session with browsers as a cookie",
	}
	cmd.AddCommand(a.newCookieExportCmd(), a.newCookieImportCmd())
	return cmd
}

func (a *app) newCookieExportCmd() *cobra.Command {
	var (
		opts     authstore.CookieOptions
		sameSite string
		expires  string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the session as a Set-Cookie value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cookieOpts *authstore.CookieOptions
			if hasAttributeFlags(cmd) {
				var err error
				if opts.SameSite, err = parseSameSite(sameSite); err != nil {
					return err
				}
				if expires != "" {
					if opts.Expires, err = time.Parse(time.RFC3339, expires); err != nil {
						return fmt.Errorf("invalid --expires: %w", err)
					}
				}
				cookieOpts = &opts
			}

			v, ok := a.client.AuthStore().ExportToCookie(cookieOpts, name)
			if !ok {
				return fmt.Errorf("nothing to export: no session or invalid cookie name")
			}
			return a.out.line(v)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Cookie name (defaults to the storage key)")
	cmd.Flags().StringVar(&opts.Path, "path", "", "Path attribute")
	cmd.Flags().StringVar(&opts.Domain, "domain", "", "Domain attribute")
	cmd.Flags().BoolVar(&opts.Secure, "secure", false, "Secure attribute")
	cmd.Flags().BoolVar(&opts.HttpOnly, "http-only", false, "HttpOnly attribute")
	cmd.Flags().IntVar(&opts.MaxAge, "max-age", 0, "Max-Age attribute in seconds")
	cmd.Flags().StringVar(&sameSite, "same-site", "", "SameSite attribute (lax, strict, none)")
	cmd.Flags().StringVar(&expires, "expires", "", "Expires attribute as RFC3339 (defaults to the token expiry)")
	return cmd
}

// hasAttributeFlags reports whether any cookie attribute flag was given.
// Without attributes only the name=value pair is printed.
func hasAttributeFlags(cmd *cobra.Command) bool {
	for _, f := range []string{"path", "domain", "secure", "http-only", "max-age", "same-site", "expires"} {
		if cmd.Flags().Changed(f) {
			return true
		}
	}
	return false
}

func parseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(s) {
	case "":
		return http.SameSiteDefaultMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("invalid --same-site %q, use lax, strict or none", s)
	}
}

func (a *app) newCookieImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <cookie-header>",
		Short: "Load the session from a Cookie header value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.AuthStore().LoadFromCookie(cmd.Context(), args[0], name); err != nil {
				return fmt.Errorf("import cookie: %w", err)
			}
			return a.out.print(a.session())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Cookie name (defaults to the storage key)")
	return cmd
}
