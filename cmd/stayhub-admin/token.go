package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/stayhub/stayhub-web/config"
	"github.com/stayhub/stayhub-web/internal/adapters/devauth"
)

type devTokenOptions struct {
	UserID string
	Email  string
	TTL    time.Duration
}

func runDevToken(cmdCtx *commandContext, args []string) error {
	opts, err := parseDevTokenFlags(args)
	if err != nil {
		return err
	}
	return issueDevToken(cmdCtx.Config.Auth, cmdCtx.Out, opts)
}

// issueDevToken signs a credential with the same secret the server verifies, so the
// token works against a running instance in mock mode.
func issueDevToken(auth config.AuthConfig, out io.Writer, opts devTokenOptions) error {
	if auth.Mode != config.AuthModeMock {
		return errors.New("dev-token requires AUTH_MODE=mock")
	}
	if auth.DevAuth.Secret == "" {
		return errors.New("dev-token requires DEV_AUTH_SECRET so the server can verify the token")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = auth.DevAuth.TokenTTL
	}
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:   auth.DevAuth.UserID,
		Email:    auth.DevAuth.Email,
		Secret:   auth.DevAuth.Secret,
		TokenTTL: ttl,
	})
	if err != nil {
		return fmt.Errorf("dev auth provider: %w", err)
	}

	userID, email := auth.DevAuth.UserID, auth.DevAuth.Email
	if opts.UserID != "" {
		userID, email = opts.UserID, opts.Email
	}
	tok, err := prov.Issue(userID, email)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	return writef(out, "%s\n", tok.AccessToken)
}

func parseDevTokenFlags(args []string) (devTokenOptions, error) {
	fs := flag.NewFlagSet("dev-token", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts devTokenOptions
	fs.StringVar(&opts.UserID, "user", "", "User id to embed; defaults to DEV_AUTH_USER_ID")
	fs.StringVar(&opts.Email, "email", "", "Email to embed with --user")
	fs.DurationVar(&opts.TTL, "ttl", 0, "Token lifetime; defaults to DEV_AUTH_TOKEN_TTL")

	if err := fs.Parse(args); err != nil {
		return devTokenOptions{}, err
	}
	opts.UserID = strings.TrimSpace(opts.UserID)
	opts.Email = strings.TrimSpace(opts.Email)
	if opts.TTL < 0 {
		return devTokenOptions{}, errors.New("--ttl cannot be negative")
	}
	return opts, nil
}
