package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/stayhub/stayhub-web/internal/bootstrap"
	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	"github.com/stayhub/stayhub-web/internal/util"
)

const defaultActor = "stayhub-admin"

// roleAdmin is the subset of the role administration service the CLI drives.
type roleAdmin interface {
	List(ctx context.Context, p util.Page, role string) ([]*model.RoleAssignment, error)
	Assign(ctx context.Context, actor domainauth.Principal, req model.SetRoleRequest) (*model.RoleAssignment, error)
	Revoke(ctx context.Context, actor domainauth.Principal, userID string) error
}

type roleOptions struct {
	UserID      string
	Role        string
	DisplayName string
	Actor       string
	Limit       int
	Yes         bool
	Timeout     time.Duration
}

// cliPrincipal is the operator identity. Shell access to the database already implies
// full control, so the CLI acts as super_admin.
func cliPrincipal(actor string) domainauth.Principal {
	return domainauth.Principal{
		Identity: domainauth.Identity{UserID: actor},
		Role:     domainauth.RoleSuperAdmin,
	}
}

func withRoleAdmin(cmdCtx *commandContext, timeout time.Duration, f func(context.Context, roleAdmin) error) error {
	return withDatabase(cmdCtx, timeout, func(ctx context.Context, db *sql.DB) error {
		svc := bootstrap.NewRoleAdminService(bootstrap.NewRepositories(db, nil), cmdCtx.Logger)
		return f(ctx, svc)
	})
}

func runGrantRole(cmdCtx *commandContext, args []string) error {
	opts, err := parseRoleFlags("grant-role", args)
	if err != nil {
		return err
	}
	if opts.UserID == "" || opts.Role == "" {
		return errors.New("--user and --role are required")
	}
	return withRoleAdmin(cmdCtx, opts.Timeout, func(ctx context.Context, svc roleAdmin) error {
		return grantRole(ctx, svc, cmdCtx.Out, opts)
	})
}

func grantRole(ctx context.Context, svc roleAdmin, out io.Writer, opts roleOptions) error {
	role, err := domainauth.ParseRole(opts.Role)
	if err != nil {
		return err
	}
	assignment, err := svc.Assign(ctx, cliPrincipal(opts.Actor), model.SetRoleRequest{
		UserID:      opts.UserID,
		Role:        role,
		DisplayName: opts.DisplayName,
	})
	if err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	return writef(out, "granted %s to %s\n", assignment.Role, assignment.UserID)
}

func runRevokeRole(cmdCtx *commandContext, args []string) error {
	opts, err := parseRoleFlags("revoke-role", args)
	if err != nil {
		return err
	}
	if opts.UserID == "" {
		return errors.New("--user is required")
	}
	if !opts.Yes {
		if err = confirm(cmdCtx.In, cmdCtx.Out, fmt.Sprintf("Revoke the role of %q?", opts.UserID)); err != nil {
			return err
		}
	}
	return withRoleAdmin(cmdCtx, opts.Timeout, func(ctx context.Context, svc roleAdmin) error {
		return revokeRole(ctx, svc, cmdCtx.Out, opts)
	})
}

func revokeRole(ctx context.Context, svc roleAdmin, out io.Writer, opts roleOptions) error {
	if err := svc.Revoke(ctx, cliPrincipal(opts.Actor), opts.UserID); err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	return writef(out, "revoked role of %s\n", opts.UserID)
}

func runListRoles(cmdCtx *commandContext, args []string) error {
	opts, err := parseRoleFlags("list-roles", args)
	if err != nil {
		return err
	}
	return withRoleAdmin(cmdCtx, opts.Timeout, func(ctx context.Context, svc roleAdmin) error {
		return listRoles(ctx, svc, cmdCtx.Out, opts)
	})
}

func listRoles(ctx context.Context, svc roleAdmin, out io.Writer, opts roleOptions) error {
	items, err := svc.List(ctx, util.NewPage(1, opts.Limit), opts.Role)
	if err != nil {
		return fmt.Errorf("list roles: %w", err)
	}
	if len(items) == 0 {
		return writeln(out, "no role assignments")
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if err = writef(tw, "USER\tROLE\tGRANTED BY\tUPDATED\n"); err != nil {
		return err
	}
	for _, a := range items {
		grantedBy := "-"
		if a.GrantedBy != nil && *a.GrantedBy != "" {
			grantedBy = *a.GrantedBy
		}
		if err = writef(tw, "%s\t%s\t%s\t%s\n",
			a.UserID, a.Role, grantedBy, a.UpdatedAt.UTC().Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func parseRoleFlags(name string, args []string) (roleOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := roleOptions{Actor: defaultActor, Limit: util.DefaultPageSize, Timeout: defaultCommandTimeout}
	fs.StringVar(&opts.UserID, "user", "", "User id the role applies to")
	fs.StringVar(&opts.Role, "role", "", "Role name (user, host, influencer, manager, admin, super_admin)")
	fs.StringVar(&opts.DisplayName, "display-name", "", "Display name for a new host or influencer record")
	fs.StringVar(&opts.Actor, "actor", defaultActor, "Recorded as granted_by")
	fs.IntVar(&opts.Limit, "limit", util.DefaultPageSize, "Maximum rows to list")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip the confirmation prompt")
	fs.DurationVar(&opts.Timeout, "timeout", defaultCommandTimeout, "Maximum duration for the command")

	if err := fs.Parse(args); err != nil {
		return roleOptions{}, err
	}
	opts.UserID = strings.TrimSpace(opts.UserID)
	opts.Role = strings.TrimSpace(opts.Role)
	if opts.Actor = strings.TrimSpace(opts.Actor); opts.Actor == "" {
		return roleOptions{}, errors.New("--actor cannot be empty")
	}
	if opts.Limit < 1 || opts.Limit > util.MaxPageSize {
		return roleOptions{}, fmt.Errorf("--limit must be between 1 and %d", util.MaxPageSize)
	}
	if opts.Timeout <= 0 {
		return roleOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}
