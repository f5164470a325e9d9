package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Muhamedyehya/aqar-admin/internal/bootstrap"
)

const passwordEnv = "AQAR_PASSWORD"

type loginOptions struct {
	Email    string
	Password string
}

func parseLoginFlags(args []string) (loginOptions, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	fs.StringVar(&opts.Email, "email", "", "Operator email (required)")
	fs.StringVar(&opts.Password, "password", "", "Password (defaults to $"+passwordEnv+")")

	if err := fs.Parse(args); err != nil {
		return loginOptions{}, err
	}

	opts.Email = strings.TrimSpace(opts.Email)
	if opts.Email == "" {
		return loginOptions{}, errors.New("--email is required")
	}
	if opts.Password == "" {
		opts.Password = os.Getenv(passwordEnv)
	}
	if opts.Password == "" {
		return loginOptions{}, fmt.Errorf("--password or $%s is required", passwordEnv)
	}
	return opts, nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	opts, err := parseLoginFlags(args)
	if err != nil {
		return err
	}

	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		if err := c.SignIn.SignIn(cmdCtx.Ctx, opts.Email, opts.Password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		return printSession(cmdCtx, c)
	})
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		if err := c.Sessions.Logout(cmdCtx.Ctx); err != nil {
			return err
		}
		return writeln(cmdCtx.Out, "Logged out")
	})
}

func runWhoAmI(cmdCtx *commandContext, _ []string) error {
	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		return printSession(cmdCtx, c)
	})
}

func printSession(cmdCtx *commandContext, c *bootstrap.Console) error {
	sess := c.Sessions.Session()
	if !sess.LoggedIn {
		return writeln(cmdCtx.Out, "Not logged in")
	}

	email := sess.Email
	if email == "" {
		email = "(unknown)"
	}
	if err := writef(cmdCtx.Out, "Logged in as %s\n", email); err != nil {
		return err
	}
	admin := "no"
	if sess.IsAdmin {
		admin = "yes"
	}
	if err := writef(cmdCtx.Out, "Admin: %s\n", admin); err != nil {
		return err
	}
	if !sess.IsAdmin {
		return writeln(cmdCtx.Out, "Warning: this account is not flagged admin; the API may refuse changes.")
	}
	return nil
}
