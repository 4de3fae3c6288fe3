package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	app      *App
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in and persist the session" }
func (*loginCmd) Usage() string {
	return `fintrack login -email <address> -password <password>

  Authenticates against the API and stores the session credentials so
  later commands run without signing in again.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "account email address")
	f.StringVar(&c.password, "password", "", "account password")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "both -email and -password are required")
		return subcommands.ExitUsageError
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	user, err := c.app.Session.Login(ctx, c.email, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}

type logoutCmd struct {
	app *App
}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out and forget the stored session" }
func (*logoutCmd) Usage() string {
	return `fintrack logout

  Removes the stored credentials and cached profile.
`
}
func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.Session.Logout(ctx); err != nil {
		return fail(err)
	}
	fmt.Println("Signed out.")
	return subcommands.ExitSuccess
}

type registerCmd struct {
	app      *App
	email    string
	password string
	name     string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `fintrack register -email <address> -password <password> -name <name>

  Creates an account. Sign in afterwards with 'fintrack login'.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "account email address")
	f.StringVar(&c.password, "password", "", "account password")
	f.StringVar(&c.name, "name", "", "display name")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "-email, -password and -name are all required")
		return subcommands.ExitUsageError
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	if err := c.app.Session.Register(ctx, c.email, c.password, c.name); err != nil {
		return fail(err)
	}
	fmt.Println("Account created. Sign in with 'fintrack login'.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct {
	app *App
}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the signed-in account" }
func (*whoamiCmd) Usage() string {
	return `fintrack whoami

  Prints the cached profile of the stored session. Works offline.
`
}
func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, ok, err := c.app.Session.RestoreSession(ctx)
	if err != nil {
		return fail(err)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Not signed in. Run 'fintrack login' first.")
		return subcommands.ExitFailure
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}
