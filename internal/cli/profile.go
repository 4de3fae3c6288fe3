package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type profileCmd struct {
	app  *App
	name string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the account profile" }
func (*profileCmd) Usage() string {
	return `fintrack profile [-name <new name>]

  Without flags, fetches and prints the account profile. With -name,
  updates the display name and refreshes the cached profile.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "new display name")
}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if status := requireSession(ctx, c.app); status != subcommands.ExitSuccess {
		return status
	}

	if c.name != "" {
		user, err := c.app.Settings.UpdateProfile(ctx, c.name)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)
		return subcommands.ExitSuccess
	}

	user, err := c.app.Settings.Profile(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}
