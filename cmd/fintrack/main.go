package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"fintrack/internal/cli"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")

	app := cli.NewApp()
	cli.Register(commander, app)

	flag.Parse()
	status := commander.Execute(context.Background())
	app.Close()
	os.Exit(int(status))
}
