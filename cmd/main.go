package cmd

import "github.com/google/subcommands"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&spotCmd{}, "analysis")
	c.Register(&perpCmd{}, "analysis")
	c.Register(&csvCmd{}, "analysis")

	c.Register(&convertCmd{}, "portfolios")
}
