// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is a node in the hostenv command tree. Interior nodes carry
// Subcommands; leaves carry Run and usually Flags.
type Command struct {
	// Name is the word that selects this command in its parent.
	Name string

	// Summary is the one-line description listed under the parent's
	// "Commands:" heading.
	Summary string

	// Description heads the command's own help. Summary is used when
	// empty.
	Description string

	// Usage overrides the synthesized "Usage:" line.
	Usage string

	// Examples are listed at the end of the help output.
	Examples []Example

	// Flags builds a fresh flag set for one parse. Nil means the command
	// takes no flags.
	Flags func() *pflag.FlagSet

	// Subcommands are selected by the first positional argument.
	Subcommands []*Command

	// Run receives the positional arguments left after flag parsing. A
	// command with both Run and Subcommands runs only when the first
	// argument is a flag.
	Run func(args []string) error

	// Stderr receives help text and the usage dump that accompanies a
	// missing subcommand. Nil inherits from the parent; the root falls
	// back to os.Stderr.
	Stderr io.Writer

	parent *Command
}

// Example is one entry of the "Examples:" help section.
type Example struct {
	Description string
	Command     string
}

// Execute runs the command tree against args, which excludes the
// program name.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.stderr())
		return nil
	}

	if len(c.Subcommands) > 0 {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			return c.dispatch(args[0], args[1:])
		}
		if c.Run == nil {
			c.PrintHelp(c.stderr())
			if len(args) == 0 {
				return errors.New("subcommand required")
			}
			return fmt.Errorf("subcommand required (got flag %q)", args[0])
		}
	}

	positional, err := c.parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		c.PrintHelp(c.stderr())
		return nil
	}
	if err != nil {
		return err
	}

	if c.Run == nil {
		c.PrintHelp(c.stderr())
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(positional)
}

// dispatch hands args to the subcommand called name.
func (c *Command) dispatch(name string, args []string) error {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub.Execute(args)
		}
	}
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return c.usageErrorf("unknown command %q (did you mean %q?)", name, suggestion)
	}
	return c.usageErrorf("unknown command %q", name)
}

// parseFlags parses args against a fresh flag set and returns the
// positional remainder. pflag.ErrHelp is returned unwrapped when --help
// appears after other arguments.
func (c *Command) parseFlags(args []string) ([]string, error) {
	if c.Flags == nil {
		return args, nil
	}

	flagSet := c.Flags()
	// The returned error carries the message; pflag's own usage dump
	// would duplicate PrintHelp.
	flagSet.SetOutput(io.Discard)

	err := flagSet.Parse(args)
	switch {
	case err == nil:
		return flagSet.Args(), nil
	case errors.Is(err, pflag.ErrHelp):
		return nil, err
	}

	message := err.Error()
	if strings.HasPrefix(message, "unknown") {
		// The failed parse leaves flagSet half-populated; suggest
		// against a clean one.
		if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
			return nil, c.usageErrorf("%s (did you mean %s?)", message, suggestion)
		}
	}
	return nil, c.usageErrorf("%s", message)
}

// usageErrorf formats an error that ends with a pointer to this
// command's help.
func (c *Command) usageErrorf(format string, args ...any) error {
	return fmt.Errorf(format+"\n\nRun '%s --help' for usage.", append(args, c.fullName())...)
}

// stderr resolves the help destination through the parent chain.
func (c *Command) stderr() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.Stderr != nil {
			return command.Stderr
		}
	}
	return os.Stderr
}

// PrintHelp writes the command's help to w: description, usage,
// subcommands, flags, and examples, each section omitted when empty.
func (c *Command) PrintHelp(w io.Writer) {
	if heading := c.heading(); heading != "" {
		fmt.Fprintf(w, "%s\n\n", heading)
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", c.usageLine())

	c.writeCommands(w)
	c.writeFlags(w)
	c.writeExamples(w)

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", c.fullName())
	}
}

func (c *Command) heading() string {
	if c.Description != "" {
		return c.Description
	}
	return c.Summary
}

func (c *Command) usageLine() string {
	switch {
	case c.Usage != "":
		return c.Usage
	case len(c.Subcommands) > 0:
		return c.fullName() + " <command> [flags]"
	default:
		return c.fullName() + " [flags]"
	}
}

func (c *Command) writeCommands(w io.Writer) {
	if len(c.Subcommands) == 0 {
		return
	}
	fmt.Fprint(w, "\nCommands:\n")
	table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	for _, sub := range c.Subcommands {
		fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
	}
	table.Flush()
}

func (c *Command) writeFlags(w io.Writer) {
	if c.Flags == nil {
		return
	}
	defaults := c.Flags().FlagUsages()
	if defaults == "" {
		return
	}
	fmt.Fprintf(w, "\nFlags:\n%s", defaults)
}

func (c *Command) writeExamples(w io.Writer) {
	if len(c.Examples) == 0 {
		return
	}
	fmt.Fprint(w, "\nExamples:\n")
	for _, example := range c.Examples {
		if example.Description == "" {
			fmt.Fprintf(w, "  %s\n", example.Command)
			continue
		}
		fmt.Fprintf(w, "  # %s\n  %s\n\n", example.Description, example.Command)
	}
}

// fullName is the space-separated path from the root, e.g.
// "hostenv family".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}
