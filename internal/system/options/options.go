// Released under an MIT license. See LICENSE.

// Package options parses chain's command-line options.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "chain 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	interactive bool
	scene       string
	scripts     []string
	usage       = `chain

Usage:
  chain [-d] [-l SCENE] SCRIPT...
  chain [-d] [-l SCENE] -c COMMAND
  chain [-di] [-l SCENE]
  chain -h
  chain -v

Arguments:
  SCRIPT  Path to a file of chain commands, run in order.

Options:
  -c, --command=COMMAND  Run the specified command.
  -d, --debug            Log each command at debug level.
  -i, --interactive      Invert interactive mode.
  -l, --load=SCENE       Apply a YAML scene before anything else.
  -h, --help             Display this help.
  -v, --version          Print chain version.

If chain's stdin is a TTY, and chain was invoked with no script or command,
interactive mode is enabled. Otherwise, commands are read from stdin.
`
)

// Command returns the command passed with -c.
func Command() string {
	return command
}

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Interactive returns true if commands should be read with a line editor.
func Interactive() bool {
	return interactive
}

// Parse parses argv, which excludes the program name. Requests for help
// or the version, and usage errors, print a message and exit.
func Parse(argv []string) error {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	scene, _ = opts.String("--load")
	debug, _ = opts.Bool("--debug")
	scripts, _ = opts["SCRIPT"].([]string)

	interactive = false
	if command == "" && len(scripts) == 0 {
		interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}

// Scene returns the path passed with -l.
func Scene() string {
	return scene
}

// Scripts returns the script paths, in order.
func Scripts() []string {
	return scripts
}
