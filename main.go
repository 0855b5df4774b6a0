/*
Chain is a small workbench for two kinds of chained lookup.

Entities resolve keys by delegation: a key missing from an entity is looked
up on its delegate, and so on along the chain. Scopes resolve names
lexically: a function value records the scope it was created in and every
call starts its lookups there.

    entity base
    set base greeting hello
    entity derived base
    get derived greeting

For the full list of commands, run chain and type help.

Chain is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/michaelmacinnis/chain/internal/engine"
	"github.com/michaelmacinnis/chain/internal/system/options"
	"github.com/michaelmacinnis/chain/internal/ui"
)

func main() {
	if err := options.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(options.Debug())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = run(engine.New(os.Stdout, logger))
	if err != nil {
		logger.Debug("exiting", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
	}

	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true

	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func run(e *engine.T) error {
	if s := options.Scene(); s != "" {
		if err := e.Load(s); err != nil {
			return err
		}
	}

	switch {
	case options.Command() != "":
		return e.Evaluate(options.Command())

	case len(options.Scripts()) > 0:
		for _, path := range options.Scripts() {
			if err := source(e, path); err != nil {
				return err
			}
		}

		return nil

	case options.Interactive():
		return ui.Run(e, engine.Commands())
	}

	return e.Run("stdin", os.Stdin)
}

func source(e *engine.T, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return e.Run(path, f)
}
