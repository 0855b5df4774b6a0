// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for chain.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/chain/internal/system/history"
)

const prompt = "> "

// Evaluator is the interface for things that want to process commands.
type Evaluator interface {
	Evaluate(line string) error
	Names() []string
}

// Run prompts for commands and sends each one to e until end of input.
// Errors from e are printed and do not end the session.
func Run(e Evaluator, commands []string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e, commands))

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, "history:", err)
	}

	for {
		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			os.Stdout.Write([]byte("exit\n"))
			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		if err := e.Evaluate(line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

// Completer returns a word completer that offers command names for the
// first word and workspace names for every other word.
func Completer(e Evaluator, commands []string) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t") + 1
		prefix := head[start:]
		head = head[:start]

		candidates := commands
		if strings.TrimSpace(head) != "" {
			candidates = e.Names()
		}

		for _, c := range candidates {
			if strings.HasPrefix(c, prefix) {
				completions = append(completions, c+" ")
			}
		}

		sort.Strings(completions)

		return head, completions, tail
	}
}
