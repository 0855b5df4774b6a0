// Released under an MIT license. See LICENSE.

// Package demo holds the scripts run by the demo command.
package demo

import (
	"embed"
	"sort"
	"strings"
)

//go:embed *.chain
var scripts embed.FS //nolint:gochecknoglobals

const suffix = ".chain"

// Names returns the names of the available demos in sorted order.
func Names() []string {
	entries, _ := scripts.ReadDir(".")

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}

	sort.Strings(names)

	return names
}

// Script returns the text of the demo called name.
func Script(name string) (string, bool) {
	b, err := scripts.ReadFile(name + suffix)
	if err != nil {
		return "", false
	}

	return string(b), true
}
