package cmds

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// ErrUsagePrinted is returned by the help command so callers can stop without
// treating it as a failure.
var ErrUsagePrinted = errors.New("usage printed")

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stdout)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share one *Command, print it once under its sorted names
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}
	type entry struct {
		names   []string
		command *Command
	}
	entries := make([]entry, 0, len(names))
	for command, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{ns, command})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		line := indent + strings.Join(e.names, ", ")
		if e.command.Description != "" {
			line += "\t" + e.command.Description
		}
		fmt.Fprintln(w, line)
		if len(e.command.Subs) > 0 {
			writeCommands(w, e.command.Subs, depth+1)
		}
	}
}
