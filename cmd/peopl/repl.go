package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/peopl/configs"
	"github.com/reusee/peopl/dumps"
	"github.com/reusee/peopl/parses"
)

func runREPL(ctx context.Context, parse parses.Parse, format configs.OutputFormat) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".peopl_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "peopl> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		expr, err := parse(ctx, "<repl>", line)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
			continue
		}
		if err := dumps.Encode(rl.Stdout(), format, expr); err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		}
	}
	return nil
}
