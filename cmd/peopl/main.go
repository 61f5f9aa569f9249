package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/peopl/cmds"
	"github.com/reusee/peopl/configs"
	"github.com/reusee/peopl/debugs"
	"github.com/reusee/peopl/dumps"
	"github.com/reusee/peopl/modes"
	"github.com/reusee/peopl/parses"
)

var (
	tapFlag  = cmds.Switch("-tap")
	replFlag = cmds.Switch("-repl")
	evalFlag = cmds.Var[string]("-eval")

	paths []string
)

func init() {
	cmds.Fallback(func(arg string) error {
		if strings.HasPrefix(arg, "-") && arg != parses.StdinName {
			return fmt.Errorf("unknown flag: %s", arg)
		}
		paths = append(paths, arg)
		return nil
	})
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrUsagePrinted) {
			return
		}
		exit(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		parse parses.Parse,
		parseFiles parses.ParseFiles,
		format configs.OutputFormat,
		eval debugs.Eval,
		tap debugs.Tap,
	) {
		if *replFlag {
			err = runREPL(ctx, parse, format)
			return
		}
		err = run(ctx, os.Stdout, os.Stderr, parseFiles, format, eval, tap)
	})
	if err != nil {
		exit(err)
	}
}

var errFilesFailed = errors.New("some files failed to parse")

func run(
	ctx context.Context,
	out io.Writer,
	errOut io.Writer,
	parseFiles parses.ParseFiles,
	format configs.OutputFormat,
	eval debugs.Eval,
	tap debugs.Tap,
) error {
	inputs := paths
	if len(inputs) == 0 {
		inputs = []string{parses.StdinName}
	}

	files, err := parseFiles(ctx, inputs)
	if err != nil {
		return err
	}

	failed := false
	for _, file := range files {
		if file.Err != nil {
			fmt.Fprintln(errOut, file.Err.Error())
			failed = true
			continue
		}
		if len(files) > 1 {
			fmt.Fprintf(out, "%s:\n", file.Path)
		}

		values := map[string]any{
			"tree":   file.Tree,
			"path":   file.Path,
			"source": file.Source,
		}
		if *evalFlag != "" {
			value, err := eval(ctx, *evalFlag, values)
			if err != nil {
				return fmt.Errorf("eval %s: %w", file.Path, err)
			}
			fmt.Fprintln(out, value.String())
		} else if err := dumps.Encode(out, format, file.Tree); err != nil {
			return err
		}

		if *tapFlag {
			tap(ctx, file.Path, values)
		}
	}

	if failed {
		return errFilesFailed
	}
	return nil
}

func exit(err error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(-1)
}
