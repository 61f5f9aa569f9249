package parses

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/reusee/peopl/configs"
	"github.com/reusee/peopl/logs"
	"github.com/reusee/peopl/syncs"
	"github.com/reusee/peopl/syntax"
)

// StdinName selects standard input in place of a file path.
const StdinName = "-"

type File struct {
	Path   string
	Source string
	Tree   syntax.Expression
	Err    error
}

// ParseFiles reads and parses paths concurrently. Results keep the order of
// paths; per-file failures are reported in File.Err. The returned error is
// only set when ctx ends before all files are done.
type ParseFiles func(ctx context.Context, paths []string) ([]File, error)

// Stdin is the reader used for StdinName.
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) ParseFiles(
	parse Parse,
	parallelism configs.Parallelism,
	logger logs.Logger,
	newSpan logs.NewSpan,
	stdin Stdin,
) ParseFiles {
	return func(ctx context.Context, paths []string) ([]File, error) {
		ctx, _ = newSpan(ctx, "parse files",
			"files", len(paths),
			"parallelism", int(parallelism),
		)

		sem := syncs.NewSemaphore(int(parallelism))
		ret := make([]File, len(paths))
		var wg sync.WaitGroup
		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				wg.Wait()
				return nil, err
			}
			wg.Go(func() {
				defer sem.Release()
				ret[i] = parseFile(ctx, parse, stdin, path)
			})
		}
		wg.Wait()
		if err := context.Cause(ctx); err != nil {
			return nil, err
		}

		failed := 0
		for _, file := range ret {
			if file.Err != nil {
				failed++
			}
		}
		logger.InfoContext(ctx, "files parsed",
			"ok", len(ret)-failed,
			"failed", failed,
		)
		return ret, nil
	}
}

func parseFile(ctx context.Context, parse Parse, stdin Stdin, path string) File {
	file := File{
		Path: path,
	}
	var content []byte
	var err error
	if path == StdinName {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		file.Err = logs.WrapSpan(ctx, err)
		return file
	}
	file.Source = string(content)
	file.Tree, file.Err = parse(ctx, path, file.Source)
	return file
}
