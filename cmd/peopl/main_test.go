package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/peopl/configs"
	"github.com/reusee/peopl/debugs"
	"github.com/reusee/peopl/logs"
	"github.com/reusee/peopl/modes"
	"github.com/reusee/peopl/parses"
)

func runWith(t *testing.T, args []string, format configs.OutputFormat) (string, string, error) {
	paths = args
	defer func() {
		paths = nil
	}()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	var err error
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, configs.Schema)),
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		parseFiles parses.ParseFiles,
		eval debugs.Eval,
		tap debugs.Tap,
	) {
		err = run(t.Context(), out, errOut, parseFiles, format, eval, tap)
	})
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	out, _, err := runWith(t, []string{"testdata/ok.ppl"}, configs.FormatSexpr)
	if err != nil {
		t.Fatal(err)
	}
	if out != "(list file (: a 1) (: b (list bracket 2 3)))\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRunMultipleFiles(t *testing.T) {
	out, errOut, err := runWith(t, []string{"testdata/ok.ppl", "testdata/bad.ppl"}, configs.FormatSexpr)
	if !errors.Is(err, errFilesFailed) {
		t.Fatalf("got %v", err)
	}
	if !strings.HasPrefix(out, "testdata/ok.ppl:\n(list file") {
		t.Fatalf("got %q", out)
	}
	if strings.Contains(out, "bad.ppl") {
		t.Fatalf("got %q", out)
	}
	if !strings.HasPrefix(errOut, "parse testdata/bad.ppl: mismatched closer at 1:6") {
		t.Fatalf("got %q", errOut)
	}
	if strings.Count(errOut, "\n") != 1 {
		t.Fatalf("got %q", errOut)
	}
}

func TestRunEval(t *testing.T) {
	*evalFlag = "[c.name for c in tree.children]"
	defer func() {
		*evalFlag = ""
	}()
	out, _, err := runWith(t, []string{"testdata/ok.ppl"}, configs.FormatSexpr)
	if err != nil {
		t.Fatal(err)
	}
	if out != `["a", "b"]`+"\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRunJSON(t *testing.T) {
	out, _, err := runWith(t, []string{"testdata/ok.ppl"}, configs.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "{\n  \"kind\": \"list\"") {
		t.Fatalf("got %q", out)
	}
}
