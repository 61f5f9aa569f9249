package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	expected := strings.Join([]string{
		"--help, -h, -help, help\tprint this usage",
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}
