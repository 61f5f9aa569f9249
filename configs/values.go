package configs

import (
	"cmp"
	"fmt"

	"github.com/reusee/peopl/cmds"
	"github.com/reusee/peopl/syntax"
)

type MaxDepth int

type Parallelism int

type OutputFormat string

const (
	FormatSexpr OutputFormat = "sexpr"
	FormatYAML  OutputFormat = "yaml"
	FormatJSON  OutputFormat = "json"
	FormatTOML  OutputFormat = "toml"
)

func (f OutputFormat) Valid() bool {
	switch f {
	case FormatSexpr, FormatYAML, FormatJSON, FormatTOML:
		return true
	}
	return false
}

const defaultParallelism = 4

var (
	maxDepthFlag    = cmds.Var[int]("-max-depth")
	parallelismFlag = cmds.Var[int]("-parallelism")
	formatFlag      OutputFormat
)

func init() {
	cmds.Define("-format", cmds.Func(func(name string) error {
		format := OutputFormat(name)
		if !format.Valid() {
			return fmt.Errorf("unknown output format %q", name)
		}
		formatFlag = format
		return nil
	}).Desc("output format: sexpr, yaml, json or toml"))
}

// flags win over config files, which win over defaults

func (Module) MaxDepth(
	loader Loader,
) MaxDepth {
	return MaxDepth(cmp.Or(
		max(*maxDepthFlag, 0),
		First[int](loader, "max_depth"),
		syntax.DefaultMaxDepth,
	))
}

func (Module) Parallelism(
	loader Loader,
) Parallelism {
	return Parallelism(cmp.Or(
		max(*parallelismFlag, 0),
		First[int](loader, "parallelism"),
		defaultParallelism,
	))
}

func (Module) OutputFormat(
	loader Loader,
) OutputFormat {
	// the schema restricts the config value to known formats
	return cmp.Or(
		formatFlag,
		OutputFormat(First[string](loader, "format")),
		FormatSexpr,
	)
}
