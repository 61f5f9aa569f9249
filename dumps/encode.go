package dumps

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/reusee/peopl/configs"
	"github.com/reusee/peopl/syntax"
	"go.yaml.in/yaml/v3"
)

func YAML(w io.Writer, expr syntax.Expression) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(Tree(expr)); err != nil {
		return err
	}
	return encoder.Close()
}

func JSON(w io.Writer, expr syntax.Expression) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(Tree(expr))
}

func TOML(w io.Writer, expr syntax.Expression) error {
	encoder := toml.NewEncoder(w)
	encoder.SetIndentTables(true)
	return encoder.Encode(tomlNode(Tree(expr)))
}

// tomlNode copies node with integers beyond int64 written as decimal strings,
// the only form TOML can hold them in.
func tomlNode(node *Node) *Node {
	ret := *node
	if v, ok := ret.Value.(uint64); ok && v > math.MaxInt64 {
		ret.Value = strconv.FormatUint(v, 10)
	}
	ret.Children = make([]*Node, len(node.Children))
	for i, child := range node.Children {
		ret.Children[i] = tomlNode(child)
	}
	return &ret
}

func Sexpr(w io.Writer, expr syntax.Expression) error {
	_, err := io.WriteString(w, syntax.Format(expr)+"\n")
	return err
}

// Encode writes expr in the given output format.
func Encode(w io.Writer, format configs.OutputFormat, expr syntax.Expression) error {
	switch format {
	case configs.FormatSexpr:
		return Sexpr(w, expr)
	case configs.FormatYAML:
		return YAML(w, expr)
	case configs.FormatJSON:
		return JSON(w, expr)
	case configs.FormatTOML:
		return TOML(w, expr)
	}
	return fmt.Errorf("unknown output format %q", format)
}
