package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/peopl/dumps"
	"github.com/reusee/peopl/syntax"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// ToStarlark converts Go values for use as REPL globals. Expressions become
// structs with the fields of dumps.Node.
func ToStarlark(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case syntax.Expression:
		return nodeValue(dumps.Tree(v))
	case *dumps.Node:
		return nodeValue(v)
	case []byte:
		return starlark.Bytes(v)
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = ToStarlark(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			if err := d.SetKey(
				ToStarlark(iter.Key().Interface()),
				ToStarlark(iter.Value().Interface()),
			); err != nil {
				panic(err)
			}
		}
		return d

	case reflect.Struct:
		fields := make(starlark.StringDict)
		typ := value.Type()
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			fields[field.Name] = ToStarlark(value.Field(i).Interface())
		}
		return starlarkstruct.FromStringDict(starlarkstruct.Default, fields)

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return ToStarlark(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

var nodeConstructor = starlark.String("node")

func nodeValue(node *dumps.Node) starlark.Value {
	children := make([]starlark.Value, len(node.Children))
	for i, child := range node.Children {
		children[i] = nodeValue(child)
	}
	return starlarkstruct.FromStringDict(nodeConstructor, starlark.StringDict{
		"kind":      starlark.String(node.Kind),
		"span":      starlark.String(node.Span),
		"op":        starlark.String(node.Op),
		"container": starlark.String(node.Container),
		"name":      starlark.String(node.Name),
		"value":     ToStarlark(node.Value),
		"children":  starlark.NewList(children),
	})
}
