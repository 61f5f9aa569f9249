package cmds

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"strings"
)

type Executor struct {
	commands map[string]*Command
	fallback func(arg string) error
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() error {
		ret.PrintUsage()
		return ErrUsagePrinted
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, alias := range command.Aliases {
		if _, ok := p.commands[alias]; ok {
			panic(fmt.Errorf("duplicated command %s", alias))
		}
		p.commands[alias] = command
	}
}

// Fallback sets the handler for arguments that name no command, such as
// input file paths. Without one those arguments are errors.
func (p *Executor) Fallback(fn func(arg string) error) {
	p.fallback = fn
}

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			if p.fallback == nil {
				return fmt.Errorf("unknown command: %s", name)
			}
			if err := p.fallback(name); err != nil {
				return err
			}
			continue
		}

		if command.Func.IsValid() {
			var err error
			args, err = call(name, command.Func, args)
			if err != nil {
				return err
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// call invokes fn with values decoded from the head of args and returns the
// remaining arguments.
func call(name string, fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := getArg(fnType.In(i), args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := fn.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			// optional, zero value
			return reflect.New(t.Elem()), nil
		}
		elem, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument of type %v, got nothing", t)
	}
	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(strToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 0, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 0, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}

func strToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "1", "on":
		return true
	}
	return false
}
