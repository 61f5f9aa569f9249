package cmds

// GlobalExecutor holds the commands packages register at init time.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Fallback(fn func(arg string) error) {
	GlobalExecutor.Fallback(fn)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}

// Var defines name to set the returned value from the next argument, and
// name followed by a dot to reset it to zero.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))
	return &value
}

// Switch defines name to set the flag and !name to clear it.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines name to append the next argument to the returned slice.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
