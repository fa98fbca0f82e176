package cmds

// Var defines name to set the returned value, and name+"." to reset it.
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

// Opt is like Var but the result stays nil until the command is given.
func Opt[T any](name string) **T {
	var value *T
	Define(name, Func(func(v T) {
		value = &v
	}))
	return &value
}

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

func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
