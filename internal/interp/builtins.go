package interp

import (
	"fmt"
)

// Built-in functions: print, println, fixed, push.
// These are checked before user functions in callFunctionByName.

// builtinPrint prints each argument with no separator and no trailing
// newline. String arguments go through interpolation in the caller's
// environment.
func (i *Interpreter) builtinPrint(args []Value, env *Environment) Value {
	if i.output == nil {
		return &NullValue{}
	}
	for _, arg := range args {
		rendered, errVal := i.renderForPrint(arg, env)
		if errVal != nil {
			return errVal
		}
		fmt.Fprint(i.output, rendered)
	}
	return &NullValue{}
}

// builtinPrintln prints each argument like print, then emits a newline.
func (i *Interpreter) builtinPrintln(args []Value, env *Environment) Value {
	if i.output == nil {
		return &NullValue{}
	}
	for _, arg := range args {
		rendered, errVal := i.renderForPrint(arg, env)
		if errVal != nil {
			return errVal
		}
		fmt.Fprint(i.output, rendered)
	}
	fmt.Fprintln(i.output)
	return &NullValue{}
}

// builtinFixed implements fixed(size[, init]): allocate a fixed array of
// the given length with every slot initialized to a deep copy of init
// (null by default). A one-element array init is replaced by its sole
// element before copying. fixed(n, [fixed(m)]) with m > 1 builds an
// n-by-m matrix, because the array literal already yields the inner array.
func (i *Interpreter) builtinFixed(args []Value) Value {
	if len(args) < 1 || len(args) > 2 {
		return newError("fixed(size, init?) expects 1 or 2 arguments, got %d", len(args))
	}

	size, ok := args[0].(*IntegerValue)
	if !ok {
		return newError("fixed() size must be an integer, got %s", args[0].Type())
	}
	if size.Value < 0 {
		return newError("fixed() size cannot be negative")
	}

	var init Value = &NullValue{}
	if len(args) == 2 {
		init = args[1]
		if arr, ok := init.(*ArrayValue); ok && arr.Length == 1 {
			init = arr.Elements[0]
		}
	}

	return newFixedArray(int(size.Value), init)
}

// builtinPush implements push(arr, value): append a deep copy of value
// to a dynamic array, doubling the capacity when full (initial capacity
// 4). Fixed arrays reject push.
func (i *Interpreter) builtinPush(args []Value) Value {
	if len(args) != 2 {
		return newError("push(array, value) expects 2 arguments, got %d", len(args))
	}

	arr, ok := args[0].(*ArrayValue)
	if !ok {
		return newError("first argument to push must be an array, got %s", args[0].Type())
	}
	if arr.Fixed {
		return newError("cannot push to a fixed array")
	}

	if arr.Length == arr.Capacity() {
		newCap := arr.Capacity() * 2
		if newCap == 0 {
			newCap = 4
		}
		grown := make([]Value, newCap)
		copy(grown, arr.Elements[:arr.Length])
		arr.Elements = grown
	}

	arr.Elements[arr.Length] = deepCopy(args[1])
	arr.Length++

	return &NullValue{}
}
