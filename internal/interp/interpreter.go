// Package interp implements the Penguin tree-walking interpreter: the
// runtime value model, the scoped environment chain, the expression
// evaluator, and the statement executor.
package interp

import (
	"io"

	"github.com/Ant-Tonmay/penguine/internal/ast"
)

// Interpreter executes a parsed Penguin program against a scoped
// environment. Program output (print/println) goes to the injected
// writer, never directly to stdout, so callers and tests control it.
type Interpreter struct {
	output    io.Writer
	globals   *Environment
	functions map[string]*ast.FunctionDecl

	// These flags signal non-local control flow (break, continue, return)
	// and are checked after each statement. They propagate up through the
	// walker until consumed by the appropriate construct: loops for
	// break/continue, the function call boundary for return.
	breakSignal    bool
	continueSignal bool
	returnSignal   bool
	returnValue    Value
}

// New creates a new Interpreter with a fresh global environment.
// The output writer is where print and println will write.
func New(output io.Writer) *Interpreter {
	return &Interpreter{
		output:    output,
		globals:   NewEnvironment(),
		functions: make(map[string]*ast.FunctionDecl),
	}
}

// Run loads all function definitions from the program and then invokes
// main with no arguments. The returned value is main's result, or an
// ErrorValue if execution failed.
func (i *Interpreter) Run(program *ast.Program) Value {
	for _, fn := range program.Functions {
		i.functions[fn.Name] = fn
	}

	if _, ok := i.functions["main"]; !ok {
		return newError("no 'main' function found")
	}

	return i.callFunctionByName("main", nil, i.globals)
}

// callFunctionByName dispatches a call: built-ins first, then
// user-defined functions. The caller's environment is needed so that
// the print built-ins can resolve interpolation in the calling scope.
func (i *Interpreter) callFunctionByName(name string, args []Value, env *Environment) Value {
	switch name {
	case "print":
		return i.builtinPrint(args, env)
	case "println":
		return i.builtinPrintln(args, env)
	case "fixed":
		return i.builtinFixed(args)
	case "push":
		return i.builtinPush(args)
	}

	if fn, ok := i.functions[name]; ok {
		return i.callUserFunction(fn, args)
	}

	return newError("undefined function: %s", name)
}

// callUserFunction invokes a user-defined function. Arity must match
// exactly. Reference parameters bind the caller's value (sharing array
// handles); value parameters bind a deep copy. The body executes in a
// fresh environment parented to the globals - functions do not close
// over their definition site.
func (i *Interpreter) callUserFunction(fn *ast.FunctionDecl, args []Value) Value {
	if len(args) != len(fn.Params) {
		return newError("function %s expects %d argument(s), got %d",
			fn.Name, len(fn.Params), len(args))
	}

	fnEnv := NewEnclosedEnvironment(i.globals)
	for idx, param := range fn.Params {
		if param.IsRef {
			fnEnv.Define(param.Name, args[idx])
		} else {
			fnEnv.Define(param.Name, deepCopy(args[idx]))
		}
	}

	result := i.executeBlock(fn.Body, fnEnv)
	if isError(result) {
		return result
	}

	var retVal Value = &NullValue{}
	if i.returnSignal {
		i.returnSignal = false
		retVal = i.returnValue
		i.returnValue = nil
	}

	// A break or continue that reached the function boundary escaped its
	// loop - that is a runtime error, not a signal to keep propagating.
	if i.breakSignal {
		i.breakSignal = false
		return newError("'break' outside of a loop")
	}
	if i.continueSignal {
		i.continueSignal = false
		return newError("'continue' outside of a loop")
	}

	return retVal
}
