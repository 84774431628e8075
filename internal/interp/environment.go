package interp

import "fmt"

// Environment is the symbol table for variable storage and scope
// management. It supports nested scopes through the outer environment
// reference, enabling proper lexical scoping for Penguin programs.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a new root-level environment with no outer scope.
// This is used for the global scope of a program.
func NewEnvironment() *Environment {
	return &Environment{
		store: make(map[string]Value),
		outer: nil,
	}
}

// NewEnclosedEnvironment creates a new environment enclosed by the given
// outer environment. This is used for nested scopes such as function
// bodies, blocks, and loop headers.
//
// When resolving variables, the inner environment is checked first, then
// the outer environments are searched recursively up the scope chain.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: make(map[string]Value),
		outer: outer,
	}
}

// Get retrieves a variable value by name. It searches the current
// environment first, then recursively searches outer environments.
//
// Returns the value and true if found, or nil and false if the variable
// is undefined in this scope chain.
func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}

	if e.outer != nil {
		return e.outer.Get(name)
	}

	return nil, false
}

// Set updates an existing variable's value in the nearest enclosing scope
// that holds it. Returns an error if the variable is not defined anywhere
// in the chain; use Define to create a new binding in the current scope.
func (e *Environment) Set(name string, val Value) error {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return nil
	}

	if e.outer != nil {
		return e.outer.Set(name, val)
	}

	return fmt.Errorf("undefined variable '%s'", name)
}

// Define creates a new variable in the current environment's scope.
// If a variable with the same name already exists in this scope, it is
// overwritten.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// Has checks if a variable is defined in the current environment or any
// outer scope.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// GetLocal retrieves a variable value only from the current environment,
// without searching outer scopes. Useful for checking shadowing.
func (e *Environment) GetLocal(name string) (Value, bool) {
	val, ok := e.store[name]
	return val, ok
}

// Outer returns the outer (parent) environment, or nil for the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}
