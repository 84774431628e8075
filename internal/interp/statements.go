package interp

import (
	"fmt"

	"github.com/Ant-Tonmay/penguine/internal/ast"
	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

// executeStatement dispatches on the statement variant. It returns null
// on success or an ErrorValue; non-local control flow (break, continue,
// return) is communicated through the interpreter's signal flags.
func (i *Interpreter) executeStatement(stmt ast.Statement, env *Environment) Value {
	switch stmt := stmt.(type) {
	case *ast.ExpressionStatement:
		val := i.evalExpression(stmt.Expression, env)
		if isError(val) {
			return val
		}
		return &NullValue{}

	case *ast.BlockStatement:
		return i.executeBlock(stmt, env)

	case *ast.PrintStatement:
		return i.execPrint(stmt.Value, env, false)

	case *ast.PrintlnStatement:
		return i.execPrint(stmt.Value, env, true)

	case *ast.AssignmentStatement:
		return i.execAssignmentStatement(stmt, env)

	case *ast.IfStatement:
		return i.execIfStatement(stmt, env)

	case *ast.ForStatement:
		return i.execForStatement(stmt, env)

	case *ast.WhileStatement:
		return i.execWhileStatement(stmt, env)

	case *ast.ReturnStatement:
		return i.execReturnStatement(stmt, env)

	case *ast.BreakStatement:
		i.breakSignal = true
		return &NullValue{}

	case *ast.ContinueStatement:
		i.continueSignal = true
		return &NullValue{}

	default:
		return newError("unknown statement type: %T", stmt)
	}
}

// executeBlock opens a fresh child scope and executes the block's
// statements sequentially, stopping early on errors and on any pending
// control-flow signal so it can unwind to the construct that consumes it.
func (i *Interpreter) executeBlock(block *ast.BlockStatement, env *Environment) Value {
	blockEnv := NewEnclosedEnvironment(env)

	for _, stmt := range block.Statements {
		result := i.executeStatement(stmt, blockEnv)
		if isError(result) {
			return result
		}
		if i.breakSignal || i.continueSignal || i.returnSignal {
			break
		}
	}

	return &NullValue{}
}

// execPrint evaluates the expression and writes its rendering. String
// values go through interpolation in the current environment; println
// appends a newline, print does not.
func (i *Interpreter) execPrint(expr ast.Expression, env *Environment, newline bool) Value {
	val := i.evalExpression(expr, env)
	if isError(val) {
		return val
	}

	rendered, errVal := i.renderForPrint(val, env)
	if errVal != nil {
		return errVal
	}

	if i.output != nil {
		fmt.Fprint(i.output, rendered)
		if newline {
			fmt.Fprintln(i.output)
		}
	}

	return &NullValue{}
}

// compoundOps maps each compound assignment operator to the binary
// operator it applies.
var compoundOps = map[lexer.TokenType]string{
	lexer.PLUS_ASSIGN:    "+",
	lexer.MINUS_ASSIGN:   "-",
	lexer.TIMES_ASSIGN:   "*",
	lexer.DIVIDE_ASSIGN:  "/",
	lexer.PERCENT_ASSIGN: "%",
	lexer.AMP_ASSIGN:     "&",
	lexer.PIPE_ASSIGN:    "|",
	lexer.CARET_ASSIGN:   "^",
}

// execAssignmentStatement executes each assignment of the chain in order.
//
// A plain `=` to a variable updates the nearest enclosing binding, or
// defines the name in the current scope when no binding exists anywhere
// (implicit declaration). Compound operators never create bindings: a
// missing binding is a hard error. Index targets are bounds-checked and
// written in place; compound assignment on an index target reads the
// current slot, applies the operator, and writes the result back.
func (i *Interpreter) execAssignmentStatement(stmt *ast.AssignmentStatement, env *Environment) Value {
	for _, assignment := range stmt.Assignments {
		val := i.evalExpression(assignment.Value, env)
		if isError(val) {
			return val
		}

		switch target := assignment.Target.(type) {
		case *ast.Identifier:
			if assignment.Operator == lexer.EQ {
				if err := env.Set(target.Value, val); err != nil {
					env.Define(target.Value, val)
				}
				continue
			}

			op, ok := compoundOps[assignment.Operator]
			if !ok {
				return newError("unknown assignment operator: %s", assignment.OpToken.Literal)
			}
			current, found := env.Get(target.Value)
			if !found {
				return newError("undefined variable '%s'", target.Value)
			}
			combined := evalBinaryOp(current, op, val)
			if isError(combined) {
				return combined
			}
			if err := env.Set(target.Value, combined); err != nil {
				return newError("%s", err.Error())
			}

		case *ast.IndexExpression:
			base := i.evalExpression(target.Array, env)
			if isError(base) {
				return base
			}
			index := i.evalExpression(target.Index, env)
			if isError(index) {
				return index
			}

			arr, ok := base.(*ArrayValue)
			if !ok {
				return newError("index assignment expects an array, got %s", base.Type())
			}
			idx, ok := index.(*IntegerValue)
			if !ok {
				return newError("index must be an integer, got %s", index.Type())
			}
			n := int(idx.Value)
			if n < 0 || n >= arr.Length {
				return newError("index out of bounds: %d (array length %d)", n, arr.Length)
			}

			if assignment.Operator == lexer.EQ {
				arr.Elements[n] = val
				continue
			}

			op, ok := compoundOps[assignment.Operator]
			if !ok {
				return newError("unknown assignment operator: %s", assignment.OpToken.Literal)
			}
			combined := evalBinaryOp(arr.Elements[n], op, val)
			if isError(combined) {
				return combined
			}
			arr.Elements[n] = combined

		default:
			return newError("invalid assignment target: %s", assignment.Target.String())
		}
	}

	return &NullValue{}
}

// execIfStatement evaluates the condition, accepting booleans directly
// and integers by non-zeroness, and runs the matching branch. The else
// branch may be a block or another if.
func (i *Interpreter) execIfStatement(stmt *ast.IfStatement, env *Environment) Value {
	cond := i.evalExpression(stmt.Condition, env)
	if isError(cond) {
		return cond
	}

	isTrue := false
	switch c := cond.(type) {
	case *BooleanValue:
		isTrue = c.Value
	case *IntegerValue:
		isTrue = c.Value != 0
	}

	if isTrue {
		return i.executeBlock(stmt.Then, env)
	}
	if stmt.Else != nil {
		return i.executeStatement(stmt.Else, env)
	}
	return &NullValue{}
}

// isTruthy coerces a value to boolean for loop conditions: booleans as
// themselves, integers by non-zeroness, null as false, everything else
// as true.
func isTruthy(val Value) bool {
	switch v := val.(type) {
	case *BooleanValue:
		return v.Value
	case *IntegerValue:
		return v.Value != 0
	case *NullValue:
		return false
	}
	return true
}

// execForStatement runs a C-style for loop. The header gets its own
// scope so the init variable does not leak; the body opens a further
// child scope on each iteration. A missing condition is always true.
// Continue resumes at the increment; break exits the loop.
func (i *Interpreter) execForStatement(stmt *ast.ForStatement, env *Environment) Value {
	loopEnv := NewEnclosedEnvironment(env)

	if stmt.Init != nil {
		result := i.execAssignmentStatement(stmt.Init, loopEnv)
		if isError(result) {
			return result
		}
	}

	for {
		if stmt.Condition != nil {
			cond := i.evalExpression(stmt.Condition, loopEnv)
			if isError(cond) {
				return cond
			}
			if !isTruthy(cond) {
				break
			}
		}

		result := i.executeBlock(stmt.Body, loopEnv)
		if isError(result) {
			return result
		}

		if i.breakSignal {
			i.breakSignal = false
			break
		}
		if i.continueSignal {
			i.continueSignal = false
			// fall through to the increment
		}
		if i.returnSignal {
			// Not ours to consume; the function boundary handles it.
			break
		}

		if stmt.Increment != nil {
			result := i.execAssignmentStatement(stmt.Increment, loopEnv)
			if isError(result) {
				return result
			}
		}
	}

	return &NullValue{}
}

// execWhileStatement runs a while loop: the for loop without init and
// increment.
func (i *Interpreter) execWhileStatement(stmt *ast.WhileStatement, env *Environment) Value {
	for {
		cond := i.evalExpression(stmt.Condition, env)
		if isError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			break
		}

		result := i.executeBlock(stmt.Body, env)
		if isError(result) {
			return result
		}

		if i.breakSignal {
			i.breakSignal = false
			break
		}
		if i.continueSignal {
			i.continueSignal = false
			continue
		}
		if i.returnSignal {
			break
		}
	}

	return &NullValue{}
}

// execReturnStatement evaluates the optional value (default null) and
// raises the return signal, which unwinds to the enclosing function
// call boundary.
func (i *Interpreter) execReturnStatement(stmt *ast.ReturnStatement, env *Environment) Value {
	var val Value = &NullValue{}
	if stmt.Value != nil {
		val = i.evalExpression(stmt.Value, env)
		if isError(val) {
			return val
		}
	}

	i.returnSignal = true
	i.returnValue = val
	return &NullValue{}
}
