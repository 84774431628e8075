package interp

import (
	"strconv"
	"strings"

	"github.com/Ant-Tonmay/penguine/internal/ast"
)

// evalExpression dispatches on the expression variant and returns the
// resulting value, or an ErrorValue.
func (i *Interpreter) evalExpression(expr ast.Expression, env *Environment) Value {
	switch expr := expr.(type) {
	case *ast.NumberLiteral:
		return evalNumberLiteral(expr)

	case *ast.StringLiteral:
		return &StringValue{Value: expr.Value}

	case *ast.BooleanLiteral:
		return &BooleanValue{Value: expr.Value}

	case *ast.Identifier:
		if val, ok := env.Get(expr.Value); ok {
			return val
		}
		return newError("undefined variable '%s'", expr.Value)

	case *ast.ArrayLiteral:
		return i.evalArrayLiteral(expr, env)

	case *ast.IndexExpression:
		return i.evalIndexExpression(expr, env)

	case *ast.CallExpression:
		return i.evalCallExpression(expr, env)

	case *ast.MemberExpression:
		return newError("member '%s' is not callable outside a call expression", expr.Name)

	case *ast.BinaryExpression:
		left := i.evalExpression(expr.Left, env)
		if isError(left) {
			return left
		}
		right := i.evalExpression(expr.Right, env)
		if isError(right) {
			return right
		}
		return evalBinaryOp(left, expr.Operator, right)

	case *ast.UnaryExpression:
		return i.evalUnaryExpression(expr, env)

	default:
		return newError("unknown expression type: %T", expr)
	}
}

// evalNumberLiteral yields a decimal when the textual form contains a
// dot, an integer otherwise.
func evalNumberLiteral(expr *ast.NumberLiteral) Value {
	if strings.Contains(expr.Value, ".") {
		f, err := strconv.ParseFloat(expr.Value, 64)
		if err != nil {
			return newError("invalid number literal: %s", expr.Value)
		}
		return &FloatValue{Value: f}
	}

	n, err := strconv.ParseInt(expr.Value, 10, 64)
	if err != nil {
		return newError("invalid number literal: %s", expr.Value)
	}
	return &IntegerValue{Value: n}
}

// evalArrayLiteral evaluates elements in order and allocates a new array
// of exact length and capacity. A single-element literal whose sole
// element is already an array yields that handle unchanged (auto-unwrap),
// so that fixed(n, [fixed(m)]) builds two-dimensional arrays.
func (i *Interpreter) evalArrayLiteral(expr *ast.ArrayLiteral, env *Environment) Value {
	elements := make([]Value, 0, len(expr.Elements))
	for _, el := range expr.Elements {
		val := i.evalExpression(el, env)
		if isError(val) {
			return val
		}
		elements = append(elements, val)
	}

	if len(elements) == 1 {
		if arr, ok := elements[0].(*ArrayValue); ok {
			return arr
		}
	}

	return newDynamicArray(elements)
}

// evalIndexExpression evaluates arr[idx] with bounds checking.
func (i *Interpreter) evalIndexExpression(expr *ast.IndexExpression, env *Environment) Value {
	base := i.evalExpression(expr.Array, env)
	if isError(base) {
		return base
	}
	index := i.evalExpression(expr.Index, env)
	if isError(index) {
		return index
	}

	arr, ok := base.(*ArrayValue)
	if !ok {
		return newError("index operation expects an array, got %s", base.Type())
	}
	idx, ok := index.(*IntegerValue)
	if !ok {
		return newError("index must be an integer, got %s", index.Type())
	}

	n := int(idx.Value)
	if n < 0 || n >= arr.Length {
		return newError("index out of bounds: %d (array length %d)", n, arr.Length)
	}

	return arr.Elements[n]
}

// evalCallExpression resolves the callee and dispatches the call.
// A member callee obj.name(args) is sugar for name(obj, args). Any
// callee shape other than a plain variable or member access is a
// runtime error.
func (i *Interpreter) evalCallExpression(expr *ast.CallExpression, env *Environment) Value {
	var name string
	var args []Value

	switch callee := expr.Callee.(type) {
	case *ast.MemberExpression:
		name = callee.Name
		obj := i.evalExpression(callee.Object, env)
		if isError(obj) {
			return obj
		}
		args = append(args, obj)
	case *ast.Identifier:
		name = callee.Value
	default:
		return newError("cannot call expression %s", expr.Callee.String())
	}

	for _, arg := range expr.Arguments {
		val := i.evalExpression(arg, env)
		if isError(val) {
			return val
		}
		args = append(args, val)
	}

	return i.callFunctionByName(name, args, env)
}

// evalUnaryExpression evaluates ! on booleans and - on numbers.
func (i *Interpreter) evalUnaryExpression(expr *ast.UnaryExpression, env *Environment) Value {
	val := i.evalExpression(expr.Right, env)
	if isError(val) {
		return val
	}

	switch expr.Operator {
	case "!":
		b, ok := val.(*BooleanValue)
		if !ok {
			return newError("operator ! expects a boolean, got %s", val.Type())
		}
		return &BooleanValue{Value: !b.Value}

	case "-":
		switch v := val.(type) {
		case *IntegerValue:
			return &IntegerValue{Value: -v.Value}
		case *FloatValue:
			return &FloatValue{Value: -v.Value}
		}
		return newError("operator - expects a number, got %s", val.Type())
	}

	return newError("unknown unary operator: %s", expr.Operator)
}

// evalBinaryOp applies a binary operator. Semantics are defined per
// operand type pair: the full operator set for two integers, + and ==
// for two strings, and the logical/equality set for two booleans. Any
// other combination is a type error. Integer division and modulus by
// zero raise uniformly.
func evalBinaryOp(left Value, op string, right Value) Value {
	if l, ok := left.(*IntegerValue); ok {
		if r, ok := right.(*IntegerValue); ok {
			return evalIntegerBinaryOp(l.Value, op, r.Value)
		}
	}

	if l, ok := left.(*StringValue); ok {
		if r, ok := right.(*StringValue); ok {
			switch op {
			case "+":
				return &StringValue{Value: l.Value + r.Value}
			case "==":
				return &BooleanValue{Value: l.Value == r.Value}
			}
			return newError("operator %s is not defined for strings", op)
		}
	}

	if l, ok := left.(*BooleanValue); ok {
		if r, ok := right.(*BooleanValue); ok {
			switch op {
			case "&&":
				return &BooleanValue{Value: l.Value && r.Value}
			case "||":
				return &BooleanValue{Value: l.Value || r.Value}
			case "==":
				return &BooleanValue{Value: l.Value == r.Value}
			case "!=":
				return &BooleanValue{Value: l.Value != r.Value}
			}
			return newError("operator %s is not defined for booleans", op)
		}
	}

	return newError("operator %s is not defined for %s and %s",
		op, left.Type(), right.Type())
}

// evalIntegerBinaryOp applies a binary operator to two integers.
func evalIntegerBinaryOp(l int64, op string, r int64) Value {
	switch op {
	case "+":
		return &IntegerValue{Value: l + r}
	case "-":
		return &IntegerValue{Value: l - r}
	case "*":
		return &IntegerValue{Value: l * r}
	case "/":
		if r == 0 {
			return newError("division by zero")
		}
		return &IntegerValue{Value: l / r}
	case "%":
		if r == 0 {
			return newError("modulus by zero")
		}
		return &IntegerValue{Value: l % r}
	case "<":
		return &BooleanValue{Value: l < r}
	case ">":
		return &BooleanValue{Value: l > r}
	case "<=":
		return &BooleanValue{Value: l <= r}
	case ">=":
		return &BooleanValue{Value: l >= r}
	case "==":
		return &BooleanValue{Value: l == r}
	case "!=":
		return &BooleanValue{Value: l != r}
	case "&":
		return &IntegerValue{Value: l & r}
	case "|":
		return &IntegerValue{Value: l | r}
	case "^":
		return &IntegerValue{Value: l ^ r}
	case "<<":
		return &IntegerValue{Value: l << uint64(r)}
	case ">>":
		return &IntegerValue{Value: l >> uint64(r)}
	case "&&":
		return &BooleanValue{Value: l != 0 && r != 0}
	case "||":
		return &BooleanValue{Value: l != 0 || r != 0}
	}
	return newError("operator %s is not defined for integers", op)
}
