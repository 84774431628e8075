package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ant-Tonmay/penguine/internal/lexer"
	"github.com/Ant-Tonmay/penguine/internal/parser"
)

// testRun parses and executes a program, returning its stdout and the
// value produced by Run. Parse errors fail the test immediately.
func testRun(t *testing.T, input string) (string, Value) {
	t.Helper()

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		var msgs []string
		for _, err := range p.Errors() {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parser errors: %s", strings.Join(msgs, "\n"))
	}

	var buf bytes.Buffer
	interp := New(&buf)
	result := interp.Run(program)

	return buf.String(), result
}

// expectOutput runs a program and checks its stdout byte for byte.
func expectOutput(t *testing.T, input, expected string) {
	t.Helper()

	output, result := testRun(t, input)
	if isError(result) {
		t.Fatalf("unexpected runtime error: %s", result.String())
	}
	if output != expected {
		t.Errorf("expected output %q, got %q", expected, output)
	}
}

// expectRuntimeError runs a program and checks that it fails with a
// message containing the given fragment.
func expectRuntimeError(t *testing.T, input, fragment string) {
	t.Helper()

	_, result := testRun(t, input)
	if !isError(result) {
		t.Fatalf("expected runtime error containing %q, got none", fragment)
	}
	if !strings.Contains(result.String(), fragment) {
		t.Errorf("expected error containing %q, got %q", fragment, result.String())
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	expectOutput(t, `{ func main() { print(10 + 2 * 3); } }`, "16")
}

func TestForLoopCounting(t *testing.T) {
	expectOutput(t,
		`{ func main() { for (i=0; i<3; i=i+1) { println(i); } } }`,
		"0\n1\n2\n")
}

func TestValuePassingIsolation(t *testing.T) {
	expectOutput(t, `{
		func f(a) { a[0] = 99; }
		func main() { arr = [1,2,3]; f(arr); println(arr[0]); }
	}`, "1\n")
}

func TestReferencePassingCoupling(t *testing.T) {
	expectOutput(t, `{
		func f(ref: a) { a[0] = 99; }
		func main() { arr = [1,2,3]; f(arr); println(arr[0]); }
	}`, "99\n")
}

func TestFixedArrayFill(t *testing.T) {
	expectOutput(t, `{
		func main() {
			a = fixed(3, 0);
			for (i=0; i<3; i=i+1) { a[i] = i*i; }
			for (i=0; i<3; i=i+1) { println(a[i]); }
		}
	}`, "0\n1\n4\n")
}

func TestStringInterpolation(t *testing.T) {
	expectOutput(t,
		`{ func main() { s = "world"; println("hello {s}"); } }`,
		"hello world\n")
}

func TestInterpolationOfExpressions(t *testing.T) {
	expectOutput(t,
		`{ func main() { x = 42; println("{x} and {x + 1}"); } }`,
		"42 and 43\n")
}

func TestInterpolationUnbalancedBrace(t *testing.T) {
	// An unbalanced '{' with no closing '}' is emitted verbatim.
	expectOutput(t,
		`{ func main() { println("open { brace"); } }`,
		"open { brace\n")
}

func TestInterpolationBadSegmentKeptVerbatim(t *testing.T) {
	expectOutput(t,
		`{ func main() { println("a {} b"); } }`,
		"a {} b\n")
}

func TestInterpolationUndefinedVariableFails(t *testing.T) {
	expectRuntimeError(t,
		`{ func main() { println("{missing}"); } }`,
		"undefined variable 'missing'")
}

func TestPrintDoesNotAppendNewline(t *testing.T) {
	expectOutput(t,
		`{ func main() { print(1); print(2); println(3); } }`,
		"123\n")
}

func TestPrintRendering(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"42", "42"},
		{"3.5", "3.5"},
		{"true", "true"},
		{"false", "false"},
		{`"text"`, "text"},
		{"[1, 2, 3]", "[Array length=3]"},
		{"f()", "null"},
	}

	for _, tt := range tests {
		input := `{ func f() { return; } func main() { print(` + tt.expr + `); } }`
		expectOutput(t, input, tt.expected)
	}
}

func TestIntegerOperators(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"7 / 2", "3"},
		{"7 % 3", "1"},
		{"2 - 5", "-3"},
		{"6 & 3", "2"},
		{"6 | 3", "7"},
		{"6 ^ 3", "5"},
		{"1 << 4", "16"},
		{"32 >> 2", "8"},
		{"3 < 4", "true"},
		{"3 >= 4", "false"},
		{"3 == 3", "true"},
		{"3 != 3", "false"},
		{"1 && 2", "true"},
		{"1 && 0", "false"},
		{"0 || 3", "true"},
		{"0 || 0", "false"},
	}

	for _, tt := range tests {
		input := `{ func main() { println(` + tt.expr + `); } }`
		expectOutput(t, input, tt.expected+"\n")
	}
}

func TestStringOperators(t *testing.T) {
	expectOutput(t,
		`{ func main() { println("foo" + "bar"); println("a" == "a"); println("a" == "b"); } }`,
		"foobar\ntrue\nfalse\n")
}

func TestBooleanOperators(t *testing.T) {
	expectOutput(t,
		`{ func main() { println(true && false); println(true || false); println(!false); } }`,
		"false\ntrue\ntrue\n")
}

func TestUnaryMinus(t *testing.T) {
	expectOutput(t,
		`{ func main() { x = 5; println(-x); println(-3.5); } }`,
		"-5\n-3.5\n")
}

func TestDivisionByZero(t *testing.T) {
	expectRuntimeError(t, `{ func main() { x = 1 / 0; } }`, "division by zero")
}

func TestModulusByZero(t *testing.T) {
	expectRuntimeError(t, `{ func main() { x = 1 % 0; } }`, "modulus by zero")
}

func TestTypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"int plus string", `{ func main() { x = 1 + "a"; } }`},
		{"string minus string", `{ func main() { x = "a" - "b"; } }`},
		{"bool plus bool", `{ func main() { x = true + false; } }`},
		{"not on int", `{ func main() { x = !1; } }`},
		{"minus on string", `{ func main() { x = -"a"; } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result := testRun(t, tt.input)
			if !isError(result) {
				t.Errorf("expected a type error for %q", tt.input)
			}
		})
	}
}

func TestImplicitDeclaration(t *testing.T) {
	// A plain = with no existing binding defines in the current scope.
	expectOutput(t, `{
		func main() {
			x = 1;
			{ x = 2; }
			println(x);
		}
	}`, "2\n")
}

func TestBlockScopeShadowing(t *testing.T) {
	// A binding made inside a block belongs to that block's scope; the
	// later plain = in the outer scope finds no binding and defines one.
	expectOutput(t, `{
		func main() {
			{ y = 1; }
			y = 5;
			println(y);
		}
	}`, "5\n")
}

func TestCompoundAssignmentRequiresBinding(t *testing.T) {
	expectRuntimeError(t, `{ func main() { x += 1; } }`, "undefined variable 'x'")
}

func TestCompoundAssignmentOnVariable(t *testing.T) {
	expectOutput(t, `{
		func main() {
			x = 10;
			x += 5; x -= 3; x *= 2; x /= 4; x %= 4;
			println(x);
		}
	}`, "2\n")
}

func TestCompoundAssignmentOnIndexTarget(t *testing.T) {
	// Compound assignment reads the indexed slot, not the whole array.
	expectOutput(t, `{
		func main() {
			a = [1, 2, 3];
			a[1] += 10;
			a[2] *= 3;
			println(a[1]);
			println(a[2]);
		}
	}`, "12\n9\n")
}

func TestAssignmentChainIsOrdered(t *testing.T) {
	expectOutput(t, `{
		func main() {
			x = 1, y = x + 1, x = y * 10;
			println(x);
			println(y);
		}
	}`, "20\n2\n")
}

func TestUndefinedVariable(t *testing.T) {
	expectRuntimeError(t, `{ func main() { println(nothing); } }`, "undefined variable 'nothing'")
}

func TestIfStatement(t *testing.T) {
	expectOutput(t, `{
		func main() {
			if (1 < 2) { println("yes"); } else { println("no"); }
			if (0) { println("zero"); } else { println("nonzero-false"); }
			if (7) { println("seven"); }
		}
	}`, "yes\nnonzero-false\nseven\n")
}

func TestElseIfChain(t *testing.T) {
	expectOutput(t, `{
		func grade(x) {
			if (x > 89) { return "A"; }
			else if (x > 79) { return "B"; }
			else { return "C"; }
		}
		func main() {
			println(grade(95));
			println(grade(85));
			println(grade(50));
		}
	}`, "A\nB\nC\n")
}

func TestWhileLoop(t *testing.T) {
	expectOutput(t, `{
		func main() {
			i = 0;
			while (i < 4) { i += 1; }
			println(i);
		}
	}`, "4\n")
}

func TestBreakExitsLoop(t *testing.T) {
	expectOutput(t, `{
		func main() {
			count = 0;
			for (i = 0; i < 10; i = i + 1) {
				if (i == 5) { break; }
				count += 1;
			}
			println(count);
		}
	}`, "5\n")
}

func TestContinueSkipsToIncrement(t *testing.T) {
	expectOutput(t, `{
		func main() {
			total = 0;
			for (i = 0; i < 5; i = i + 1) {
				if (i % 2 == 0) { continue; }
				total += i;
			}
			println(total);
		}
	}`, "4\n")
}

func TestBreakInWhile(t *testing.T) {
	expectOutput(t, `{
		func main() {
			i = 0;
			while (true) {
				i += 1;
				if (i == 3) { break; }
			}
			println(i);
		}
	}`, "3\n")
}

func TestNestedLoopBreakIsInnermost(t *testing.T) {
	expectOutput(t, `{
		func main() {
			count = 0;
			for (i = 0; i < 3; i = i + 1) {
				for (j = 0; j < 10; j = j + 1) {
					if (j == 2) { break; }
					count += 1;
				}
			}
			println(count);
		}
	}`, "6\n")
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	expectRuntimeError(t, `{ func main() { break; } }`, "'break' outside of a loop")
}

func TestContinueOutsideLoopIsError(t *testing.T) {
	expectRuntimeError(t, `{ func main() { continue; } }`, "'continue' outside of a loop")
}

func TestReturnUnwindsNestedLoops(t *testing.T) {
	expectOutput(t, `{
		func find(limit) {
			for (i = 0; i < limit; i = i + 1) {
				while (true) {
					return i + 100;
				}
			}
			return -1;
		}
		func main() { println(find(5)); }
	}`, "100\n")
}

func TestFunctionWithoutReturnYieldsNull(t *testing.T) {
	expectOutput(t, `{
		func noop() { x = 1; }
		func main() { println(noop()); }
	}`, "null\n")
}

func TestRecursion(t *testing.T) {
	expectOutput(t, `{
		func fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		func main() { println(fib(10)); }
	}`, "55\n")
}

func TestFunctionsAreUnrootedFromGlobals(t *testing.T) {
	// A function body resolves names against a fresh environment parented
	// to the globals, not the caller's scope.
	expectRuntimeError(t, `{
		func g() { return localvar; }
		func main() { localvar = 1; println(g()); }
	}`, "undefined variable 'localvar'")
}

func TestArityMismatch(t *testing.T) {
	expectRuntimeError(t,
		`{ func f(a, b) { return a; } func main() { f(1); } }`,
		"expects 2 argument(s), got 1")
}

func TestUndefinedFunction(t *testing.T) {
	expectRuntimeError(t, `{ func main() { ghost(); } }`, "undefined function: ghost")
}

func TestComputedCalleeIsError(t *testing.T) {
	expectRuntimeError(t, `{ func main() { (1 + 2)(); } }`, "cannot call expression")
}

func TestMemberCallIsFirstArgumentSugar(t *testing.T) {
	expectOutput(t, `{
		func double(x) { return x * 2; }
		func main() { n = 21; println(n.double()); }
	}`, "42\n")
}

func TestMemberCallOnArray(t *testing.T) {
	expectOutput(t, `{
		func main() {
			arr = [1, 2];
			arr.push(3);
			println(arr[2]);
		}
	}`, "3\n")
}

func TestNoMainFunction(t *testing.T) {
	expectRuntimeError(t, `{ func helper() { } }`, "no 'main' function found")
}

func TestIndexErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fragment string
	}{
		{"non-array base", `{ func main() { x = 1; y = x[0]; } }`, "expects an array"},
		{"non-integer index", `{ func main() { a = [1]; y = a[true]; } }`, "index must be an integer"},
		{"out of bounds read", `{ func main() { a = [1]; y = a[1]; } }`, "index out of bounds"},
		{"negative index", `{ func main() { a = [1]; y = a[-1]; } }`, "index out of bounds"},
		{"out of bounds write", `{ func main() { a = [1]; a[5] = 0; } }`, "index out of bounds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectRuntimeError(t, tt.input, tt.fragment)
		})
	}
}

func TestArrayAliasing(t *testing.T) {
	// Assigning an array to a second variable shares the handle.
	expectOutput(t, `{
		func main() {
			a = [1, 2];
			b = a;
			b[0] = 99;
			println(a[0]);
		}
	}`, "99\n")
}

func TestPushSemantics(t *testing.T) {
	expectOutput(t, `{
		func main() {
			a = [];
			for (i = 0; i < 6; i = i + 1) { push(a, i * 10); }
			println(a[0]);
			println(a[5]);
		}
	}`, "0\n50\n")
}

func TestPushCopiesValue(t *testing.T) {
	// push deep-copies the value, so later mutation of the source does
	// not affect the stored element.
	expectOutput(t, `{
		func main() {
			inner = [1, 2];
			outer = [0];
			push(outer, inner);
			inner[0] = 99;
			row = outer[1];
			println(row[0]);
		}
	}`, "1\n")
}

func TestPushOnFixedArrayIsError(t *testing.T) {
	expectRuntimeError(t,
		`{ func main() { a = fixed(2, 0); push(a, 1); } }`,
		"cannot push to a fixed array")
}

func TestPushArityAndType(t *testing.T) {
	expectRuntimeError(t, `{ func main() { push(1, 2); } }`, "must be an array")
	expectRuntimeError(t, `{ func main() { a = []; push(a); } }`, "expects 2 arguments")
}

func TestFixedErrors(t *testing.T) {
	expectRuntimeError(t, `{ func main() { a = fixed(-1); } }`, "cannot be negative")
	expectRuntimeError(t, `{ func main() { a = fixed(true); } }`, "must be an integer")
	expectRuntimeError(t, `{ func main() { a = fixed(); } }`, "expects 1 or 2 arguments")
}

func TestFixedDefaultInitIsNull(t *testing.T) {
	expectOutput(t, `{
		func main() {
			a = fixed(2);
			println(a[0]);
		}
	}`, "null\n")
}

func TestFixedInitIsDeepCopiedPerSlot(t *testing.T) {
	// Each slot gets an independent copy of the initializer.
	expectOutput(t, `{
		func main() {
			m = fixed(2, [fixed(2, 0)]);
			row = m[0];
			row[0] = 7;
			other = m[1];
			println(other[0]);
		}
	}`, "0\n")
}

func TestSingleElementArrayAutoUnwrap(t *testing.T) {
	// A single-element array literal whose element is an array yields the
	// inner handle, losing one dimension.
	expectOutput(t, `{
		func main() {
			a = [fixed(5, 0)];
			println(a[0]);
		}
	}`, "0\n")
}

func TestPrintBuiltinAsExpression(t *testing.T) {
	// print/println also exist as builtins callable in expression
	// position; they return null.
	expectOutput(t,
		`{ func main() { x = println("side", " effect"); println(x); } }`,
		"side effect\nnull\n")
}

func TestDecimalLiterals(t *testing.T) {
	expectOutput(t, `{ func main() { println(2.5); println(0.125); } }`, "2.5\n0.125\n")
}

func TestMemberAccessOutsideCallIsError(t *testing.T) {
	expectRuntimeError(t, `{ func main() { a = [1]; x = a.length; } }`, "member")
}
