package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ant-Tonmay/penguine/internal/errors"
	"github.com/Ant-Tonmay/penguine/internal/interp"
	"github.com/Ant-Tonmay/penguine/internal/lexer"
	"github.com/Ant-Tonmay/penguine/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Penguin file or inline source",
	Long: `Execute a Penguin program from a file or inline source.

Examples:
  # Run a script file
  penguin run script.pg

  # Evaluate inline source
  penguin run -e "{ func main() { println(1 + 2); } }"

  # Run with AST dump (for debugging)
  penguin run --dump-ast script.pg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	return executeSource(input, filename, os.Stdout)
}

// readInput resolves the source text for run/lex/parse: the --eval flag
// when set, the named file otherwise.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open file %s\n", filename)
			return "", "", fmt.Errorf("could not open file %s", filename)
		}
		return string(content), filename, nil
	}
	fmt.Fprintln(os.Stderr, "Error: either provide a file path or use -e flag for inline source")
	return "", "", fmt.Errorf("no input")
}

// runFile reads and executes a script file, writing program output to out.
func runFile(filename string, out io.Writer) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open file %s\n", filename)
		return fmt.Errorf("could not open file %s", filename)
	}
	return executeSource(string(content), filename, out)
}

// executeSource drives the full pipeline: lex, parse, execute. Lexical
// and parse diagnostics are printed with source context; runtime errors
// surface as a single `Runtime error:` line on stderr. Program output
// goes to out.
func executeSource(input, filename string, out io.Writer) error {
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if compilerErrors := collectErrors(p, input, filename); len(compilerErrors) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(compilerErrors))
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	interpreter := interp.New(out)
	result := interpreter.Run(program)

	if result != nil && result.Type() == "ERROR" {
		fmt.Fprintf(os.Stderr, "Runtime error: %s\n", result.String())
		return fmt.Errorf("execution failed")
	}

	return nil
}

// collectErrors gathers lexer and parser errors into CompilerErrors for
// pretty printing. Lexical errors come first: they are the likelier root
// cause of any parse errors that follow.
func collectErrors(p *parser.Parser, input, filename string) []*errors.CompilerError {
	var compilerErrors []*errors.CompilerError

	for _, lexErr := range p.LexerErrors() {
		compilerErrors = append(compilerErrors,
			errors.NewCompilerError(lexErr.Pos, lexErr.Message, input, filename))
	}
	for _, parseErr := range p.Errors() {
		compilerErrors = append(compilerErrors,
			errors.NewCompilerError(parseErr.Pos, parseErr.Message, input, filename))
	}

	return compilerErrors
}
