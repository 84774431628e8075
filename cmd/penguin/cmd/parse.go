package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ant-Tonmay/penguine/internal/errors"
	"github.com/Ant-Tonmay/penguine/internal/lexer"
	"github.com/Ant-Tonmay/penguine/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Penguin file and print the AST",
	Long: `Parse a Penguin program and print the abstract syntax tree in its
fully-parenthesized string form. Operator precedence is visible directly
in the parenthesization.

Examples:
  # Parse a script file
  penguin parse script.pg

  # Parse inline source
  penguin parse -e "{ func main() { println(1 + 2 * 3); } }"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if compilerErrors := collectErrors(p, input, filename); len(compilerErrors) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(compilerErrors))
	}

	fmt.Println(program.String())
	return nil
}
