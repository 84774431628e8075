package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Penguin file or inline source",
	Long: `Tokenize (lex) a Penguin program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Penguin source code is tokenized.

Examples:
  # Tokenize a script file
  penguin lex script.pg

  # Tokenize inline source
  penguin lex -e "x = 1 + 2;"

  # Show token types and positions
  penguin lex --show-type --show-pos script.pg`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for _, tok := range l.Tokenize() {
		printToken(tok)
	}

	if lexErrors := l.Errors(); len(lexErrors) > 0 {
		for _, lexErr := range lexErrors {
			fmt.Fprintf(os.Stderr, "Error at %d:%d: %s\n",
				lexErr.Pos.Line, lexErr.Pos.Column, lexErr.Message)
		}
		return fmt.Errorf("found %d lexical error(s)", len(lexErrors))
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	switch {
	case tok.Type == lexer.EOF:
		output += " EOF"
	case tok.Type == lexer.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
