package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the interpreter version (overridable by build flags).
var Version = "0.1.0"

var showInfo bool

var rootCmd = &cobra.Command{
	Use:   "penguin [file]",
	Short: "The Penguin programming language interpreter",
	Long: `penguin is a batch-mode interpreter for the Penguin scripting
language: a small general-purpose language with first-class functions,
heterogeneous arrays, and structured control flow.

Run a script directly:

  penguin script.pg

or use the subcommands for debugging the pipeline stages:

  penguin lex script.pg
  penguin parse script.pg`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if showInfo {
			printInfo()
			return nil
		}

		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no input file")
			fmt.Fprintln(os.Stderr, "Use: penguin <file.pg> or penguin --info")
			return errors.New("no input file")
		}
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: penguin <file.pg>")
			return errors.New("too many arguments")
		}

		return runFile(args[0], os.Stdout)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate("Penguin Programming Language\nVersion: {{.Version}}\n")

	rootCmd.Flags().BoolVar(&showInfo, "info", false, "print the penguin banner and exit")
}

// printInfo prints the banner, kept word for word from the original
// launcher.
func printInfo() {
	fmt.Println("Hello i am penguin , A brand new programming language !!")
	fmt.Printf("Version: %s\n", Version)
	fmt.Println("Meet my creator Tonmay Sardar !!")
	fmt.Println("Usage: penguin <file.pg>")
}
