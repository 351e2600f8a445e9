package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"bminor/pkg/asm"
	"bminor/pkg/compiler"
)

// outputFilename is where the generated assembly always lands.
const outputFilename = "output.s"

var (
	printAST     bool
	formatOutput bool
)

var rootCmd = &cobra.Command{
	Use:          "bminor <input-file>",
	Short:        "Compile a B-minor source file to x86-64 assembly",
	Long:         "bminor compiles one B-minor source file into AT&T-syntax x86-64 assembly,\nwritten to output.s in the current directory. The output links against a C\nruntime providing printf.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "could not open file '%s'", args[0])
	}
	src := string(data)

	tokens, err := compiler.Lex(src)
	if err != nil {
		return errors.Wrap(err, "lex")
	}

	decls, err := compiler.Parse(tokens, src)
	if err != nil {
		return errors.Wrap(err, "parse")
	}

	if printAST {
		fmt.Print(compiler.FormatProgram(decls))
	}

	if err := compiler.ResolveProgram(decls); err != nil {
		return errors.Wrap(err, "resolve")
	}

	if err := compiler.CheckProgram(decls); err != nil {
		return errors.Wrap(err, "typecheck")
	}

	assembly := compiler.Generate(decls)
	if formatOutput {
		assembly = asm.Format(assembly)
	}

	if err := os.WriteFile(outputFilename, []byte(assembly), 0o644); err != nil {
		return errors.Wrapf(err, "could not write '%s'", outputFilename)
	}
	return nil
}

func main() {
	rootCmd.Flags().BoolVar(&printAST, "print-ast", false, "pretty-print the parsed program to stdout")
	rootCmd.Flags().BoolVar(&formatOutput, "format", false, "run the generated assembly through asmfmt")

	// glog registers its flags on the standard flag set; parse it empty
	// so logging does not complain about being used before flag.Parse
	_ = goflag.CommandLine.Parse(nil)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
