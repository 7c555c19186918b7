package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/analyzer"
	"github.com/quill-lang/quill/internal/builtins"
	qerrors "github.com/quill-lang/quill/internal/errors"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a quill program",
	Long: `Execute a quill program from a file or inline expression.

Examples:
  # Run a script file
  quill run script.ql

  # Evaluate inline code
  quill run -e "println(\"hello\");"

  # Run with AST dump (for debugging)
  quill run --dump-ast script.ql`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before executing")
	runCmd.Flags().BoolVar(&trace, "trace", false, "announce each phase as it starts")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[lex %s]\n", filename)
	}
	toks, err := lexer.Tokenize(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, qerrors.WrapLocated(err, input, filename).Format(true))
		return fmt.Errorf("lexing failed")
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[parse %s]\n", filename)
	}
	program, err := parser.Parse(toks)
	if err != nil {
		fmt.Fprintln(os.Stderr, qerrors.WrapLocated(err, input, filename).Format(true))
		return fmt.Errorf("parsing failed")
	}

	if dumpAST {
		fmt.Println(program.String())
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[run %s]\n", filename)
	}
	io := builtins.NewIO(os.Stdout, os.Stdin)
	if err := analyzer.Run(program, io); err != nil {
		if exitErr, ok := err.(*builtins.ExitError); ok {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, qerrors.WrapLocated(err, input, filename).Format(true))
		return fmt.Errorf("execution failed")
	}

	return nil
}
