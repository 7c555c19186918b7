package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	qerrors "github.com/quill-lang/quill/internal/errors"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/token"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a quill file or expression",
	Long: `Tokenize (lex) a quill program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
quill source code is tokenized.

Examples:
  # Tokenize a script file
  quill lex script.ql

  # Tokenize an inline expression
  quill lex -e "let x = 42;"

  # Show token kinds and line numbers
  quill lex --show-type --show-pos script.ql

  # Suppress the token listing and report only a fatal lex error, if any
  quill lex --only-errors script.ql`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token line numbers")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token kind names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "suppress the token listing, report only a fatal lex error")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	toks, lexErr := lexer.Tokenize(input)
	if lexErr != nil {
		if onlyErrors {
			fmt.Println(qerrors.WrapLocated(lexErr, input, filename).Format(false))
		}
		return fmt.Errorf("lex failed")
	}
	if onlyErrors {
		return nil
	}

	for _, tok := range toks {
		printToken(tok)
	}
	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(toks))
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Kind)
	}
	if tok.Kind == token.EOF {
		output += " EOF"
	} else if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Kind)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		output += fmt.Sprintf(" @line:%d", tok.Line+1)
	}
	fmt.Println(output)
}

func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(content), filename, nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
