package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/ast"
	qerrors "github.com/quill-lang/quill/internal/errors"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a quill program and display its AST",
	Long: `Parse a quill program and display its Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression or statement list from the command line.
Use --dump-ast to show the full tree structure instead of the rendered
source-like form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse inline code from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input, filename = args[0], "<eval>"
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input, filename = string(data), args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input, filename = string(data), "<stdin>"
	}

	toks, err := lexer.Tokenize(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, qerrors.WrapLocated(err, input, filename).Format(false))
		return fmt.Errorf("lexing failed")
	}
	program, err := parser.Parse(toks)
	if err != nil {
		fmt.Fprintln(os.Stderr, qerrors.WrapLocated(err, input, filename).Format(false))
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}
	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.LetStatement:
		fmt.Printf("%sLetStatement %s =\n", pad, n.Name)
		dumpASTNode(n.Value, indent+1)
	case *ast.AssignmentStatement:
		fmt.Printf("%sAssignmentStatement %s =\n", pad, n.Name)
		dumpASTNode(n.Value, indent+1)
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpASTNode(n.Expr, indent+1)
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", pad)
		fmt.Printf("%s  Cond:\n", pad)
		dumpASTNode(n.Cond, indent+2)
		fmt.Printf("%s  Body (%d statements):\n", pad, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+2)
		}
	case *ast.ForStatement:
		fmt.Printf("%sForStatement\n", pad)
		fmt.Printf("%s  Init:\n", pad)
		dumpASTNode(n.Init, indent+2)
		fmt.Printf("%s  Cond:\n", pad)
		dumpASTNode(n.Cond, indent+2)
		fmt.Printf("%s  Step:\n", pad)
		dumpASTNode(n.Step, indent+2)
		fmt.Printf("%s  Body (%d statements):\n", pad, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+2)
		}
	case *ast.FunctionDeclaration:
		fmt.Printf("%sFunctionDeclaration %s (%d params)\n", pad, n.Name, len(n.Params))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.BinOp:
		fmt.Printf("%sBinOp (%s)\n", pad, n.Op)
		fmt.Printf("%s  Left:\n", pad)
		dumpASTNode(n.Left, indent+2)
		fmt.Printf("%s  Right:\n", pad)
		dumpASTNode(n.Right, indent+2)
	case *ast.UnaryOp:
		fmt.Printf("%sUnaryOp (%s)\n", pad, n.Op)
		dumpASTNode(n.Operand, indent+1)
	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral: %s\n", pad, n.Text)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", pad, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Name)
	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall %s (%d args)\n", pad, n.Name, len(n.Args))
		for _, argExpr := range n.Args {
			dumpASTNode(argExpr, indent+1)
		}
	case *ast.ArrayLiteral:
		fmt.Printf("%sArrayLiteral (%d elements)\n", pad, len(n.Elements))
		for _, elExpr := range n.Elements {
			dumpASTNode(elExpr, indent+1)
		}
	default:
		fmt.Printf("%s%T: %v\n", pad, node, node)
	}
}
