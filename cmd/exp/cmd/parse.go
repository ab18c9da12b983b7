package cmd

import (
	"fmt"
	"strings"

	exp "github.com/cwbudde/go-exp"
	"github.com/cwbudde/go-exp/internal/ast"
	"github.com/spf13/cobra"
)

var (
	parseExpr    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an expression and display its AST",
	Long: `Parse an expression and display the abstract syntax tree.

If no file is provided, reads from stdin.
Use -e to parse an expression from the command line.
Use --dump-ast to show the full tree structure with spans.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse an inline expression instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full tree structure with spans")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args, parseExpr)
	if err != nil {
		return err
	}

	expr, err := exp.Parse(input)
	if err != nil {
		return renderError(input, filename, err)
	}

	if parseDumpAST {
		var sb strings.Builder
		dumpNode(&sb, expr, 0)
		fmt.Print(sb.String())
		return nil
	}
	fmt.Println(expr.String())
	return nil
}

// dumpNode writes one node per line, indented by depth, with the node's
// byte span.
func dumpNode(sb *strings.Builder, n ast.Expression, depth int) {
	indent := strings.Repeat("  ", depth)
	span := ast.SpanOf(n)

	switch node := n.(type) {
	case *ast.NumberLiteral:
		fmt.Fprintf(sb, "%sNumber %s [%d,%d)\n", indent, node.String(), span.Start, span.End)
	case *ast.StringLiteral:
		fmt.Fprintf(sb, "%sString %s [%d,%d)\n", indent, node.String(), span.Start, span.End)
	case *ast.BooleanLiteral:
		fmt.Fprintf(sb, "%sBoolean %s [%d,%d)\n", indent, node.String(), span.Start, span.End)
	case *ast.NullLiteral:
		fmt.Fprintf(sb, "%sNull [%d,%d)\n", indent, span.Start, span.End)
	case *ast.Identifier:
		fmt.Fprintf(sb, "%sIdentifier %s [%d,%d)\n", indent, node.Value, span.Start, span.End)
	case *ast.ArrayLiteral:
		fmt.Fprintf(sb, "%sArray (%d elements) [%d,%d)\n", indent, len(node.Elements), span.Start, span.End)
		for _, el := range node.Elements {
			dumpNode(sb, el, depth+1)
		}
	case *ast.UnaryExpression:
		fmt.Fprintf(sb, "%sUnary %q [%d,%d)\n", indent, node.Operator, span.Start, span.End)
		dumpNode(sb, node.Operand, depth+1)
	case *ast.BinaryExpression:
		fmt.Fprintf(sb, "%sBinary %q [%d,%d)\n", indent, node.Operator, span.Start, span.End)
		dumpNode(sb, node.Left, depth+1)
		dumpNode(sb, node.Right, depth+1)
	case *ast.MemberExpression:
		fmt.Fprintf(sb, "%sMember .%s [%d,%d)\n", indent, node.Property, span.Start, span.End)
		dumpNode(sb, node.Object, depth+1)
	case *ast.CallExpression:
		fmt.Fprintf(sb, "%sCall (%d arguments) [%d,%d)\n", indent, len(node.Arguments), span.Start, span.End)
		dumpNode(sb, node.Callee, depth+1)
		for _, arg := range node.Arguments {
			dumpNode(sb, arg, depth+1)
		}
	case *ast.ConditionalExpression:
		fmt.Fprintf(sb, "%sConditional [%d,%d)\n", indent, span.Start, span.End)
		dumpNode(sb, node.Test, depth+1)
		dumpNode(sb, node.Consequent, depth+1)
		dumpNode(sb, node.Alternate, depth+1)
	default:
		fmt.Fprintf(sb, "%s%T [%d,%d)\n", indent, n, span.Start, span.End)
	}
}
