package internal

import (
	"fmt"
	"strings"
)

// emptyTree is printed when there is no tree to print.
const emptyTree = "empty"

// printTree renders the tree as a parenthesized prefix expression.
func printTree(root expr[string]) string {
	if root == nil {
		return emptyTree
	}
	v := stringVisitor{sb: &strings.Builder{}}
	root.accept(v)
	return v.sb.String()
}

// stringVisitor appends every node to sb; the visit methods return "".
type stringVisitor struct {
	sb *strings.Builder
}

func (v stringVisitor) visitBinaryExpr(binary *binaryExpr[string]) string {
	return v.parenthesize(binary.operator.Lexeme, binary.left, binary.right)
}

func (v stringVisitor) visitGroupingExpr(group *groupingExpr[string]) string {
	return v.parenthesize("group", group.expression)
}

func (v stringVisitor) visitLiteralExpr(literal *literalExpr[string]) string {
	switch value := literal.value.(type) {
	case numberText:
		v.sb.WriteString(string(value))
	case string:
		v.sb.WriteString(value)
	case bool:
		if value {
			v.sb.WriteString("true")
		} else {
			v.sb.WriteString("false")
		}
	case nil:
		v.sb.WriteString("nil")
	default:
		panic(fmt.Sprintf("literal of unexpected type %T", literal.value))
	}
	return ""
}

func (v stringVisitor) visitUnaryExpr(unary *unaryExpr[string]) string {
	return v.parenthesize(unary.operator.Lexeme, unary.right)
}

func (v stringVisitor) parenthesize(name string, exprs ...expr[string]) string {
	v.sb.WriteString("(")
	v.sb.WriteString(name)
	for _, e := range exprs {
		v.sb.WriteString(" ")
		e.accept(v)
	}
	v.sb.WriteString(")")
	return ""
}
