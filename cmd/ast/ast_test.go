package main

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_generateAst(t *testing.T) {
	assert := assert.New(t)

	out := generateAst("Expr", []string{
		"Grouping: expression expr[T]",
	})

	assert.Contains(out, "type expr[T any] interface {\n\taccept(exprVisitor[T]) T\n}")
	assert.Contains(out, "\tvisitGroupingExpr(expr *groupingExpr[T]) T\n")
	assert.Contains(out, "type groupingExpr[T any] struct {\n\texpression expr[T]\n}")
	assert.Contains(out, "return visitor.visitGroupingExpr(s)")

	_, err := format.Source([]byte(out))
	assert.NoError(err)
}

func Test_generateAst_allExprTypes(t *testing.T) {
	assert := assert.New(t)

	out := generateAst("Expr", exprTypes)

	for _, name := range []string{"binaryExpr", "groupingExpr", "literalExpr", "unaryExpr"} {
		assert.Contains(out, "type "+name+"[T any] struct")
		assert.Contains(out, "func (s *"+name+"[T]) accept(visitor exprVisitor[T]) T")
	}
}
