// Ast generates the expression node types of package internal.
//
// Usage:
//
//	ast [-o FILE]
//
// Without -o the generated source is written to stdout.
package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

//go:generate go run . -o ../../internal/expr.go

var flagOut = pflag.StringP("out", "o", "", "Write the generated source to the given file.")

var exprTypes = []string{
	"Binary: left expr[T], operator *Token, right expr[T]",
	"Grouping: expression expr[T]",
	"Literal: value interface{}",
	"Unary: operator *Token, right expr[T]",
}

func main() {
	pflag.Parse()

	src, err := format.Source([]byte(generateAst("Expr", exprTypes)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: formatting generated source: %s\n", err)
		os.Exit(1)
	}

	if *flagOut == "" {
		fmt.Print(string(src))
		return
	}
	if err := os.WriteFile(*flagOut, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + "[T any] interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor[T]) T\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor[T any] interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + "[T]) T\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + "[T any] struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + "[T]) accept(visitor " + strings.ToLower(baseName) + "Visitor[T]) T {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
