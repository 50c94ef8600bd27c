// Package ast defines the tagged-variant tree the parser builds and
// downstream stages consume. Every node is a plain struct carrying
// exactly its own fields — there is no ExprAST base class with empty
// subclasses, only a Node interface and, per variant, a concrete type.
package ast

import (
	"bytes"
	"fmt"

	"github.com/go-pascal/pasfront/pkg/token"
)

// Node is implemented by every tree element: tokens, expressions and
// statements alike.
type Node interface {
	Pos() token.Position
	TokenLiteral() string
	String() string
}

// Expr is the sum type named throughout the design: the parser
// returns an ordered sequence of these as the whole-program AST, and
// every composite node stores its children as Expr.
type Expr = Node

// Expression is the marker sub-interface for nodes that produce a
// value (literals, names, operator applications).
type Expression interface {
	Node
	expressionNode()
}

// Statement is the marker sub-interface for nodes that represent an
// action rather than a value (assignments, control flow, blocks).
type Statement interface {
	Node
	statementNode()
}

// Identifier is a VariableRef: a bare name used as an expression.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) Pos() token.Position  { return i.Token.Pos }
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) String() string       { return i.Name }
func (*Identifier) expressionNode()        {}

// IntegerLiteral is a decimal or hexadecimal integer constant.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (n *IntegerLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *IntegerLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *IntegerLiteral) String() string       { return n.Token.Lexeme }
func (*IntegerLiteral) expressionNode()        {}

// RealLiteral is a decimal, fraction or exponent floating literal.
type RealLiteral struct {
	Token token.Token
	Value float64
}

func (n *RealLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *RealLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *RealLiteral) String() string       { return n.Token.Lexeme }
func (*RealLiteral) expressionNode()        {}

// CharLiteral is a quoted literal of length exactly one.
type CharLiteral struct {
	Token token.Token
	Value byte
}

func (n *CharLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *CharLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *CharLiteral) String() string       { return n.Token.Lexeme }
func (*CharLiteral) expressionNode()        {}

// StringLiteral is a quoted literal of length other than one.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (n *StringLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *StringLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *StringLiteral) String() string       { return n.Token.Lexeme }
func (*StringLiteral) expressionNode()        {}

// BinaryExpr is a precedence-climbed binary operator application.
type BinaryExpr struct {
	Token    token.Token // the operator
	Left     Expr
	Operator string
	Right    Expr
}

func (n *BinaryExpr) Pos() token.Position  { return n.Token.Pos }
func (n *BinaryExpr) TokenLiteral() string { return n.Token.Lexeme }
func (n *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Operator, n.Right)
}
func (*BinaryExpr) expressionNode() {}

// UnaryExpr is a prefix `+`, `-` or `not` applied to an operand.
type UnaryExpr struct {
	Token    token.Token // the operator
	Operator string
	Operand  Expr
}

func (n *UnaryExpr) Pos() token.Position  { return n.Token.Pos }
func (n *UnaryExpr) TokenLiteral() string { return n.Token.Lexeme }
func (n *UnaryExpr) String() string       { return fmt.Sprintf("(%s%s)", n.Operator, n.Operand) }
func (*UnaryExpr) expressionNode()        {}

// GroupedExpr is a parenthesised expression, kept as its own node so
// printers can round-trip the parentheses.
type GroupedExpr struct {
	Token token.Token // the '('
	Inner Expr
}

func (n *GroupedExpr) Pos() token.Position  { return n.Token.Pos }
func (n *GroupedExpr) TokenLiteral() string { return n.Token.Lexeme }
func (n *GroupedExpr) String() string       { return fmt.Sprintf("(%s)", n.Inner) }
func (*GroupedExpr) expressionNode()        {}

// SetExpr is a `[ … ]` set-literal primary expression.
type SetExpr struct {
	Token    token.Token // the '['
	Elements []Expr
}

func (n *SetExpr) Pos() token.Position  { return n.Token.Pos }
func (n *SetExpr) TokenLiteral() string { return n.Token.Lexeme }
func (n *SetExpr) String() string {
	var out bytes.Buffer
	out.WriteByte('[')
	for i, e := range n.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.String())
	}
	out.WriteByte(']')
	return out.String()
}
func (*SetExpr) expressionNode() {}

// Program carries the program heading: its name and the optional
// `input`/`output`-style parameter list.
type Program struct {
	Token  token.Token // the 'program' keyword
	Name   string
	Params []string
}

func (n *Program) Pos() token.Position  { return n.Token.Pos }
func (n *Program) TokenLiteral() string { return n.Token.Lexeme }
func (n *Program) String() string       { return fmt.Sprintf("program %s;", n.Name) }
func (*Program) statementNode()         {}

// Block is a `begin … end` bracketed, semicolon-separated statement
// sequence. The bracket tokens themselves are not stored; Token
// records the 'begin' location (the 'repeat' location for the
// synthetic body Block of a Repeat).
type Block struct {
	Token      token.Token // the 'begin' (or 'repeat') keyword
	Statements []Expr
}

func (n *Block) Pos() token.Position  { return n.Token.Pos }
func (n *Block) TokenLiteral() string { return n.Token.Lexeme }
func (n *Block) String() string {
	var out bytes.Buffer
	out.WriteString("begin ")
	for i, s := range n.Statements {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString(s.String())
	}
	out.WriteString(" end")
	return out.String()
}
func (*Block) statementNode() {}

// Assign is `lhs := rhs`.
type Assign struct {
	Token token.Token // the ':=' operator
	Lhs   Expr
	Rhs   Expr
}

func (n *Assign) Pos() token.Position  { return n.Token.Pos }
func (n *Assign) TokenLiteral() string { return n.Token.Lexeme }
func (n *Assign) String() string       { return fmt.Sprintf("%s := %s", n.Lhs, n.Rhs) }
func (*Assign) statementNode()         {}
