package ast

import (
	"fmt"

	"github.com/go-pascal/pasfront/pkg/token"
)

// Prototype is a function/procedure signature: name, parameter names
// and, for a function, a return type name. Parameter type names are
// not recorded.
type Prototype struct {
	Token      token.Token // the 'function'/'procedure' keyword
	Name       string
	Params     []string
	ReturnType string // empty for a procedure
}

func (n *Prototype) Pos() token.Position  { return n.Token.Pos }
func (n *Prototype) TokenLiteral() string { return n.Token.Lexeme }
func (n *Prototype) String() string       { return fmt.Sprintf("function %s(...)", n.Name) }
func (*Prototype) statementNode()         {}

// FunctionDecl pairs a Prototype with its body. Body is nil for a
// `forward;` declaration; local declarations preceding the body are
// parsed but not stored here.
type FunctionDecl struct {
	Token     token.Token
	Signature *Prototype
	Body      *Block
}

func (n *FunctionDecl) Pos() token.Position  { return n.Token.Pos }
func (n *FunctionDecl) TokenLiteral() string { return n.Token.Lexeme }
func (n *FunctionDecl) String() string       { return n.Signature.String() }
func (*FunctionDecl) statementNode()         {}

// VariableDecl is one `name { ',' name } ':' type` group from a var
// section. Reserved for future use alongside FunctionDecl.
type VariableDecl struct {
	Token token.Token // the 'var' keyword
	Names []string
	Type  string
}

func (n *VariableDecl) Pos() token.Position  { return n.Token.Pos }
func (n *VariableDecl) TokenLiteral() string { return n.Token.Lexeme }
func (n *VariableDecl) String() string       { return fmt.Sprintf("var %v: %s", n.Names, n.Type) }
func (*VariableDecl) statementNode()         {}
