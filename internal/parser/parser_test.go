package parser

import (
	"testing"

	"github.com/go-pascal/pasfront/internal/ast"
	"github.com/go-pascal/pasfront/internal/diag"
	"github.com/go-pascal/pasfront/internal/lexer"
)

func parseSource(t *testing.T, src string) ([]ast.Expr, *Parser, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	l := lexer.NewFromSource("<test>", []byte(src), sink)
	p := New(l, sink)
	return p.Parse(), p, sink
}

func TestEmptyProgram(t *testing.T) {
	nodes, _, sink := parseSource(t, "program Empty; begin end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d top-level nodes, want 2 (Program, Block)", len(nodes))
	}
	prog, ok := nodes[0].(*ast.Program)
	if !ok || prog.Name != "Empty" {
		t.Fatalf("nodes[0] = %+v, want Program named Empty", nodes[0])
	}
	block, ok := nodes[1].(*ast.Block)
	if !ok || len(block.Statements) != 0 {
		t.Fatalf("nodes[1] = %+v, want an empty Block", nodes[1])
	}
}

func TestProgramWithParams(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P(input, output); begin end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	prog := nodes[0].(*ast.Program)
	if len(prog.Params) != 2 || prog.Params[0] != "input" || prog.Params[1] != "output" {
		t.Fatalf("Params = %v, want [input output]", prog.Params)
	}
}

func TestAssignmentAndPrecedence(t *testing.T) {
	// x := x + i * 2 should bind as x + (i * 2), per §4.1's precedence
	// table (additive at 10, multiplicative at 20).
	nodes, _, sink := parseSource(t, "program P; begin x := x + i * 2 end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	block := nodes[1].(*ast.Block)
	if len(block.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(block.Statements))
	}
	assign, ok := block.Statements[0].(*ast.Assign)
	if !ok {
		t.Fatalf("statement = %T, want *ast.Assign", block.Statements[0])
	}
	add, ok := assign.Rhs.(*ast.BinaryExpr)
	if !ok || add.Operator != "+" {
		t.Fatalf("Rhs = %+v, want a '+' BinaryExpr", assign.Rhs)
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Operator != "*" {
		t.Fatalf("Rhs.Right = %+v, want a '*' BinaryExpr", add.Right)
	}
}

func TestDanglingElseBindsToInnermostIf(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P; begin if a then if b then x := 1 else x := 2 end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	block := nodes[1].(*ast.Block)
	outer, ok := block.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("statement = %T, want *ast.If", block.Statements[0])
	}
	if outer.ElsePart != nil {
		t.Fatal("outer if should not own the else")
	}
	inner, ok := outer.ThenPart.(*ast.If)
	if !ok {
		t.Fatalf("outer.ThenPart = %T, want *ast.If", outer.ThenPart)
	}
	if inner.ElsePart == nil {
		t.Fatal("inner if should own the else")
	}
}

func TestRepeatUntilBodyIsABlock(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P; begin repeat x := x + 1; y := y - 1 until x = 0 end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	block := nodes[1].(*ast.Block)
	rep, ok := block.Statements[0].(*ast.Repeat)
	if !ok {
		t.Fatalf("statement = %T, want *ast.Repeat", block.Statements[0])
	}
	if len(rep.Body.Statements) != 2 {
		t.Fatalf("Body has %d statements, want 2", len(rep.Body.Statements))
	}
	cond, ok := rep.Cond.(*ast.BinaryExpr)
	if !ok || cond.Operator != "=" {
		t.Fatalf("Cond = %+v, want an '=' BinaryExpr", rep.Cond)
	}
}

func TestForLoopDirection(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P; begin for i := 1 to 10 do x := i; for j := 10 downto 1 do y := j end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	block := nodes[1].(*ast.Block)
	up := block.Statements[0].(*ast.For)
	if up.Down {
		t.Error("first loop should be ascending (to)")
	}
	down := block.Statements[1].(*ast.For)
	if !down.Down {
		t.Error("second loop should be descending (downto)")
	}
}

func TestConstantFoldingSignAndNot(t *testing.T) {
	nodes, p, sink := parseSource(t, "program P; const a = -5; b = not 5; begin end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	_ = nodes
	a, ok := p.Constants()["a"]
	if !ok || a.Kind != ast.IntConst || a.IntVal != -5 {
		t.Fatalf("constant a = %+v, want IntConst(-5)", a)
	}
	b, ok := p.Constants()["b"]
	if !ok || b.Kind != ast.IntConst || b.IntVal != ^int64(5) {
		t.Fatalf("constant b = %+v, want IntConst(%d)", b, ^int64(5))
	}
}

func TestConstantFoldingRejectsSignOnChar(t *testing.T) {
	_, p, sink := parseSource(t, "program P; const a = -'x'; begin end.")
	if !sink.Any() {
		t.Fatal("expected a diagnostic rejecting '-' on a char constant")
	}
	if _, ok := p.Constants()["a"]; ok {
		t.Fatal("a rejected constant should not appear in Constants()")
	}
}

func TestConstantFoldingRejectsNotOnReal(t *testing.T) {
	_, p, sink := parseSource(t, "program P; const a = not 3.14; begin end.")
	if !sink.Any() {
		t.Fatal("expected a diagnostic rejecting 'not' on a real constant")
	}
	if _, ok := p.Constants()["a"]; ok {
		t.Fatal("a rejected constant should not appear in Constants()")
	}
}

func TestCaseStatement(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P; begin case x of 1: y := 1; 2, 3: y := 2 else y := 0 end end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	block := nodes[1].(*ast.Block)
	cs, ok := block.Statements[0].(*ast.CaseStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.CaseStatement", block.Statements[0])
	}
	if len(cs.Branches) != 2 {
		t.Fatalf("got %d branches, want 2", len(cs.Branches))
	}
	if len(cs.Branches[1].Labels) != 2 {
		t.Fatalf("second branch has %d labels, want 2", len(cs.Branches[1].Labels))
	}
	if cs.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func TestWithStatement(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P; begin with r do x := 1 end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	block := nodes[1].(*ast.Block)
	ws, ok := block.Statements[0].(*ast.WithStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.WithStatement", block.Statements[0])
	}
	if _, ok := ws.Record.(*ast.Identifier); !ok {
		t.Fatalf("Record = %T, want *ast.Identifier", ws.Record)
	}
}

func TestFunctionDeclarationWithForwardBody(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P; function Sq(n: Integer): Integer; forward; begin end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	fn, ok := nodes[1].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("nodes[1] = %T, want *ast.FunctionDecl", nodes[1])
	}
	if fn.Signature.Name != "Sq" || fn.Signature.ReturnType != "Integer" {
		t.Fatalf("Signature = %+v", fn.Signature)
	}
	if fn.Body != nil {
		t.Fatal("a forward declaration should have no body")
	}
}

func TestSyntaxErrorRecoversAtSemicolon(t *testing.T) {
	// The stray ')' is a syntax error; parsing should recover at the
	// next ';' and keep going rather than aborting the whole program.
	nodes, _, sink := parseSource(t, "program P; begin x := ) ; y := 1 end.")
	if !sink.Any() {
		t.Fatal("expected a diagnostic for the stray ')'")
	}
	block := nodes[1].(*ast.Block)
	if len(block.Statements) == 0 {
		t.Fatal("expected at least the recovered 'y := 1' statement")
	}
	last := block.Statements[len(block.Statements)-1]
	assign, ok := last.(*ast.Assign)
	if !ok {
		t.Fatalf("last statement = %T, want *ast.Assign", last)
	}
	if lit, ok := assign.Rhs.(*ast.IntegerLiteral); !ok || lit.Value != 1 {
		t.Fatalf("Rhs = %+v, want IntegerLiteral(1)", assign.Rhs)
	}
}

func TestSetExprLiteral(t *testing.T) {
	nodes, _, sink := parseSource(t, "program P; begin x := [1, 2, 3] end.")
	if sink.Any() {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	block := nodes[1].(*ast.Block)
	assign := block.Statements[0].(*ast.Assign)
	set, ok := assign.Rhs.(*ast.SetExpr)
	if !ok {
		t.Fatalf("Rhs = %T, want *ast.SetExpr", assign.Rhs)
	}
	if len(set.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(set.Elements))
	}
}
