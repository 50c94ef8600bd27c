package token

import "testing"

func TestLookupKeywordsAreCaseKeyed(t *testing.T) {
	// The dictionary is keyed by lowercase lexemes; callers are
	// responsible for lowercasing before probing it.
	cat, kind, prec := Lookup("and")
	if cat != KEYWORD || kind != AND || prec != 20 {
		t.Fatalf("Lookup(\"and\") = %v, %v, %d", cat, kind, prec)
	}

	cat, kind, prec = Lookup("AND")
	if kind != UNRESERVED {
		t.Fatalf("Lookup(\"AND\") should miss (caller's job to lowercase), got %v, %v, %d", cat, kind, prec)
	}
}

func TestLookupUnknownIsIdentifier(t *testing.T) {
	cat, kind, prec := Lookup("frobnicate")
	if cat != IDENTIFIER || kind != UNRESERVED || prec != -1 {
		t.Fatalf("Lookup(\"frobnicate\") = %v, %v, %d, want IDENTIFIER, UNRESERVED, -1", cat, kind, prec)
	}
}

func TestPrecedenceTable(t *testing.T) {
	tests := []struct {
		lexeme string
		want   int
	}{
		{"=", 2}, {"<>", 2}, {"<", 2}, {"<=", 2}, {">", 2}, {">=", 2}, {"in", 2},
		{"+", 10}, {"-", 10}, {"or", 10}, {"xor", 10},
		{"*", 20}, {"/", 20}, {"div", 20}, {"mod", 20}, {"shl", 20}, {"shr", 20}, {"and", 20},
		{"not", 40},
		{":=", -1}, {";", -1}, {"(", -1},
	}
	for _, tt := range tests {
		_, _, prec := Lookup(tt.lexeme)
		if prec != tt.want {
			t.Errorf("Lookup(%q) precedence = %d, want %d", tt.lexeme, prec, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains(":=") {
		t.Error(`Contains(":=") = false, want true`)
	}
	if Contains("::") {
		t.Error(`Contains("::") = true, want false`)
	}
}
