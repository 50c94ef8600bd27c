package ast

import "testing"

func TestConstantString(t *testing.T) {
	tests := []struct {
		c    Constant
		want string
	}{
		{Constant{Kind: IntConst, IntVal: -5}, "-5"},
		{Constant{Kind: IntConst, IntVal: ^int64(5)}, "-6"},
		{Constant{Kind: RealConst, RealVal: 3.14}, "3.14"},
		{Constant{Kind: CharConst, CharVal: 'a'}, "'a'"},
		{Constant{Kind: StringConst, StrVal: "hi"}, `"hi"`},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Constant{%v}.String() = %q, want %q", tt.c.Kind, got, tt.want)
		}
	}
}
