package token

// entry is one row of the dictionary: the category/kind pair a lexeme
// resolves to, plus its precedence when used as a binary operator
// (-1 for everything else).
type entry struct {
	kind       Kind
	category   Category
	precedence int
}

// dictionary is the immutable lexeme → (kind, category, precedence)
// table, built once at package init from a literal list rather than
// scattered addToken calls. Precedences follow the table in spec §4.1:
// relational operators and 'in' bind at 2, additive operators (and the
// word operators 'or'/'xor') at 10, multiplicative operators (and the
// word operators 'div'/'mod'/'shl'/'shr'/'and') at 20, unary 'not' at
// 40. Everything else is unprecedenced (-1).
var dictionary = map[string]entry{
	":=": {ASSIGN, OPERATOR, -1},
	"=":  {EQ, OPERATOR, 2},
	"<>": {NOTEQ, OPERATOR, 2},
	">=": {GE, OPERATOR, 2},
	">":  {GT, OPERATOR, 2},
	"<=": {LE, OPERATOR, 2},
	"<":  {LT, OPERATOR, 2},
	"+":  {PLUS, OPERATOR, 10},
	"-":  {MINUS, OPERATOR, 10},
	"*":  {STAR, OPERATOR, 20},
	"/":  {SLASH, OPERATOR, 20},
	":":  {COLON, DELIMITER, -1},
	",":  {COMMA, DELIMITER, -1},
	"..": {DOTDOT, DELIMITER, -1},
	"(":  {LPAREN, DELIMITER, -1},
	"[":  {LBRACK, DELIMITER, -1},
	".":  {PERIOD, DELIMITER, -1},
	")":  {RPAREN, DELIMITER, -1},
	"]":  {RBRACK, DELIMITER, -1},
	";":  {SEMICOLON, DELIMITER, -1},
	"^":  {CARET, DELIMITER, -1},

	"and":       {AND, KEYWORD, 20},
	"array":     {ARRAY, KEYWORD, -1},
	"begin":     {BEGIN, KEYWORD, -1},
	"case":      {CASE, KEYWORD, -1},
	"const":     {CONST, KEYWORD, -1},
	"do":        {DO, KEYWORD, -1},
	"downto":    {DOWNTO, KEYWORD, -1},
	"else":      {ELSE, KEYWORD, -1},
	"end":       {END, KEYWORD, -1},
	"file":      {FILE, KEYWORD, -1},
	"for":       {FOR, KEYWORD, -1},
	"forward":   {FORWARD, KEYWORD, -1},
	"function":  {FUNCTION, KEYWORD, -1},
	"goto":      {GOTO, KEYWORD, -1},
	"if":        {IF, KEYWORD, -1},
	"in":        {IN, KEYWORD, 2},
	"not":       {NOT, KEYWORD, 40},
	"of":        {OF, KEYWORD, -1},
	"or":        {OR, KEYWORD, 10},
	"otherwise": {OTHERWISE, KEYWORD, -1},
	"packed":    {PACKED, KEYWORD, -1},
	"procedure": {PROCEDURE, KEYWORD, -1},
	"program":   {PROGRAM, KEYWORD, -1},
	"read":      {READ, KEYWORD, -1},
	"readln":    {READLN, KEYWORD, -1},
	"record":    {RECORD, KEYWORD, -1},
	"repeat":    {REPEAT, KEYWORD, -1},
	"set":       {SET, KEYWORD, -1},
	"string":    {STRING, KEYWORD, -1},
	"then":      {THEN, KEYWORD, -1},
	"to":        {TO, KEYWORD, -1},
	"type":      {TYPE, KEYWORD, -1},
	"until":     {UNTIL, KEYWORD, -1},
	"var":       {VAR, KEYWORD, -1},
	"while":     {WHILE, KEYWORD, -1},
	"with":      {WITH, KEYWORD, -1},
	"write":     {WRITE, KEYWORD, -1},
	"writeln":   {WRITELN, KEYWORD, -1},
	"xor":       {XOR, KEYWORD, 10},
	"div":       {DIV, KEYWORD, 20},
	"mod":       {MOD, KEYWORD, 20},
	"shl":       {SHL, KEYWORD, 20},
	"shr":       {SHR, KEYWORD, 20},
}

// Lookup resolves a lexeme to its dictionary entry. An unknown lexeme
// returns (IDENTIFIER, UNRESERVED, -1), matching the contract in §4.1:
// total, pure, never an error.
func Lookup(lexeme string) (Category, Kind, int) {
	if e, ok := dictionary[lexeme]; ok {
		return e.category, e.kind, e.precedence
	}
	return IDENTIFIER, UNRESERVED, -1
}

// Contains reports whether lexeme has a dictionary entry. The lexer
// uses this to probe two-character operators before falling back to
// the one-character form.
func Contains(lexeme string) bool {
	_, ok := dictionary[lexeme]
	return ok
}
