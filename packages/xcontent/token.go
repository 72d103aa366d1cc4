package xcontent

// TokenKind identifies the structural element a token represents.
type TokenKind int

const (
	EOF TokenKind = iota
	ObjectStart
	ObjectEnd
	ArrayStart
	ArrayEnd
	FieldName
	String
	Number
	Boolean
	Null
)

var tokenKindNames = map[TokenKind]string{
	EOF:         "EOF",
	ObjectStart: "OBJECT_START",
	ObjectEnd:   "OBJECT_END",
	ArrayStart:  "ARRAY_START",
	ArrayEnd:    "ARRAY_END",
	FieldName:   "FIELD_NAME",
	String:      "STRING",
	Number:      "NUMBER",
	Boolean:     "BOOLEAN",
	Null:        "NULL",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single structural token pulled from a Stream. Only the value
// fields matching Kind are meaningful: Field for FieldName tokens, Str for
// String tokens (and the original literal for Number tokens), Num for
// Number tokens, Bool for Boolean tokens.
type Token struct {
	Kind  TokenKind
	Field string
	Str   string
	Num   float64
	Bool  bool
}

// Int returns the token's numeric value truncated to an int.
func (t Token) Int() int {
	return int(t.Num)
}
