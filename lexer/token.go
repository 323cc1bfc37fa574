package lexer

import "strings"

// Category identifies the lexical class of a token. Categories are dotted
// paths; "Comment.Single" is a child of "Comment".
type Category string

const (
	Text  Category = "Text"
	Error Category = "Error"

	Comment            Category = "Comment"
	CommentSingle      Category = "Comment.Single"
	CommentMultiline   Category = "Comment.Multiline"
	CommentPreproc     Category = "Comment.Preproc"
	CommentPreprocFile Category = "Comment.PreprocFile"
	Keyword            Category = "Keyword"
	KeywordNamespace   Category = "Keyword.Namespace"
	KeywordReserved    Category = "Keyword.Reserved"
	Name               Category = "Name"
	NameFunction       Category = "Name.Function"
	NameClass          Category = "Name.Class"
	NameBuiltin        Category = "Name.Builtin"
	NameLabel          Category = "Name.Label"
	String             Category = "Literal.String"
	StringChar         Category = "Literal.String.Char"
	StringEscape       Category = "Literal.String.Escape"
	NumberFloat        Category = "Literal.Number.Float"
	NumberHex          Category = "Literal.Number.Hex"
	NumberOct          Category = "Literal.Number.Oct"
	NumberInteger      Category = "Literal.Number.Integer"
	Operator           Category = "Operator"
	Punctuation        Category = "Punctuation"
)

// Categories lists every category the package defines, in a stable order.
var Categories = []Category{
	Text, Error,
	Comment, CommentSingle, CommentMultiline, CommentPreproc, CommentPreprocFile,
	Keyword, KeywordNamespace, KeywordReserved,
	Name, NameFunction, NameClass, NameBuiltin, NameLabel,
	String, StringChar, StringEscape,
	NumberFloat, NumberHex, NumberOct, NumberInteger,
	Operator, Punctuation,
}

// Parent returns the enclosing category, or "" for a top-level one.
func (c Category) Parent() Category {
	idx := strings.LastIndexByte(string(c), '.')
	if idx < 0 {
		return ""
	}
	return c[:idx]
}

// In reports whether c is ancestor or one of its descendants.
func (c Category) In(ancestor Category) bool {
	if c == ancestor {
		return true
	}
	return strings.HasPrefix(string(c), string(ancestor)+".")
}

func (c Category) String() string {
	return string(c)
}

// Token is one classified lexeme.
type Token struct {
	Category Category
	Value    string
	Span     Span
	Pos      Position
}

// Span locates a token by byte offset and byte length.
type Span struct {
	Offset int
	Length int
}

// End returns the byte offset just past the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Position identifies the line and rune column where a token starts.
type Position struct {
	Line   int
	Column int
}
