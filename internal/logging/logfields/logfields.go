// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// Lexer is the name of a lexer definition
	Lexer = "lexer"

	// State is the name of a lexical state
	State = "state"

	// States is a number of states
	States = "states"

	// Rules is a number of rules
	Rules = "rules"

	// Offset is a byte offset into scanned input
	Offset = "offset"

	// Line is a 1-based line number
	Line = "line"

	// Category is a token category
	Category = "category"

	// Value is a token lexeme
	Value = "value"

	// Count is a number of items
	Count = "count"

	// File is a path on disk
	File = "file"

	// Method is a JSON-RPC method name
	Method = "method"
)
