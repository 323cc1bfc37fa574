package systemc

import "github.com/mgomes/sclex/lexer"

const identifier = `[a-zA-Z_][a-zA-Z0-9_]*`

// operatorRules name overloaded operators. Conversion operators come first
// so "operator bool" is not cut short at "operator", then the longest
// symbolic forms.
var operatorRules = []lexer.Rule{
	{Pattern: `operator +const +(?:IF|T|bool|sc_event_and_list|sc_event_or_list|sc_dt::sc_logic|sc_logic|sc_unsigned)&`, Category: lexer.Operator},
	{Pattern: `operator +const +char\*`, Category: lexer.Operator},
	{Pattern: `operator +IF&`, Category: lexer.Operator},
	{Pattern: `operator +new\[\]`, Category: lexer.Operator},
	{Pattern: `operator +(?:new|bool|uint64|double|unsigned +int|sc_unsigned)\b`, Category: lexer.Operator},
	{Pattern: `operator(?:\(\)|\[\]|->)`, Category: lexer.Operator},
	{Pattern: `operator(?:<<=|>>=)`, Category: lexer.Operator},
	{Pattern: `operator(?:<<|>>)`, Category: lexer.Operator},
	{Pattern: `operator(?:==|!=|<=|>=|\+=|-=|\*=|/=|%=|&=|\|=|\^=)`, Category: lexer.Operator},
	{Pattern: `operator(?:\+\+|--)`, Category: lexer.Operator},
	{Pattern: `operator[-+*/%&|^~!=<>,]`, Category: lexer.Operator},
}

func rules(classifier lexer.Classifier) lexer.Rules {
	statements := []lexer.Rule{
		lexer.Include("whitespace"),
		{Pattern: `(u8|u|U|L)?"`, Category: lexer.String, Transition: lexer.Push("string")},
		{Pattern: `(?i)(u8|u|U|L)?'(\\.|\\[0-7]{1,3}|\\x[a-f0-9]{1,2}|[^\\'\n])'`, Category: lexer.StringChar},
		{Pattern: `(?i)([0-9]+[.][0-9]*|[.]?[0-9]+)e[+-]?[0-9]+[flu]*`, Category: lexer.NumberFloat},
		{Pattern: `(?i)([0-9]+[.][0-9]*|[.][0-9]+)[fl]?`, Category: lexer.NumberFloat},
		{Pattern: `(?i)0x[0-9a-f]+[lu]*`, Category: lexer.NumberHex},
		{Pattern: `(?i)0[0-7]+[lu]*`, Category: lexer.NumberOct},
		{Pattern: `(?i)[0-9]+[lu]*`, Category: lexer.NumberInteger},
		{Pattern: `implementation-defined(?:_string|_date|_bool|_number)?`, Category: lexer.Comment},
		{Pattern: `\*/`, Category: lexer.Error},
		{Pattern: `[()\[\],.;{}]`, Category: lexer.Punctuation},
		{Pattern: `(sc_dt|sc_core|sc_unnamed|tlm_utils|tlm)\b`, Category: lexer.KeywordNamespace},
	}
	statements = append(statements, operatorRules...)
	statements = append(statements,
		lexer.Rule{Pattern: `tlm_phase_##name_arg`, Category: lexer.Keyword},
		// Names that are also common variables are functions only when
		// called.
		lexer.Rule{Pattern: `(pos|bind|reset)\(`, Action: lexer.SplitTail(lexer.NameFunction, lexer.Punctuation, 1)},
		lexer.Rule{Pattern: identifier, Action: lexer.Classify(classifier, lexer.Name)},
		lexer.Rule{Pattern: `[~!%^&*+=|?:<>/-]`, Category: lexer.Operator},
	)

	return lexer.Rules{
		"root": {
			lexer.Include("statements"),
		},
		"statements": statements,

		"whitespace": {
			{Pattern: `\n+`, Category: lexer.Text, Transition: lexer.Push("bol")},
			{Pattern: `//(\\.|.)*?$`, Category: lexer.CommentSingle},
			lexer.Include("inline_whitespace"),
		},
		"inline_whitespace": {
			{Pattern: `[ \t\r]+`, Category: lexer.Text},
			{Pattern: `\\\n`, Category: lexer.Text},
			// An unterminated comment runs to the end of the input.
			{Pattern: `/(\\\n)?[*](?s:.)*?(?:[*](\\\n)?/|\z)`, Category: lexer.CommentMultiline},
		},

		// bol is on top of the stack at the start of the input and after
		// every line break. It gives up with a zero-width pop as soon as
		// the line turns out to be ordinary code.
		"bol": {
			{Pattern: identifier + `:(?!:)`, Category: lexer.NameLabel},
			lexer.Include("line_start"),
		},
		"line_start": {
			lexer.Include("inline_whitespace"),
			{Pattern: `#[ \t]*if[ \t]+0\b`, Category: lexer.Comment, Transition: lexer.Push("if_0")},
			{Pattern: `#`, Category: lexer.CommentPreproc, Transition: lexer.Push("macro")},
			{Pattern: ``, Transition: lexer.Pop()},
		},

		"string": {
			{Pattern: `"`, Category: lexer.String, Transition: lexer.Pop()},
			{Pattern: `\\([\\abfnrtv"']|x[a-fA-F0-9]{2,4}|[0-7]{1,3})`, Category: lexer.StringEscape},
			{Pattern: `[^\\"\n]+`, Category: lexer.String},
			{Pattern: `\\\n`, Category: lexer.String},
			{Pattern: `\\`, Category: lexer.String},
			{Pattern: `(?=\n)`, Transition: lexer.Pop()},
		},

		"macro": {
			lexer.Include("include"),
			lexer.Include("inline_whitespace"),
			{Pattern: `[^/\n\\]+`, Category: lexer.CommentPreproc},
			{Pattern: `(?s)\\.`, Category: lexer.CommentPreproc},
			{Pattern: `//.*?$`, Category: lexer.CommentSingle},
			{Pattern: `/`, Category: lexer.CommentPreproc},
			{Pattern: `\n`, Category: lexer.CommentPreproc, Transition: lexer.Pop()},
		},
		"include": {
			{
				Pattern: `(include)([ \t]*)(<[^>\n]+>)([^\n]*)`,
				Action:  lexer.ByGroups(lexer.CommentPreproc, lexer.Text, lexer.CommentPreprocFile, lexer.CommentSingle),
			},
			{
				Pattern: `(include)([ \t]*)("[^"\n]+")([^\n]*)`,
				Action:  lexer.ByGroups(lexer.CommentPreproc, lexer.Text, lexer.CommentPreprocFile, lexer.CommentSingle),
			},
		},

		// if_0 skips a disabled block. #else and #elif end it without being
		// consumed so the line is lexed as a directive again.
		"if_0": {
			{Pattern: `^[ \t]*#[ \t]*if`, Category: lexer.Comment, Transition: lexer.Push("if_0_nested")},
			{Pattern: `(?=^[ \t]*#[ \t]*el(?:se|if))`, Transition: lexer.Pop()},
			{Pattern: `(?s)^[ \t]*#[ \t]*endif\b.*?(?:(?<!\\)\n|\z)`, Category: lexer.Comment, Transition: lexer.Pop()},
			lexer.Include("skip_lines"),
		},
		// if_0_nested skips a conditional inside a disabled block. Its
		// branches are all dead, so only #endif ends it.
		"if_0_nested": {
			{Pattern: `^[ \t]*#[ \t]*if`, Category: lexer.Comment, Transition: lexer.Push("if_0_nested")},
			{Pattern: `(?s)^[ \t]*#[ \t]*endif\b.*?(?:(?<!\\)\n|\z)`, Category: lexer.Comment, Transition: lexer.Pop()},
			lexer.Include("skip_lines"),
		},
		"skip_lines": {
			{Pattern: `.*?(?:\n|\z)`, Category: lexer.Comment},
		},
	}
}
