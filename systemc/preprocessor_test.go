package systemc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgomes/sclex/lexer"
)

func TestIncludeForms(t *testing.T) {
	requireScan(t, "#include <systemc.h>\n", []tok{
		{lexer.CommentPreproc, "#"},
		{lexer.CommentPreproc, "include"},
		{lexer.Text, " "},
		{lexer.CommentPreprocFile, "<systemc.h>"},
		{lexer.CommentPreproc, "\n"},
	})
	requireScan(t, "#include\"tlm.h\" // transport\nx", []tok{
		{lexer.CommentPreproc, "#"},
		{lexer.CommentPreproc, "include"},
		{lexer.CommentPreprocFile, `"tlm.h"`},
		{lexer.CommentSingle, " // transport"},
		{lexer.CommentPreproc, "\n"},
		{lexer.Name, "x"},
	})
}

func TestMacroContinuation(t *testing.T) {
	requireScan(t, "#define W 8 \\\n  + 1\nx", []tok{
		{lexer.CommentPreproc, "#"},
		{lexer.CommentPreproc, "define W 8 "},
		{lexer.Text, "\\\n"},
		{lexer.Text, "  "},
		{lexer.CommentPreproc, "+ 1"},
		{lexer.CommentPreproc, "\n"},
		{lexer.Name, "x"},
	})
	requireScan(t, "#define A 1 // one\n", []tok{
		{lexer.CommentPreproc, "#"},
		{lexer.CommentPreproc, "define A 1 "},
		{lexer.CommentSingle, "// one"},
		{lexer.CommentPreproc, "\n"},
	})
}

func TestDirectiveOnlyAtLineStart(t *testing.T) {
	requireScan(t, "x # y", []tok{
		{lexer.Name, "x"},
		{lexer.Text, " "},
		{lexer.Error, "#"},
		{lexer.Text, " "},
		{lexer.Name, "y"},
	})
	requireScan(t, "x;\n  #pragma once\n", []tok{
		{lexer.Name, "x"},
		{lexer.Punctuation, ";"},
		{lexer.Text, "\n"},
		{lexer.Text, "  "},
		{lexer.CommentPreproc, "#"},
		{lexer.CommentPreproc, "pragma once"},
		{lexer.CommentPreproc, "\n"},
	})
}

func TestDisabledBlockEndsAtEndif(t *testing.T) {
	requireScan(t, "#if 0\nint x = 1;\n#endif\ny", []tok{
		{lexer.Comment, "#if 0"},
		{lexer.Comment, "\n"},
		{lexer.Comment, "int x = 1;\n"},
		{lexer.Comment, "#endif\n"},
		{lexer.Name, "y"},
	})
}

func TestDisabledBlockTracksNesting(t *testing.T) {
	source := "#if 0\n" +
		"a\n" +
		"#ifdef X\n" +
		"b\n" +
		"#else\n" +
		"c\n" +
		"#endif\n" +
		"d\n" +
		"#endif\n" +
		"e\n"

	tokens := Tokens(source)
	require.Equal(t, source, join(tokens))

	var resumed int
	for idx, tk := range tokens {
		if tk.Category != lexer.Comment {
			resumed = idx
			break
		}
	}
	require.Equal(t, lexer.Name, tokens[resumed].Category)
	require.Equal(t, "e", tokens[resumed].Value)
	require.Equal(t, 10, tokens[resumed].Pos.Line)

	// The inner #endif closes only the nested level.
	requireScan(t, "#if 0\n#if 1\n#endif\nd\n#endif\n", []tok{
		{lexer.Comment, "#if 0"},
		{lexer.Comment, "\n"},
		{lexer.Comment, "#if"},
		{lexer.Comment, " 1\n"},
		{lexer.Comment, "#endif\n"},
		{lexer.Comment, "d\n"},
		{lexer.Comment, "#endif\n"},
	})
}

func TestDisabledBlockElseReturnsToCaller(t *testing.T) {
	requireScan(t, "#if 0\na\n#else\nb\n#endif\n", []tok{
		{lexer.Comment, "#if 0"},
		{lexer.Comment, "\n"},
		{lexer.Comment, "a\n"},
		{lexer.CommentPreproc, "#"},
		{lexer.CommentPreproc, "else"},
		{lexer.CommentPreproc, "\n"},
		{lexer.Name, "b"},
		{lexer.Text, "\n"},
		{lexer.CommentPreproc, "#"},
		{lexer.CommentPreproc, "endif"},
		{lexer.CommentPreproc, "\n"},
	})
}

func TestDisabledBlockEndifContinuationAndEOF(t *testing.T) {
	requireScan(t, "#if 0\n#endif \\\n  tail\nx", []tok{
		{lexer.Comment, "#if 0"},
		{lexer.Comment, "\n"},
		{lexer.Comment, "#endif \\\n  tail\n"},
		{lexer.Name, "x"},
	})
	requireScan(t, "#if 0\nx\n#endif", []tok{
		{lexer.Comment, "#if 0"},
		{lexer.Comment, "\n"},
		{lexer.Comment, "x\n"},
		{lexer.Comment, "#endif"},
	})
	// An unterminated block swallows the rest of the input.
	requireScan(t, "#if 0\nx", []tok{
		{lexer.Comment, "#if 0"},
		{lexer.Comment, "\n"},
		{lexer.Comment, "x"},
	})
}
