package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testVocabulary() *Vocabulary {
	return NewVocabulary(
		NewVocabularyCategory("keywords", Keyword, "if", "while", "sc_logic"),
		NewVocabularyCategory("classes", NameClass, "sc_logic", "sc_module"),
		NewVocabularyCategory("reserved", KeywordReserved, "operator", "while"),
	)
}

func TestVocabularyFirstCategoryWins(t *testing.T) {
	vocab := testVocabulary()

	cases := map[string]Category{
		"if":        Keyword,
		"sc_logic":  Keyword,
		"sc_module": NameClass,
		"while":     Keyword,
		"operator":  KeywordReserved,
	}
	for ident, want := range cases {
		got, ok := vocab.Classify(ident)
		require.True(t, ok, ident)
		require.Equal(t, want, got, ident)
	}

	_, ok := vocab.Classify("counter")
	require.False(t, ok)

	entry, ok := vocab.Lookup("sc_module")
	require.True(t, ok)
	require.Equal(t, "classes", entry.Name)
}

func TestVocabularyExtendCopies(t *testing.T) {
	vocab := testVocabulary()

	extended, unknown := vocab.Extend(map[string][]string{
		"classes":  {"my_bus"},
		"keywords": {"sc_module"},
		"typos":    {"x"},
		"aliens":   {"y"},
	})
	require.Equal(t, []string{"aliens", "typos"}, unknown)

	got, ok := extended.Classify("my_bus")
	require.True(t, ok)
	require.Equal(t, NameClass, got)

	// Adding to a higher-priority category changes the winner.
	got, _ = extended.Classify("sc_module")
	require.Equal(t, Keyword, got)

	_, ok = vocab.Classify("my_bus")
	require.False(t, ok, "original vocabulary must not change")
	got, _ = vocab.Classify("sc_module")
	require.Equal(t, NameClass, got)
}

func TestVocabularyCategoryWordsSorted(t *testing.T) {
	c := NewVocabularyCategory("types", Keyword, "int", "bool", "char", "bool")
	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"bool", "char", "int"}, c.Words())
	require.True(t, c.Contains("char"))
	require.False(t, c.Contains("Char"))
}

func TestClassifyActionFallsBack(t *testing.T) {
	action := Classify(testVocabulary(), Name)
	require.Equal(t, []Piece{{Category: KeywordReserved, Value: "operator"}}, action(Match{Text: "operator"}))
	require.Equal(t, []Piece{{Category: Name, Value: "fifo"}}, action(Match{Text: "fifo"}))
}

func TestCategoryHierarchy(t *testing.T) {
	require.Equal(t, Category("Literal.String"), StringEscape.Parent())
	require.Equal(t, Category(""), Text.Parent())
	require.True(t, CommentPreprocFile.In(Comment))
	require.True(t, Comment.In(Comment))
	require.False(t, Keyword.In(KeywordNamespace))
	require.False(t, Category("Commentary").In(Comment))

	seen := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		require.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}

func TestSplitTailAndByGroups(t *testing.T) {
	split := SplitTail(NameFunction, Punctuation, 1)
	require.Equal(t, []Piece{
		{Category: NameFunction, Value: "reset"},
		{Category: Punctuation, Value: "("},
	}, split(Match{Text: "reset("}))

	groups := ByGroups(CommentPreproc, Text, CommentPreprocFile)
	pieces := groups(Match{
		Text:   "include <a.h>",
		Groups: []string{"include <a.h>", "include", " ", "<a.h>"},
	})
	require.Equal(t, []Piece{
		{Category: CommentPreproc, Value: "include"},
		{Category: Text, Value: " "},
		{Category: CommentPreprocFile, Value: "<a.h>"},
	}, pieces)
}
