package highlight

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/mgomes/sclex/systemc"
)

const source = "#include <systemc.h>\n\nSC_MODULE(top) {\n\tsc_in<bool> clk; // clock\n\tvoid run() { wait(1.5, SC_NS); @ }\n};\n"

func plainRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

func TestRenderWithoutColorsReproducesSource(t *testing.T) {
	out := String(systemc.Lexer().All(source), DefaultTheme(plainRenderer()))
	require.Equal(t, source, out)
}

func TestRenderColorsTokens(t *testing.T) {
	out := String(systemc.Lexer().All(source), DefaultTheme(colorRenderer()))
	require.Contains(t, out, "\x1b[")
	require.Equal(t, source, ansi.Strip(out))
	require.Equal(t, strings.Count(source, "\n"), strings.Count(out, "\n"))
	require.Equal(t, strings.Count(source, "\t"), strings.Count(out, "\t"))
}

func TestStyleFallsBackToAncestor(t *testing.T) {
	theme := DefaultTheme(plainRenderer())

	style, ok := theme.Style("Literal.Number.Hex")
	require.True(t, ok)
	require.Equal(t, lipgloss.Color("141"), style.GetForeground())

	style, ok = theme.Style("Comment.Single")
	require.True(t, ok)
	require.True(t, style.GetItalic())

	_, ok = theme.Style("Punctuation")
	require.False(t, ok)
}

func TestWithColors(t *testing.T) {
	base := DefaultTheme(plainRenderer())
	theme, err := base.WithColors(map[string]string{
		"name_function":  "#00ff00",
		"Literal.Number": "12",
		"punctuation":    "7",
	})
	require.NoError(t, err)

	style, _ := theme.Style("Name.Function")
	require.Equal(t, lipgloss.Color("#00ff00"), style.GetForeground())
	style, _ = theme.Style("Literal.Number.Float")
	require.Equal(t, lipgloss.Color("12"), style.GetForeground())
	_, ok := theme.Style("Punctuation")
	require.True(t, ok)

	// The original theme is unchanged.
	style, _ = base.Style("Name.Function")
	require.Equal(t, lipgloss.Color("81"), style.GetForeground())

	_, err = base.WithColors(map[string]string{"nonsense": "1"})
	require.ErrorContains(t, err, `unknown category "nonsense"`)
}
