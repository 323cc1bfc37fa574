// Package highlight renders token streams as styled terminal text.
package highlight

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgomes/sclex/lexer"
)

// Theme maps token categories to styles. A category without its own style
// uses its nearest styled ancestor; categories with none are written
// unstyled.
type Theme struct {
	renderer *lipgloss.Renderer
	styles   map[lexer.Category]lipgloss.Style
}

// NewTheme returns an empty theme rendering through r. A nil r uses the
// default renderer.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{renderer: r, styles: make(map[lexer.Category]lipgloss.Style)}
}

// DefaultTheme returns the built-in palette.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	theme := NewTheme(r)
	fg := func(color string) lipgloss.Style {
		return theme.renderer.NewStyle().Foreground(lipgloss.Color(color))
	}

	theme.styles[lexer.Comment] = fg("244").Italic(true)
	theme.styles[lexer.CommentPreproc] = fg("135")
	theme.styles[lexer.CommentPreprocFile] = fg("142")
	theme.styles[lexer.Keyword] = fg("204").Bold(true)
	theme.styles[lexer.KeywordNamespace] = fg("170")
	theme.styles[lexer.KeywordReserved] = fg("204")
	theme.styles[lexer.NameFunction] = fg("81")
	theme.styles[lexer.NameClass] = fg("114").Bold(true)
	theme.styles[lexer.NameBuiltin] = fg("73")
	theme.styles[lexer.NameLabel] = fg("214")
	theme.styles[lexer.String] = fg("186")
	theme.styles[lexer.StringEscape] = fg("215")
	theme.styles[lexer.Category("Literal.Number")] = fg("141")
	theme.styles[lexer.Operator] = fg("252")
	theme.styles[lexer.Error] = fg("196").Underline(true)
	return theme
}

// Renderer returns the renderer the theme's styles were created with.
func (t Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// With returns a copy of t with category styled as style.
func (t Theme) With(category lexer.Category, style lipgloss.Style) Theme {
	out := Theme{renderer: t.renderer, styles: maps.Clone(t.styles)}
	if out.styles == nil {
		out.styles = make(map[lexer.Category]lipgloss.Style)
	}
	out.styles[category] = style
	return out
}

// WithColors returns a copy of t with foreground colors replaced. Keys
// name categories case-insensitively, with "." or "_" between parts
// ("name_function" is Name.Function). Values are lipgloss colors.
func (t Theme) WithColors(colors map[string]string) (Theme, error) {
	byKey := make(map[string]lexer.Category, len(lexer.Categories))
	for _, category := range lexer.Categories {
		byKey[categoryKey(string(category))] = category
		for parent := category.Parent(); parent != ""; parent = parent.Parent() {
			byKey[categoryKey(string(parent))] = parent
		}
	}

	keys := make([]string, 0, len(colors))
	for key := range colors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := t
	for _, key := range keys {
		category, ok := byKey[categoryKey(key)]
		if !ok {
			return t, fmt.Errorf("highlight: unknown category %q", key)
		}
		style, _ := out.Style(category)
		out = out.With(category, style.Foreground(lipgloss.Color(colors[key])))
	}
	return out, nil
}

func categoryKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", ".")
}

// Style resolves the style for category, walking up its ancestors.
func (t Theme) Style(category lexer.Category) (lipgloss.Style, bool) {
	for c := category; c != ""; c = c.Parent() {
		if style, ok := t.styles[c]; ok {
			return style, true
		}
	}
	return t.renderer.NewStyle(), false
}

// Render writes tokens to w styled by theme. Line breaks and tabs are
// written as they appear in the source.
func Render(w io.Writer, tokens iter.Seq[lexer.Token], theme Theme) error {
	for tok := range tokens {
		style, styled := theme.Style(tok.Category)
		if !styled {
			if _, err := io.WriteString(w, tok.Value); err != nil {
				return err
			}
			continue
		}
		style = style.TabWidth(lipgloss.NoTabConversion)

		lines := strings.Split(tok.Value, "\n")
		for idx, line := range lines {
			if idx > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, style.Render(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders tokens with theme into a string.
func String(tokens iter.Seq[lexer.Token], theme Theme) string {
	var b strings.Builder
	_ = Render(&b, tokens, theme)
	return b.String()
}
