package main

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgomes/sclex/highlight"
	"github.com/mgomes/sclex/lexer"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	tokens []lexer.Token
	isErr  bool
}

// replModel tokenizes one line per entry. The state stack carries over
// between entries, so a line opening a disabled #if 0 block changes how
// the following lines scan.
type replModel struct {
	textInput   textinput.Model
	def         *lexer.Definition
	vocab       *lexer.Vocabulary
	theme       highlight.Theme
	stack       []string
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showTokens  bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlT key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous line"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next line"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "tokenize"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlT: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle tokens"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLCommand(vp *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Tokenize SystemC interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			def, vocab, err := loadDefinition(vp)
			if err != nil {
				return err
			}
			return runREPL(def, vocab)
		},
	}
}

func newREPLModel(def *lexer.Definition, vocab *lexer.Vocabulary) replModel {
	ti := textinput.New()
	ti.Placeholder = "type a line of SystemC..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "sclex> "

	return replModel{
		textInput:  ti,
		def:        def,
		vocab:      vocab,
		theme:      highlight.DefaultTheme(nil),
		stack:      def.Start(),
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
		showTokens: true,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlT):
			m.showTokens = !m.showTokens
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := m.textInput.Value()
			if strings.TrimSpace(input) == "" {
				return m, nil
			}

			if strings.HasPrefix(strings.TrimSpace(input), ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(strings.TrimSpace(input))
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			m.history = append(m.history, m.tokenize(input))
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":tokens", ":t":
		m.showTokens = !m.showTokens
	case ":stack", ":s":
		m.history = append(m.history, historyEntry{
			input:  input,
			output: strings.Join(m.stack, " > "),
		})
	case ":reset", ":r":
		m.stack = m.def.Start()
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "State stack reset",
		})
	case ":classify", ":k":
		m.history = append(m.history, m.classify(input, parts[1:]))
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) classify(input string, words []string) historyEntry {
	if len(words) == 0 {
		return historyEntry{input: input, output: "usage: :classify <identifier>...", isErr: true}
	}
	lines := make([]string, 0, len(words))
	for _, word := range words {
		entry, ok := m.vocab.Lookup(word)
		if !ok {
			lines = append(lines, fmt.Sprintf("%s: %s", word, lexer.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", word, entry.Category, entry.Name))
	}
	return historyEntry{input: input, output: strings.Join(lines, "\n    ")}
}

// tokenize scans one entered line, resuming from the stack the previous
// line left behind.
func (m *replModel) tokenize(input string) historyEntry {
	scanner, err := m.def.ScannerFrom(input+"\n", m.stack...)
	if err != nil {
		m.stack = m.def.Start()
		return historyEntry{input: input, output: err.Error(), isErr: true}
	}

	var tokens []lexer.Token
	for tok := range scanner.All() {
		tokens = append(tokens, tok)
	}
	m.stack = scanner.Stack()

	entry := historyEntry{input: input, tokens: tokens}
	for _, tok := range tokens {
		if tok.Category == lexer.Error {
			entry.isErr = true
			entry.output = fmt.Sprintf("unexpected character %q at column %d", tok.Value, tok.Pos.Column)
			break
		}
	}
	if entry.output == "" {
		entry.output = fmt.Sprintf("%d token(s), state %s", len(tokens), scanner.State())
	}
	return entry
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}

	words := strings.Fields(input)
	if len(words) == 0 || strings.HasSuffix(input, " ") {
		return m
	}
	lastWord := words[len(words)-1]

	seen := make(map[string]struct{})
	var completions []string
	for _, entry := range m.vocab.Categories() {
		for _, word := range entry.Words() {
			if !strings.HasPrefix(word, lastWord) {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			completions = append(completions, word)
		}
	}
	sort.Strings(completions)

	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		const shown = 12
		listed := completions
		if len(listed) > shown {
			listed = append(listed[:shown:shown], fmt.Sprintf("... %d more", len(completions)-shown))
		}
		m.history = append(m.history, historyEntry{
			output: "Completions: " + strings.Join(listed, ", "),
		})
	}

	return m
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("SystemC Tokenizer")
	state := mutedStyle.Render(strings.Join(m.stack, " > "))
	b.WriteString(header + " " + state + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = max(len(m.history)-availableHeight, 0)
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		switch {
		case entry.tokens != nil:
			b.WriteString(mutedStyle.Render("  › ") + strings.TrimSuffix(highlight.String(slices.Values(entry.tokens), m.theme), "\n") + "\n")
		case entry.input != "":
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		if m.showTokens && len(entry.tokens) > 0 {
			b.WriteString(renderTokens(entry.tokens))
		}
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel(m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+t") + helpDescStyle.Render(" tokens  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderTokens(tokens []lexer.Token) string {
	var b strings.Builder
	categoryStyle := lipgloss.NewStyle().Foreground(highlightColor)
	for _, tok := range tokens {
		if tok.Category == lexer.Text && strings.TrimSpace(tok.Value) == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s %s\n", categoryStyle.Render(fmt.Sprintf("%-24s", tok.Category)), mutedStyle.Render(fmt.Sprintf("%q", tok.Value)))
	}
	return b.String()
}

func renderHelpPanel(width int) string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate line history"},
		{"Tab", "Complete vocabulary words"},
		{"Enter", "Tokenize line"},
		{":help", "Toggle this help"},
		{":tokens", "Toggle token listing"},
		{":classify", "Show how identifiers are classified"},
		{":stack", "Show the state stack"},
		{":reset", "Reset the state stack"},
		{":clear", "Clear history"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-10s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	style := borderStyle
	if width > 4 {
		style = style.MaxWidth(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func runREPL(def *lexer.Definition, vocab *lexer.Vocabulary) error {
	p := tea.NewProgram(newREPLModel(def, vocab), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
