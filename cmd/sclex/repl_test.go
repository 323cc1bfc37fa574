package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgomes/sclex/lexer"
	"github.com/mgomes/sclex/systemc"
)

func newTestREPL() replModel {
	return newREPLModel(systemc.Lexer(), systemc.Vocabulary())
}

func enter(t *testing.T, m replModel, input string) (replModel, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(input)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return rm, cmd
}

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	rm, cmd := enter(t, newTestREPL(), ":quit")

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateNonQuitCommandDoesNotReturnCmd(t *testing.T) {
	rm, cmd := enter(t, newTestREPL(), ":help")

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestEnterTokenizesLine(t *testing.T) {
	rm, _ := enter(t, newTestREPL(), "sc_signal<bool> done;")

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if entry.isErr {
		t.Fatalf("unexpected error entry: %s", entry.output)
	}
	if entry.tokens[0].Value != "sc_signal" || entry.tokens[0].Category != lexer.NameClass {
		t.Fatalf("unexpected first token %+v", entry.tokens[0])
	}
	if len(rm.cmdHistory) != 1 || rm.cmdHistory[0] != "sc_signal<bool> done;" {
		t.Fatalf("line not recorded in command history: %v", rm.cmdHistory)
	}
}

func TestEnterReportsUnexpectedCharacters(t *testing.T) {
	rm, _ := enter(t, newTestREPL(), "x = @;")

	entry := rm.history[0]
	if !entry.isErr {
		t.Fatalf("expected error entry")
	}
	if entry.output != `unexpected character "@" at column 5` {
		t.Fatalf("unexpected output %q", entry.output)
	}
}

func TestStackCarriesAcrossLines(t *testing.T) {
	m := newTestREPL()
	m, _ = enter(t, m, "#if 0")
	m, _ = enter(t, m, "int dead;")

	dead := m.history[1].tokens
	if len(dead) != 1 || dead[0].Category != lexer.Comment || dead[0].Value != "int dead;\n" {
		t.Fatalf("disabled line should be one comment, got %+v", dead)
	}

	m, _ = enter(t, m, "#endif")
	m, _ = enter(t, m, "int live;")
	if got := m.history[3].tokens[0]; got.Category != lexer.KeywordReserved || got.Value != "int" {
		t.Fatalf("expected live code after #endif, got %+v", got)
	}

	m, _ = enter(t, m, "#if 0")
	m, _ = enter(t, m, ":reset")
	if strings.Join(m.stack, ",") != strings.Join(systemc.StartStack, ",") {
		t.Fatalf("reset should restore the start stack, got %v", m.stack)
	}
}

func TestClassifyCommand(t *testing.T) {
	rm, _ := enter(t, newTestREPL(), ":classify wait sc_in nothing_here")

	entry := rm.history[0]
	for _, want := range []string{
		"wait: Name.Function (functions)",
		"sc_in: Name.Class (classes)",
		"nothing_here: Name",
	} {
		if !strings.Contains(entry.output, want) {
			t.Fatalf("classify output missing %q: %q", want, entry.output)
		}
	}

	rm, _ = enter(t, newTestREPL(), ":classify")
	if !rm.history[0].isErr {
		t.Fatalf("expected usage error")
	}
}

func TestUnknownCommand(t *testing.T) {
	rm, _ := enter(t, newTestREPL(), ":bogus")
	if !rm.history[0].isErr || rm.history[0].output != "Unknown command: :bogus" {
		t.Fatalf("unexpected entry %+v", rm.history[0])
	}
}

func TestAutocompleteSingleMatch(t *testing.T) {
	m := newTestREPL()
	m.textInput.SetValue("  dont_initi")
	m = m.handleAutocomplete()
	if m.textInput.Value() != "  dont_initialize" {
		t.Fatalf("unexpected completion %q", m.textInput.Value())
	}
}

func TestAutocompleteListsMultipleMatches(t *testing.T) {
	m := newTestREPL()
	m.textInput.SetValue("SC_CT")
	m = m.handleAutocomplete()
	if len(m.history) != 1 || !strings.HasPrefix(m.history[0].output, "Completions: ") {
		t.Fatalf("expected completions entry, got %+v", m.history)
	}
	if m.history[0].output != "Completions: SC_CTHREAD, SC_CTHREAD_PROC_, SC_CTOR" {
		t.Fatalf("unexpected completions: %q", m.history[0].output)
	}
}

func TestViewRendersHistory(t *testing.T) {
	m := newTestREPL()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(replModel)
	m, _ = enter(t, m, "wait();")

	view := m.View()
	for _, want := range []string{"SystemC Tokenizer", "Name.Function", "token(s)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
