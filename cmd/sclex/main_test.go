package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/mgomes/sclex/internal/logging"
)

func TestRunCLIHelp(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "help"})
	})
	if err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
	for _, name := range []string{"tokens", "highlight", "analyze", "guess", "repl", "lsp", "config"} {
		if !strings.Contains(out, name) {
			t.Fatalf("help output missing %q: %q", name, out)
		}
	}
}

func TestRunCLIUnknownCommand(t *testing.T) {
	err := runCLI([]string{"sclex", "unknown"})
	if err == nil {
		t.Fatalf("expected unknown command error")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"sclex"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandText(t *testing.T) {
	path := writeSource(t, "top.cpp", "int x;\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "tokens", path})
	})
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	want := "1:1\tKeyword.Reserved\t\"int\"\n" +
		"1:4\tText\t\" \"\n" +
		"1:5\tName\t\"x\"\n" +
		"1:6\tPunctuation\t\";\"\n" +
		"1:7\tText\t\"\\n\"\n"
	if out != want {
		t.Fatalf("unexpected tokens output:\n%s\nwant:\n%s", out, want)
	}
}

func TestTokensCommandJSON(t *testing.T) {
	path := writeSource(t, "top.cpp", "wait(1);")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "tokens", "--format", "json", path})
	})
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 JSON records, got %d: %q", len(lines), out)
	}
	var first tokenRecord
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	want := tokenRecord{File: path, Line: 1, Column: 1, Offset: 0, Length: 4, Category: "Name.Function", Value: "wait"}
	if first != want {
		t.Fatalf("unexpected first record %+v, want %+v", first, want)
	}
}

func TestTokensCommandRejectsUnknownFormat(t *testing.T) {
	path := writeSource(t, "top.cpp", "x")
	err := runCLI([]string{"sclex", "tokens", "--format", "xml", path})
	if err == nil || !strings.Contains(err.Error(), `unknown format "xml"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandRequiresPath(t *testing.T) {
	err := runCLI([]string{"sclex", "tokens"})
	if err == nil || !strings.Contains(err.Error(), "path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandUsesVocabularyOverlay(t *testing.T) {
	overlay := writeSource(t, "vocab.yaml", "classes: [my_bus]\n")
	path := writeSource(t, "top.cpp", "my_bus")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "--vocabulary", overlay, "tokens", path})
	})
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	if !strings.Contains(out, "1:1\tName.Class\t\"my_bus\"") {
		t.Fatalf("overlay word not classified: %q", out)
	}
}

func TestBadVocabularyOverlayFails(t *testing.T) {
	overlay := writeSource(t, "vocab.yaml", "widgets: [x]\n")
	path := writeSource(t, "top.cpp", "x")

	err := runCLI([]string{"sclex", "--vocabulary", overlay, "tokens", path})
	if err == nil || !strings.Contains(err.Error(), "widgets") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHighlightCommandPlainOutput(t *testing.T) {
	source := "SC_MODULE(top) {\n\tsc_in<bool> clk; // clock\n};\n"
	path := writeSource(t, "top.cpp", source)

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "highlight", path})
	})
	if err != nil {
		t.Fatalf("highlight failed: %v", err)
	}
	if out != source {
		t.Fatalf("plain highlight should reproduce the source, got %q", out)
	}
}

func TestHighlightCommandForcedColor(t *testing.T) {
	path := writeSource(t, "top.cpp", "wait();\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "highlight", "--color", path})
	})
	if err != nil {
		t.Fatalf("highlight failed: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", out)
	}
}

func TestHighlightCommandRejectsUnknownThemeKey(t *testing.T) {
	config := writeSource(t, "sclex.yaml", "theme:\n  widget: \"1\"\n")
	path := writeSource(t, "top.cpp", "x\n")

	err := runCLI([]string{"sclex", "--config", config, "highlight", path})
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGuessCommand(t *testing.T) {
	header := writeSource(t, "bus.h", "namespace bus {\n}\n")
	plain := writeSource(t, "util.h", "int f();\n")
	text := writeSource(t, "notes.txt", "hello\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "guess", header, plain, text})
	})
	if err != nil {
		t.Fatalf("guess failed: %v", err)
	}
	want := header + "\t1.00\tyes\n" + plain + "\t0.25\tno\n" + text + "\t0.00\tno\n"
	if out != want {
		t.Fatalf("unexpected guess output:\n%s\nwant:\n%s", out, want)
	}
}

func TestGuessCommandMimetypeAndMissingFile(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "guess", "--mimetype", "text/x-c++src; charset=utf-8", "missing.txt"})
	})
	if err != nil {
		t.Fatalf("guess failed: %v", err)
	}
	if out != "missing.txt\t1.00\tyes\n" {
		t.Fatalf("unexpected guess output: %q", out)
	}
}

func TestConfigViewShowsMergedSettings(t *testing.T) {
	config := writeSource(t, "sclex.yaml", "theme:\n  keyword: \"33\"\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "--config", config, "config", "view"})
	})
	if err != nil {
		t.Fatalf("config view failed: %v", err)
	}
	for _, want := range []string{"keyword: \"33\"", "log-format: text", "debug: false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config view missing %q:\n%s", want, out)
		}
	}
}

func TestConfigGet(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "--log-format", "json", "config", "get", "log-format"})
	})
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "json" {
		t.Fatalf("unexpected value %q", out)
	}
	t.Cleanup(func() { logging.SetLogFormat(logging.LogFormatText) })

	err = runCLI([]string{"sclex", "config", "get", "nope"})
	if err == nil || !strings.Contains(err.Error(), `unknown key "nope"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnvironmentBindsDashedKeys(t *testing.T) {
	t.Setenv("SCLEX_LOG_FORMAT", "json")
	t.Cleanup(func() { logging.SetLogFormat(logging.LogFormatText) })

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "config", "get", "log-format"})
	})
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "json" {
		t.Fatalf("expected SCLEX_LOG_FORMAT to set log-format, got %q", out)
	}
}

func TestRootCommandBindsGlobalFlags(t *testing.T) {
	cmd, err := newRootCommand()
	if err != nil {
		t.Fatalf("newRootCommand failed: %v", err)
	}
	for _, name := range []string{keyConfig, keyDebug, keyLogFormat, keyVocabulary} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("missing global flag %q", name)
		}
	}
}

func TestMissingConfigFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	err := runCLI([]string{"sclex", "--config", missing, "config", "view"})
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDebugFlagRaisesLogLevel(t *testing.T) {
	t.Cleanup(func() { logging.SetLogLevel(logging.DefaultLogLevel) })

	path := writeSource(t, "top.cpp", "x")
	if _, err := captureStdout(t, func() error {
		return runCLI([]string{"sclex", "-D", "tokens", path})
	}); err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	if logging.DefaultLogger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logging.DefaultLogger.GetLevel())
	}
}

func writeSource(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		defer close(done)
		_, _ = io.Copy(&buf, r)
	}()

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig
	<-done
	_ = r.Close()
	return buf.String(), runErr
}
