package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgomes/sclex/internal/logging/logfields"
	"github.com/mgomes/sclex/lexer"
)

// semanticTokenTypes is the legend announced in initialize. Indexes into it
// are what textDocument/semanticTokens/full encodes.
var semanticTokenTypes = []string{
	"comment",
	"keyword",
	"string",
	"number",
	"operator",
	"function",
	"class",
	"macro",
	"namespace",
	"label",
	"variable",
}

type lspInboundMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type lspResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lspOutboundMessage struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      *json.RawMessage  `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  any               `json:"params,omitempty"`
	Result  any               `json:"result,omitempty"`
	Error   *lspResponseError `json:"error,omitempty"`
}

type lspDidOpenParams struct {
	TextDocument struct {
		URI  string `json:"uri"`
		Text string `json:"text"`
	} `json:"textDocument"`
}

type lspDidChangeParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
}

type lspDidCloseParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
}

type lspTextDocumentParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
}

type lspTextDocumentPositionParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position struct {
		Line      int `json:"line"`
		Character int `json:"character"`
	} `json:"position"`
}

type lspServer struct {
	reader *bufio.Reader
	writer *bufio.Writer
	def    *lexer.Definition
	vocab  *lexer.Vocabulary
	docs   map[string]string
}

func newLSPCommand(vp *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run a language server over standard input and output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, vocab, err := loadDefinition(vp)
			if err != nil {
				return err
			}
			return runLSP(cmd.InOrStdin(), cmd.OutOrStdout(), def, vocab)
		},
	}
}

func newLSPServer(def *lexer.Definition, vocab *lexer.Vocabulary) *lspServer {
	return &lspServer{
		def:   def,
		vocab: vocab,
		docs:  make(map[string]string),
	}
}

func runLSP(in io.Reader, out io.Writer, def *lexer.Definition, vocab *lexer.Vocabulary) error {
	server := newLSPServer(def, vocab)
	server.reader = bufio.NewReader(in)
	server.writer = bufio.NewWriter(out)
	return server.serve()
}

func (s *lspServer) serve() error {
	for {
		payload, err := s.readPayload()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var incoming lspInboundMessage
		if err := json.Unmarshal(payload, &incoming); err != nil {
			log.WithError(err).Debug("Dropping malformed LSP message")
			continue
		}
		log.WithField(logfields.Method, incoming.Method).Debug("Handling LSP message")

		messages := s.handleMessage(incoming)
		for _, msg := range messages {
			if err := s.writePayload(msg); err != nil {
				return err
			}
		}

		if incoming.Method == "exit" {
			return nil
		}
	}
}

func (s *lspServer) handleMessage(incoming lspInboundMessage) []lspOutboundMessage {
	switch incoming.Method {
	case "initialize":
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"capabilities": map[string]any{
						"textDocumentSync": 1,
						"hoverProvider":    true,
						"completionProvider": map[string]any{
							"resolveProvider": false,
						},
						"semanticTokensProvider": map[string]any{
							"legend": map[string]any{
								"tokenTypes":     semanticTokenTypes,
								"tokenModifiers": []string{},
							},
							"full": true,
						},
					},
					"serverInfo": map[string]any{
						"name": "sclex",
					},
				},
			},
		}
	case "initialized":
		return nil
	case "shutdown":
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{{JSONRPC: "2.0", ID: incoming.ID, Result: nil}}
	case "exit":
		return nil
	case "textDocument/didOpen":
		var params lspDidOpenParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		s.docs[params.TextDocument.URI] = params.TextDocument.Text
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, params.TextDocument.Text),
		}
	case "textDocument/didChange":
		var params lspDidChangeParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		if len(params.ContentChanges) == 0 {
			return nil
		}
		latest := params.ContentChanges[len(params.ContentChanges)-1].Text
		s.docs[params.TextDocument.URI] = latest
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, latest),
		}
	case "textDocument/didClose":
		var params lspDidCloseParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		delete(s.docs, params.TextDocument.URI)
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				Method:  "textDocument/publishDiagnostics",
				Params: map[string]any{
					"uri":         params.TextDocument.URI,
					"diagnostics": []map[string]any{},
				},
			},
		}
	case "textDocument/completion":
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"isIncomplete": false,
					"items":        completionItems(s.vocab),
				},
			},
		}
	case "textDocument/hover":
		if incoming.ID == nil {
			return nil
		}
		var params lspTextDocumentPositionParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return []lspOutboundMessage{invalidParams(incoming.ID, "invalid hover params")}
		}
		source := s.docs[params.TextDocument.URI]
		word := wordAtPosition(source, params.Position.Line, params.Position.Character)
		if word == "" {
			return []lspOutboundMessage{
				{JSONRPC: "2.0", ID: incoming.ID, Result: nil},
			}
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"contents": map[string]any{
						"kind":  "markdown",
						"value": hoverText(s.vocab, word),
					},
				},
			},
		}
	case "textDocument/semanticTokens/full":
		if incoming.ID == nil {
			return nil
		}
		var params lspTextDocumentParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return []lspOutboundMessage{invalidParams(incoming.ID, "invalid semantic tokens params")}
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"data": semanticTokens(s.def, s.docs[params.TextDocument.URI]),
				},
			},
		}
	default:
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Error: &lspResponseError{
					Code:    -32601,
					Message: "method not found",
				},
			},
		}
	}
}

func invalidParams(id *json.RawMessage, message string) lspOutboundMessage {
	return lspOutboundMessage{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &lspResponseError{Code: -32602, Message: message},
	}
}

func (s *lspServer) publishDiagnostics(uri, source string) lspOutboundMessage {
	return lspOutboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: map[string]any{
			"uri":         uri,
			"diagnostics": diagnosticsForSource(s.def, source),
		},
	}
}

func diagnosticsForSource(def *lexer.Definition, source string) []map[string]any {
	warnings := analyzeTokens(def.All(source))
	lines := strings.Split(source, "\n")
	out := make([]map[string]any, 0, len(warnings))
	for _, warning := range warnings {
		line := max(0, warning.Pos.Line-1)
		out = append(out, newDiagnostic(line, utf16Column(lines, line, warning.Pos.Column-1), warning.Message))
	}
	return out
}

// utf16Column converts a rune column on lines[line] to UTF-16 code units.
func utf16Column(lines []string, line, column int) int {
	if line >= len(lines) {
		return max(0, column)
	}
	units := 0
	for idx, r := range []rune(lines[line]) {
		if idx >= column {
			break
		}
		units += utf16Len(r)
	}
	return units
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func newDiagnostic(line, character int, message string) map[string]any {
	return map[string]any{
		"range": map[string]any{
			"start": map[string]any{
				"line":      line,
				"character": character,
			},
			"end": map[string]any{
				"line":      line,
				"character": character + 1,
			},
		},
		"severity": 1,
		"source":   "sclex",
		"message":  message,
	}
}

func completionItems(vocab *lexer.Vocabulary) []map[string]any {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, entry := range vocab.Categories() {
		for _, word := range entry.Words() {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			labels = append(labels, word)
		}
	}
	sort.Strings(labels)

	items := make([]map[string]any, 0, len(labels))
	for _, label := range labels {
		entry, _ := vocab.Lookup(label)
		items = append(items, map[string]any{
			"label":  label,
			"kind":   completionKind(entry.Category),
			"detail": entry.Name,
		})
	}
	return items
}

func completionKind(category lexer.Category) int {
	switch {
	case category.In(lexer.Keyword):
		return 14 // Keyword
	case category == lexer.NameClass:
		return 7 // Class
	default:
		return 3 // Function
	}
}

func hoverText(vocab *lexer.Vocabulary, word string) string {
	entry, ok := vocab.Lookup(word)
	if !ok {
		return fmt.Sprintf("`%s`\n\n%s", word, lexer.Name)
	}
	return fmt.Sprintf("`%s`\n\n%s from the SystemC %s table", word, entry.Category, entry.Name)
}

func semanticTokenType(category lexer.Category) (int, bool) {
	var name string
	switch {
	case category.In(lexer.CommentPreproc):
		name = "macro"
	case category.In(lexer.Comment):
		name = "comment"
	case category == lexer.KeywordNamespace:
		name = "namespace"
	case category.In(lexer.Keyword):
		name = "keyword"
	case category.In(lexer.String):
		name = "string"
	case category.In(lexer.Category("Literal.Number")):
		name = "number"
	case category == lexer.Operator:
		name = "operator"
	case category == lexer.NameFunction, category == lexer.NameBuiltin:
		name = "function"
	case category == lexer.NameClass:
		name = "class"
	case category == lexer.NameLabel:
		name = "label"
	case category == lexer.Name:
		name = "variable"
	default:
		return 0, false
	}
	for idx, candidate := range semanticTokenTypes {
		if candidate == name {
			return idx, true
		}
	}
	return 0, false
}

// semanticTokens encodes source in the LSP relative format: five integers
// per token, with positions in UTF-16 code units. Tokens spanning lines
// are split at each newline.
func semanticTokens(def *lexer.Definition, source string) []int {
	data := make([]int, 0)
	line, char := 0, 0
	prevLine, prevChar := 0, 0

	emit := func(startLine, startChar, length, tokenType int) {
		if length == 0 {
			return
		}
		deltaLine := startLine - prevLine
		deltaChar := startChar
		if deltaLine == 0 {
			deltaChar = startChar - prevChar
		}
		data = append(data, deltaLine, deltaChar, length, tokenType, 0)
		prevLine, prevChar = startLine, startChar
	}

	for tok := range def.All(source) {
		tokenType, ok := semanticTokenType(tok.Category)
		startLine, startChar, length := line, char, 0
		for _, r := range tok.Value {
			if r == '\n' {
				if ok {
					emit(startLine, startChar, length, tokenType)
				}
				line++
				char = 0
				startLine, startChar, length = line, 0, 0
				continue
			}
			n := utf16Len(r)
			char += n
			length += n
		}
		if ok {
			emit(startLine, startChar, length, tokenType)
		}
	}
	return data
}

func wordAtPosition(source string, line, character int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}

	runes := []rune(lines[line])
	if len(runes) == 0 {
		return ""
	}

	// character counts UTF-16 code units.
	cursor := len(runes)
	units := 0
	for idx, r := range runes {
		if units >= character {
			cursor = idx
			break
		}
		units += utf16Len(r)
	}
	if cursor == len(runes) {
		cursor--
	}
	if !isWordRune(runes[cursor]) {
		if cursor > 0 && isWordRune(runes[cursor-1]) {
			cursor--
		} else {
			return ""
		}
	}

	start := cursor
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := cursor
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (s *lspServer) readPayload() ([]byte, error) {
	contentLength := -1
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, errors.New("missing Content-Length header")
	}
	payload := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *lspServer) writePayload(msg lspOutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	return s.writer.Flush()
}
