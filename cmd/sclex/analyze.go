package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgomes/sclex/internal/logging/logfields"
	"github.com/mgomes/sclex/lexer"
)

type lintWarning struct {
	Pos     lexer.Position
	Message string
}

var closers = map[string]string{")": "(", "]": "[", "}": "{"}

func newAnalyzeCommand(vp *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <path>...",
		Short: "Report lexical problems in SystemC sources",
		Long: "Report lexical problems in SystemC sources: characters no rule accepts, " +
			"unterminated strings and comments, and unbalanced brackets. Directories are searched recursively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), vp, args)
		},
	}
}

func runAnalyze(out io.Writer, vp *viper.Viper, args []string) error {
	if len(args) == 0 {
		return errors.New("sclex analyze: path required")
	}
	files, err := collectSourceFiles(args)
	if err != nil {
		return err
	}
	def, _, err := loadDefinition(vp)
	if err != nil {
		return err
	}

	issues := 0
	for _, path := range files {
		source, err := readSource(path, nil)
		if err != nil {
			return err
		}
		warnings := analyzeTokens(def.All(source))
		log.WithFields(logrus.Fields{
			logfields.File:  path,
			logfields.Count: len(warnings),
		}).Debug("Analyzed source")
		for _, warning := range warnings {
			fmt.Fprintf(out, "%s:%d:%d: %s\n", path, warning.Pos.Line, warning.Pos.Column, warning.Message)
		}
		issues += len(warnings)
	}

	if issues == 0 {
		fmt.Fprintln(out, "No issues found")
		return nil
	}
	return fmt.Errorf("analysis found %d issue(s)", issues)
}

func analyzeTokens(tokens iter.Seq[lexer.Token]) []lintWarning {
	warnings := make([]lintWarning, 0)
	warn := func(pos lexer.Position, format string, args ...any) {
		warnings = append(warnings, lintWarning{Pos: pos, Message: fmt.Sprintf(format, args...)})
	}

	var (
		open     []lexer.Token
		inString bool
		quote    lexer.Token
	)
	for tok := range tokens {
		if inString {
			switch {
			case tok.Category == lexer.String && tok.Value == `"`:
				inString = false
				continue
			case tok.Category.In(lexer.String):
				continue
			default:
				warn(quote.Pos, "unterminated string literal")
				inString = false
			}
		}

		switch {
		case tok.Category == lexer.Error:
			warn(tok.Pos, "unexpected character %q", tok.Value)
		case tok.Category == lexer.String && strings.HasSuffix(tok.Value, `"`):
			inString = true
			quote = tok
		case tok.Category == lexer.CommentMultiline && !commentClosed(tok.Value):
			warn(tok.Pos, "unterminated comment")
		case tok.Category == lexer.Punctuation:
			switch tok.Value {
			case "(", "[", "{":
				open = append(open, tok)
			case ")", "]", "}":
				if len(open) == 0 || open[len(open)-1].Value != closers[tok.Value] {
					warn(tok.Pos, "unmatched %q", tok.Value)
					continue
				}
				open = open[:len(open)-1]
			}
		}
	}
	if inString {
		warn(quote.Pos, "unterminated string literal")
	}
	for _, tok := range open {
		warn(tok.Pos, "unclosed %q", tok.Value)
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		return warnings[i].Pos.Column < warnings[j].Pos.Column
	})
	return warnings
}

// commentClosed reports whether a block comment ends with its own */,
// allowing the line splices the comment rule accepts.
func commentClosed(value string) bool {
	body := strings.TrimPrefix(strings.TrimPrefix(value, "/"), "\\\n")
	body = strings.TrimPrefix(body, "*")
	return strings.HasSuffix(body, "*/") || strings.HasSuffix(body, "*\\\n/")
}
