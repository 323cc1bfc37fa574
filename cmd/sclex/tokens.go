package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgomes/sclex/lexer"
)

type tokenRecord struct {
	File     string `json:"file,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	Category string `json:"category"`
	Value    string `json:"value"`
}

func newTokensCommand(vp *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [flags] <file>...",
		Short: "Print the token stream of SystemC sources",
		Long:  "Print the token stream of SystemC sources. Use - to read standard input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd.OutOrStdout(), cmd.InOrStdin(), vp, args)
		},
	}
	cmd.Flags().String(keyFormat, "text", "Output format (text or json)")
	_ = vp.BindPFlags(cmd.Flags())
	return cmd
}

func runTokens(out io.Writer, in io.Reader, vp *viper.Viper, args []string) error {
	if len(args) == 0 {
		return errors.New("sclex tokens: path required")
	}
	format := vp.GetString(keyFormat)
	if format != "text" && format != "json" {
		return fmt.Errorf("sclex tokens: unknown format %q", format)
	}

	def, _, err := loadDefinition(vp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	for idx, path := range args {
		source, err := readSource(path, in)
		if err != nil {
			return err
		}
		if format == "text" && len(args) > 1 {
			if idx > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", path)
		}
		for tok := range def.All(source) {
			if format == "json" {
				if err := enc.Encode(newTokenRecord(path, tok)); err != nil {
					return fmt.Errorf("sclex tokens: %w", err)
				}
				continue
			}
			if _, err := fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Category, tok.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func newTokenRecord(path string, tok lexer.Token) tokenRecord {
	if path == "-" {
		path = ""
	}
	return tokenRecord{
		File:     path,
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column,
		Offset:   tok.Span.Offset,
		Length:   tok.Span.Length,
		Category: string(tok.Category),
		Value:    tok.Value,
	}
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
