package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgomes/sclex/systemc"
)

func newGuessCommand(vp *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess [flags] <file>...",
		Short: "Score how likely files are SystemC sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuess(cmd.OutOrStdout(), vp, args)
		},
	}
	cmd.Flags().String(keyMimetype, "", "Mimetype to consider alongside each file")
	_ = vp.BindPFlags(cmd.Flags())
	return cmd
}

func runGuess(out io.Writer, vp *viper.Viper, args []string) error {
	if len(args) == 0 {
		return errors.New("sclex guess: path required")
	}
	mimetype := vp.GetString(keyMimetype)

	for _, path := range args {
		var source string
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			source = string(data)
		case errors.Is(err, os.ErrNotExist):
			log.WithError(err).Debug("Guessing from the file name only")
		default:
			return fmt.Errorf("read source: %w", err)
		}

		score := systemc.Guess(path, mimetype, source)
		verdict := "no"
		if score >= systemc.Likely {
			verdict = "yes"
		}
		fmt.Fprintf(out, "%s\t%.2f\t%s\n", path, score, verdict)
	}
	return nil
}
