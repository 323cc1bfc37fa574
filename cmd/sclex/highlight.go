package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgomes/sclex/highlight"
)

const keyColor = "color"

func newHighlightCommand(vp *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight [flags] <file>...",
		Short: "Print SystemC sources with syntax highlighting",
		Long: "Print SystemC sources with syntax highlighting. Colors follow the terminal; " +
			"the theme config section overrides them per category.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd.OutOrStdout(), cmd.InOrStdin(), vp, args)
		},
	}
	cmd.Flags().Bool(keyColor, false, "Force 256-color output")
	_ = vp.BindPFlags(cmd.Flags())
	return cmd
}

func runHighlight(out io.Writer, in io.Reader, vp *viper.Viper, args []string) error {
	if len(args) == 0 {
		return errors.New("sclex highlight: path required")
	}

	def, _, err := loadDefinition(vp)
	if err != nil {
		return err
	}
	theme, err := loadTheme(out, vp)
	if err != nil {
		return err
	}

	for _, path := range args {
		source, err := readSource(path, in)
		if err != nil {
			return err
		}
		if err := highlight.Render(out, def.All(source), theme); err != nil {
			return fmt.Errorf("sclex highlight: %w", err)
		}
	}
	return nil
}

func loadTheme(out io.Writer, vp *viper.Viper) (highlight.Theme, error) {
	r := lipgloss.NewRenderer(out)
	if vp.GetBool(keyColor) {
		r.SetColorProfile(termenv.ANSI256)
	}
	theme := highlight.DefaultTheme(r)
	if colors := vp.GetStringMapString(keyTheme); len(colors) > 0 {
		var err error
		if theme, err = theme.WithColors(colors); err != nil {
			return theme, fmt.Errorf("sclex: theme: %w", err)
		}
	}
	return theme, nil
}
