package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mgomes/sclex/internal/logging"
	"github.com/mgomes/sclex/internal/logging/logfields"
	"github.com/mgomes/sclex/lexer"
	"github.com/mgomes/sclex/systemc"
)

const (
	keyConfig     = "config"
	keyDebug      = "debug"
	keyLogFormat  = "log-format"
	keyVocabulary = "vocabulary"
	keyTheme      = "theme"
	keyFormat     = "format"
	keyMimetype   = "mimetype"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "sclex")

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	cmd, err := newRootCommand()
	if err != nil {
		return err
	}
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	return cmd.Execute()
}

func newRootCommand() (*cobra.Command, error) {
	vp := newViper()
	rootCmd := &cobra.Command{
		Use:           "sclex",
		Short:         "sclex tokenizes and highlights SystemC sources",
		Long:          "sclex is a state-machine tokenizer for SystemC and the tools built on its token stream.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig(vp)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errors.New("sclex: invalid command")
		},
	}

	flags := globalFlags()
	rootCmd.PersistentFlags().AddFlagSet(flags)
	if err := vp.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("sclex: bind flags: %w", err)
	}

	rootCmd.AddCommand(
		newTokensCommand(vp),
		newHighlightCommand(vp),
		newAnalyzeCommand(vp),
		newGuessCommand(vp),
		newREPLCommand(vp),
		newLSPCommand(vp),
		newConfigCommand(vp),
	)
	return rootCmd, nil
}

// globalFlags are accepted by every subcommand.
func globalFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("global", pflag.ContinueOnError)
	flags.StringP(keyConfig, "c", "", "Path to a YAML config file")
	flags.BoolP(keyDebug, "D", false, "Enable debug messages")
	flags.String(keyLogFormat, string(logging.LogFormatText), "Log format (text or json)")
	flags.String(keyVocabulary, "", "Path to a YAML vocabulary overlay")
	return flags
}

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix("sclex")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.SetConfigType("yaml")
	vp.AutomaticEnv()
	return vp
}

// loadConfig reads the config file, if any, and applies the logging
// settings. The debug flag is checked before and after reading so a
// failed read can still be logged.
func loadConfig(vp *viper.Viper) error {
	applyLogSettings(vp)
	if path := vp.GetString(keyConfig); path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			log.WithError(err).WithField(logfields.File, path).Debug("Failed to read config file")
			return fmt.Errorf("sclex: read config %s: %w", path, err)
		}
	}
	applyLogSettings(vp)
	return nil
}

func applyLogSettings(vp *viper.Viper) {
	logging.SetLogFormat(logging.LogFormat(vp.GetString(keyLogFormat)))
	if vp.GetBool(keyDebug) {
		logging.SetLogLevelToDebug()
	} else {
		logging.SetLogLevel(logging.DefaultLogLevel)
	}
}

// loadDefinition builds the SystemC lexer, extended by the configured
// vocabulary overlay.
func loadDefinition(vp *viper.Viper) (*lexer.Definition, *lexer.Vocabulary, error) {
	path := vp.GetString(keyVocabulary)
	if path == "" {
		return systemc.Lexer(), systemc.Vocabulary(), nil
	}
	vocab, err := systemc.LoadOverlay(path)
	if err != nil {
		return nil, nil, err
	}
	def, err := systemc.New(systemc.WithClassifier(vocab))
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{
		logfields.File:  path,
		logfields.Lexer: def.Name(),
	}).Debug("Using vocabulary overlay")
	return def, vocab, nil
}
