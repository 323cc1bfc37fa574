package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCommand(vp *viper.Viper) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect sclex configuration",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "view",
			Short: "Display merged configuration settings",
			Long:  "Display merged configuration settings from flags, environment and the config file",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runConfigView(cmd, vp)
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Display a single configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigGet(cmd, vp, args[0])
			},
		},
	)
	return configCmd
}

func runConfigView(cmd *cobra.Command, vp *viper.Viper) error {
	bs, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(bs))
	return err
}

func runConfigGet(cmd *cobra.Command, vp *viper.Viper, key string) error {
	value := vp.Get(key)
	if value == nil {
		return fmt.Errorf("sclex config: unknown key %q", key)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
