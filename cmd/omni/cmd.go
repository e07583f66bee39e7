package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dozm/omni"
	"github.com/dozm/omni/config"
)

type rootFlags struct {
	configFile string
	envFile    string
	envPrefix  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "omni",
		Short:         "Inspect container parameters",
		Long:          `omni loads parameters and aliases from a config file, a .env file and the environment into a container and resolves identifiers from it.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (yaml, json or toml)")
	pf.StringVar(&flags.envFile, "env-file", ".env", ".env file, read only together with --env-prefix")
	pf.StringVar(&flags.envPrefix, "env-prefix", "", "prefix of the environment variables to load")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(
		newHasCmd(flags),
		newGetCmd(flags),
		newIDsCmd(flags),
		newValidateCmd(flags),
	)
	return rootCmd
}

func newHasCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "has <id>",
		Short: "Report whether an identifier can be resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := flags.container()
			if err != nil {
				return err
			}
			ok, err := c.Exists(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func newGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print the value of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := flags.container()
			if err != nil {
				return err
			}
			v, err := c.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
			return nil
		},
	}
}

func newIDsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ids",
		Short: "List the loaded parameters and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, values, err := flags.container()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range values.IDs() {
				fmt.Fprintln(out, id)
			}
			aliases := c.Aliases()
			for _, id := range c.AliasIDs() {
				fmt.Fprintf(out, "%s -> %s\n", id, aliases[id])
			}
			return nil
		},
	}
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the alias table for cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := flags.container()
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func (f *rootFlags) logger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(f.logLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}

func (f *rootFlags) container() (*omni.OmniContainer, config.Values, error) {
	logger, err := f.logger()
	if err != nil {
		return nil, config.Values{}, err
	}

	values, err := config.Load(
		config.WithConfigFile(f.configFile),
		config.WithEnvFile(f.envFile),
		config.WithEnvPrefix(f.envPrefix),
		config.WithLogger(logger),
	)
	if err != nil {
		return nil, config.Values{}, err
	}

	c := omni.New(func(o *omni.Options) {
		o.Logger = logger
	})
	config.Apply(c, values)

	logger.Debug().
		Int("parameters", len(values.Params)).
		Int("aliases", len(values.Aliases)).
		Msg("configuration loaded")
	return c, values, nil
}
