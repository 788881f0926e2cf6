package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

// session wires the app lazily, after flags have been parsed.
type session struct {
	cfg        *viper.Viper
	configPath string
	app        *app
}

func newRootCmd() *cobra.Command {
	s := &session{cfg: newConfig()}

	rootCmd := &cobra.Command{
		Use:           "pillctl",
		Short:         "pillctl: manage a household pill dispenser schedule",
		Long:          "pillctl registers pills against dispenser boxes, edits which time windows each pill is dispensed in, and shows what the dispenser server reports as due right now.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "Config file (default: ~/.pillctl/config.toml)")
	flags.String("server", defaultServerURL, "Pill scheduler server URL")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringP("output", "o", outputText, "Output format: text, json or yaml")
	flags.String("registry", "", "Local registry snapshot file (default: ~/.pillctl/registry.toml)")

	if err := bindFlags(s.cfg, flags); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPillCmd(s),
		newScheduleCmd(s),
		newAdminCmd(s),
	)

	return rootCmd
}

func (s *session) init(cmd *cobra.Command) error {
	if s.app != nil {
		return nil
	}
	if err := readConfigFile(s.cfg, s.configPath); err != nil {
		return err
	}
	if err := validateConfig(s.cfg); err != nil {
		return err
	}

	wired, err := wireApp(s.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	s.app = wired
	return nil
}
