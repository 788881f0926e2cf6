package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tomlrepo "github.com/bnema/pillctl/internal/adapters/repo/toml"
	"github.com/bnema/pillctl/internal/domain"
	"github.com/bnema/pillctl/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configDir  = ".pillctl"
	configName = "config"
	configType = "toml"
	envPrefix  = "PILLCTL"

	serverURLKey  = "server.url"
	slotCountKey  = "boxes.count"
	logLevelKey   = "log.level"
	outputKey     = "output"
	staleAfterKey = "registry.stale_after"

	defaultServerURL = "http://localhost:4000"
)

func newConfig() *viper.Viper {
	cfg := viper.New()
	cfg.SetDefault(serverURLKey, defaultServerURL)
	cfg.SetDefault(slotCountKey, domain.DefaultSlotCount)
	cfg.SetDefault(logLevelKey, logger.WarnLevel)
	cfg.SetDefault(outputKey, outputText)
	cfg.SetDefault(staleAfterKey, "1h")

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	return cfg
}

func bindFlags(cfg *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		serverURLKey:             "server",
		logLevelKey:              "log-level",
		outputKey:                "output",
		tomlrepo.RegistryPathKey: "registry",
	}
	for key, flag := range bindings {
		if err := cfg.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %q: %w", flag, err)
		}
	}
	return nil
}

// readConfigFile loads explicitPath when set, otherwise ~/.pillctl/config.toml
// if it exists.
func readConfigFile(cfg *viper.Viper, explicitPath string) error {
	if explicitPath != "" {
		cfg.SetConfigFile(explicitPath)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

func validateConfig(cfg *viper.Viper) error {
	if level := cfg.GetString(logLevelKey); !logger.ValidLevel(level) {
		return fmt.Errorf("unsupported log level %q (want debug, info, warn or error)", level)
	}
	if output := cfg.GetString(outputKey); !validOutput(output) {
		return fmt.Errorf("unsupported output %q (want text, json or yaml)", output)
	}
	if cfg.GetInt(slotCountKey) <= 0 {
		return fmt.Errorf("%s must be positive", slotCountKey)
	}
	if cfg.GetDuration(staleAfterKey) < 0 {
		return fmt.Errorf("%s must not be negative", staleAfterKey)
	}
	return nil
}
