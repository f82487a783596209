package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/output"
)

// bindFlag makes a flag the highest-priority source of a config key.
func (a *app) bindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

// initConfig loads sheetjson.yaml and SHEETJSON_* environment variables.
// A missing default config file is fine, a missing --config file is not.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		if _, err := os.Stat(a.cfgFile); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("sheetjson")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "sheetjson"))
		}
	}

	a.v.SetEnvPrefix("SHEETJSON")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	a.v.SetDefault("input", "")
	a.v.SetDefault("encoding", output.DefaultEncoding)
	a.v.SetDefault("full_desc", false)
	a.v.SetDefault("log_level", "info")

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
