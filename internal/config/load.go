package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags, the config file, and TEXORG_* environment variables.
const (
	KeyKeepNames = "keepnames"
	KeyMove      = "move"
	KeyYes       = "yes"
	KeySubfolder = "subfolder"
	KeyDryRun    = "dry-run"
	KeyPause     = "pause"
	KeyVerbose   = "verbose"
	KeyLog       = "log"
	KeyReport    = "report"
	KeyColorMode = "color-mode"
)

const (
	envPrefix      = "TEXORG"
	configFileName = "config"
	configFileType = "yaml"
	appDirName     = "texorg"
)

// userConfigDir is overridden in tests.
var userConfigDir = os.UserConfigDir

// DefaultConfigDir returns the directory searched for config.yaml when no
// --config flag is given: <user config dir>/texorg. On Linux that is
// $XDG_CONFIG_HOME/texorg (fallback ~/.config/texorg).
func DefaultConfigDir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// Load merges the config file and TEXORG_* environment variables into cfg
// using Viper. Precedence: explicit flag > env > config file > default.
// A missing default config file is not an error; a missing file named by
// --config is.
func Load(cfg *Config, fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfg.ConfigFile != "" {
		v.SetConfigFile(cfg.ConfigFile)
		if filepath.Ext(cfg.ConfigFile) == "" {
			v.SetConfigType(configFileType)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfg.ConfigFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg.KeepNames = v.GetBool(KeyKeepNames)
	cfg.Move = v.GetBool(KeyMove)
	cfg.AssumeYes = v.GetBool(KeyYes)
	cfg.Subfolder = v.GetString(KeySubfolder)
	cfg.DryRun = v.GetBool(KeyDryRun)
	cfg.PauseOnExit = v.GetBool(KeyPause)
	cfg.Verbosity = v.GetInt(KeyVerbose)
	cfg.LogFile = v.GetString(KeyLog)
	cfg.ReportFile = v.GetString(KeyReport)
	cfg.ColorMode = ColorMode(strings.ToLower(v.GetString(KeyColorMode)))
	return nil
}

// setDefaults seeds Viper with the values already in cfg so that keys
// absent from flags, env, and file keep them.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault(KeyKeepNames, cfg.KeepNames)
	v.SetDefault(KeyMove, cfg.Move)
	v.SetDefault(KeyYes, cfg.AssumeYes)
	v.SetDefault(KeySubfolder, cfg.Subfolder)
	v.SetDefault(KeyDryRun, cfg.DryRun)
	v.SetDefault(KeyPause, cfg.PauseOnExit)
	v.SetDefault(KeyVerbose, cfg.Verbosity)
	v.SetDefault(KeyLog, cfg.LogFile)
	v.SetDefault(KeyReport, cfg.ReportFile)
	v.SetDefault(KeyColorMode, string(cfg.ColorMode))
}
