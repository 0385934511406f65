package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bjaus/cfmt/internal/cases"
	"github.com/bjaus/cfmt/internal/report"
)

// Configuration keys. Each can be set in .cprintf.yaml, as a CPRINTF_*
// environment variable (dashes become underscores) or as a flag.
const (
	keyLogLevel    = "log-level"
	keyOutput      = "output"
	keyNewline     = "newline"
	keyDiffContext = "diff-context"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyOutput, string(report.Table))
	v.SetDefault(keyNewline, false)
	v.SetDefault(keyDiffContext, cases.DefaultDiffContext)
}

// addPersistentFlags registers the flags shared by every command.
func addPersistentFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default is ./.cprintf.yaml, can also use CPRINTF_CONFIG_FILE)")
	fs.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
}

// loadConfig reads the config file, if any. The --config flag wins over
// CPRINTF_CONFIG_FILE, which wins over ./.cprintf.yaml. A missing default
// file is not an error; a missing explicit file is.
func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("CPRINTF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = os.Getenv("CPRINTF_CONFIG_FILE")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".cprintf")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// newLogger returns a text logger on w whose level follows lv.
func newLogger(w io.Writer, lv *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))
}

func setLevel(lv *slog.LevelVar, name string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid log level %q", name)
	}
	lv.Set(level)
	return nil
}
