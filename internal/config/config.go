// Package config resolves app settings from an optional config file and
// FITFOCUS_* environment variables. The --db flag still wins over
// everything here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fitfocus/fitfocus-cli/internal/model"
)

type Config struct {
	DBPath       string      // empty means "use the default path"
	DefaultTheme model.Theme // theme used while the theme slot is unset
}

// Load reads config.yaml from the fitfocus config dir or the working
// directory. A missing file is fine; defaults and env vars still apply.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if base, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(base, "fitfocus"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("fitfocus")
	v.AutomaticEnv()

	v.SetDefault("theme", string(model.ThemeLight))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	theme := model.Theme(v.GetString("theme"))
	if theme != model.ThemeDark {
		theme = model.ThemeLight
	}

	return Config{
		DBPath:       v.GetString("db"),
		DefaultTheme: theme,
	}, nil
}
