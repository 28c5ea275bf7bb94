package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings a session needs. It is loaded once at startup
// and passed explicitly; nothing reads settings from package state.
type Config struct {
	File       string // target file for both modes
	Terminator string // lowercase token that ends the encrypt loop
}

// EnvPrefix namespaces environment overrides, e.g. VIGENERE_FILE.
const EnvPrefix = "VIGENERE"

// ConfigSource describes where settings come from.
//   - Path: explicit config file; empty searches "config.yml" in the working
//     directory and then in $HOME/.config/vigenere.
//   - EnvFile: dotenv file loaded into the environment first; empty means
//     ".env". A missing dotenv file is not an error.
type ConfigSource struct {
	Path    string
	EnvFile string
}

// LoadConfig reads settings from the default locations.
func LoadConfig(path string) (Config, error) {
	return ConfigSource{Path: path}.Load()
}

// Load resolves the configuration. Environment variables override file
// values. Both File and Terminator are required.
func (s ConfigSource) Load() (Config, error) {
	envFile := s.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: reading %s: %v", ErrConfiguration, envFile, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if s.Path != "" {
		v.SetConfigFile(s.Path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vigenere"))
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	found := true
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		found = false
	}

	cfg := Config{
		File:       strings.TrimSpace(v.GetString("file")),
		Terminator: strings.ToLower(v.GetString("terminator")),
	}
	var missing []string
	if cfg.File == "" {
		missing = append(missing, "File")
	}
	if cfg.Terminator == "" {
		missing = append(missing, "Terminator")
	}
	if len(missing) > 0 {
		if !found {
			return Config{}, fmt.Errorf("%w: no config.yml found and %s not set in the environment", ErrConfiguration, strings.Join(missing, ", "))
		}
		return Config{}, fmt.Errorf("%w: missing required key(s) %s in %s", ErrConfiguration, strings.Join(missing, ", "), v.ConfigFileUsed())
	}
	return cfg, nil
}
