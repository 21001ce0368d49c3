package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the storage and the logging settings.
type Config interface {
	BasePath() string
	Backend() string
	LogLevel() string
	LogFormat() string
}

// LoadConfig reads the optional .listplan config file and LISTPLAN_*
// environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.listplan")
	viper.SetDefault("storage", BackendDiskv)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
	viper.SetConfigName(".listplan") // .yaml is implicit
	viper.SetEnvPrefix("LISTPLAN")
	viper.AutomaticEnv()

	if override := os.Getenv("LISTPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{
		Path:    path,
		Storage: viper.GetString("storage"),
		Level:   viper.GetString("log.level"),
		Format:  viper.GetString("log.format"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Storage string `json:"storage"`
	Level   string `json:"logLevel"`
	Format  string `json:"logFormat"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) Backend() string   { return f.Storage }
func (f *fileConfig) LogLevel() string  { return f.Level }
func (f *fileConfig) LogFormat() string { return f.Format }

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path    string
	Storage string
}

func (s StaticConfig) BasePath() string  { return s.Path }
func (s StaticConfig) Backend() string   { return s.Storage }
func (s StaticConfig) LogLevel() string  { return "warn" }
func (s StaticConfig) LogFormat() string { return "text" }
