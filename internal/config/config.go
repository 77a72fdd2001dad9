package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
)

type Config struct {
	SourceDir  string
	TargetDir  string
	ConfigFile string
	Extract    bool
	DryRun     bool
	Verbose    bool
	TUI        bool
	Sort       domain.SortOptions
}

// File mirrors the JSON configuration document.
type File struct {
	Source       string   `mapstructure:"source"`
	Target       string   `mapstructure:"target"`
	DateFormat   string   `mapstructure:"date_format"`
	DateType     string   `mapstructure:"date_type"`
	PreserveName bool     `mapstructure:"preserve_name"`
	ExcludeType  []string `mapstructure:"exclude_type"`
	OnlyType     []string `mapstructure:"only_type"`
	DryRun       bool     `mapstructure:"dry_run"`
}

func Default() Config {
	return Config{
		Sort: domain.SortOptions{
			Selector:   domain.Created,
			DateFormat: domain.DefaultDateFormat,
		},
	}
}

// LoadFile reads a JSON configuration document. Missing fields keep their
// defaults.
func LoadFile(path string) (File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("date_format", domain.DefaultDateFormat)
	v.SetDefault("date_type", "c")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, appErrors.Wrap(appErrors.NotFound, "config", path, err)
		}
		return File{}, appErrors.Wrap(appErrors.ConfigParse, "config", path, err)
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return File{}, appErrors.Wrap(appErrors.ConfigParse, "config", path, err)
	}
	return file, nil
}

// ApplyFile overlays a loaded configuration document. Paths given on the
// command line win over the document; dry_run is OR-ed with the flag.
func (c *Config) ApplyFile(file File) error {
	selector, err := domain.ParseTimestampSelector(file.DateType)
	if err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "config", c.ConfigFile, err)
	}

	if c.SourceDir == "" {
		c.SourceDir = file.Source
	}
	if c.TargetDir == "" {
		c.TargetDir = file.Target
	}
	c.DryRun = c.DryRun || file.DryRun
	c.Sort = domain.SortOptions{
		Selector:     selector,
		DateFormat:   file.DateFormat,
		PreserveName: file.PreserveName,
		Exclude:      domain.NewExtensionFilter(file.ExcludeType),
		Only:         domain.NewExtensionFilter(file.OnlyType),
	}
	if c.Sort.DateFormat == "" {
		c.Sort.DateFormat = domain.DefaultDateFormat
	}
	return nil
}

// ApplyEnv fills unset values from SORTERY_* environment variables.
func (c *Config) ApplyEnv() {
	if c.SourceDir == "" {
		c.SourceDir = envOrEmpty("SORTERY_SOURCE_DIR")
	}
	if c.TargetDir == "" {
		c.TargetDir = envOrEmpty("SORTERY_TARGET_DIR")
	}
	if !c.Verbose {
		c.Verbose = envTruthy("SORTERY_VERBOSE")
	}
}

func (c Config) Validate() error {
	if c.SourceDir == "" || c.TargetDir == "" {
		return appErrors.Wrap(appErrors.InvalidConfig, "config", "", errors.New("source and target are required"))
	}
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
