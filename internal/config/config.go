package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ayahgrab/ayah-grabber/internal/constants"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// APIBaseURL is the base URL of the chapter/verse/reciter metadata service.
	APIBaseURL string `mapstructure:"api_base_url"`
	// AudioBaseURL is the base URL of the per-verse audio host (primary download path).
	AudioBaseURL string `mapstructure:"audio_base_url"`
	// ReciterID is the default reciter used when no reciter flag is given.
	ReciterID string `mapstructure:"reciter_id"`
	// CachePath is the directory where individual verse files are stored.
	// Verses already present there are served without a network call.
	CachePath string `mapstructure:"cache_path"`
	// OutputPath is the directory where merged range files are saved.
	OutputPath string `mapstructure:"output_path"`
	// ReplaceVerses forces re-downloading verses even when a cached file exists.
	ReplaceVerses bool `mapstructure:"replace_verses"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// DownloadSpeedLimit sets the maximum download speed (e.g., "1MB", "500KB").
	DownloadSpeedLimit string `mapstructure:"download_speed_limit"`
	// MaxDownloadPause is the maximum random pause between verse downloads.
	// Empty or "0s" disables pausing.
	MaxDownloadPause string `mapstructure:"max_download_pause"`
	// ListenAddress is the address the 'serve' command binds to.
	ListenAddress string `mapstructure:"listen_address"`
	// OutputFilename overrides the synthesized artifact name (set from the CLI flag only).
	OutputFilename string
	// ParsedDownloadSpeedLimit is the parsed download speed limit in bytes per second.
	ParsedDownloadSpeedLimit int64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxDownloadPause is the parsed maximum download pause duration.
	ParsedMaxDownloadPause time.Duration
}

const (
	// DefaultAPIBaseURL is the default metadata service endpoint.
	DefaultAPIBaseURL = "https://quranapi.pages.dev/api"

	// DefaultAudioBaseURL is the default audio host endpoint.
	DefaultAudioBaseURL = "https://the-quran-project.github.io/Quran-Audio/Data"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".ayah-grabber.yaml"

	// DefaultReciterID is the reciter used when neither config nor flags pick one.
	DefaultReciterID = "1"

	// DefaultCachePath is the default verse cache directory.
	DefaultCachePath = "temp_data"

	// DefaultOutputPath is the default directory for merged range files.
	DefaultOutputPath = "output"

	// DefaultListenAddress is the default bind address of the 'serve' command.
	DefaultListenAddress = ":8080"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidAPIBaseURL indicates that the metadata service URL is missing or unparsable.
	ErrInvalidAPIBaseURL = errors.New("invalid api_base_url")
	// ErrInvalidAudioBaseURL indicates that the audio host URL is missing or unparsable.
	ErrInvalidAudioBaseURL = errors.New("invalid audio_base_url")
	// ErrEmptyReciterID indicates that the default reciter identifier is missing.
	ErrEmptyReciterID = errors.New("reciter_id cannot be empty")
	// ErrEmptyCachePath indicates that the verse cache directory is not set.
	ErrEmptyCachePath = errors.New("cache_path cannot be empty")
	// ErrEmptyOutputPath indicates that the output directory is not set.
	ErrEmptyOutputPath = errors.New("output_path cannot be empty")
	// ErrEmptyListenAddress indicates that the serve bind address is not set.
	ErrEmptyListenAddress = errors.New("listen_address cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidMaxDownloadPause indicates that the max download pause duration is invalid.
	ErrInvalidMaxDownloadPause = errors.New("max_download_pause cannot be negative")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing config file is not an error: built-in defaults make the tool
// usable without any configuration at all.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	viper.SetDefault("api_base_url", DefaultAPIBaseURL)
	viper.SetDefault("audio_base_url", DefaultAudioBaseURL)
	viper.SetDefault("reciter_id", DefaultReciterID)
	viper.SetDefault("cache_path", DefaultCachePath)
	viper.SetDefault("output_path", DefaultOutputPath)
	viper.SetDefault("listen_address", DefaultListenAddress)
	viper.SetDefault("log_level", DefaultLogLevel)

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		return ErrInvalidAPIBaseURL
	}

	if _, err := url.Parse(cfg.APIBaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAPIBaseURL, err)
	}

	cfg.AudioBaseURL = strings.TrimRight(strings.TrimSpace(cfg.AudioBaseURL), "/")
	if cfg.AudioBaseURL == "" {
		return ErrInvalidAudioBaseURL
	}

	if _, err := url.Parse(cfg.AudioBaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAudioBaseURL, err)
	}

	if strings.TrimSpace(cfg.ReciterID) == "" {
		return ErrEmptyReciterID
	}

	if strings.TrimSpace(cfg.CachePath) == "" {
		return ErrEmptyCachePath
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return ErrEmptyOutputPath
	}

	if strings.TrimSpace(cfg.ListenAddress) == "" {
		return ErrEmptyListenAddress
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	var (
		downloadSpeedLimit       = strings.TrimSpace(cfg.DownloadSpeedLimit)
		parsedDownloadSpeedLimit uint64
		err                      error
	)

	if downloadSpeedLimit != "" && downloadSpeedLimit != "0" {
		parsedDownloadSpeedLimit, err = humanize.ParseBytes(downloadSpeedLimit)
		if err != nil {
			return fmt.Errorf("failed to parse download speed limit: %w", err)
		}
	}

	// io.CopyN accepts only int64 so we transform it safely in order to use it later.
	cfg.ParsedDownloadSpeedLimit = utils.SafeUint64ToInt64(parsedDownloadSpeedLimit)

	if pause := strings.TrimSpace(cfg.MaxDownloadPause); pause != "" {
		cfg.ParsedMaxDownloadPause, err = time.ParseDuration(pause)
		if err != nil {
			return fmt.Errorf("failed to parse max download pause: %w", err)
		}

		if cfg.ParsedMaxDownloadPause < 0 {
			return ErrInvalidMaxDownloadPause
		}
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
// Only the reciter_id value is rewritten; everything else stays untouched.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.ReciterID, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the reciter_id value in the node tree.
	updateReciterIDInNode(&node, cfg.ReciterID)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, reciterID string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("reciter_id", reciterID)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateReciterIDInNode updates the reciter_id value in the YAML node tree.
func updateReciterIDInNode(node *yaml.Node, reciterID string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "reciter_id" {
			// Update the value while preserving style.
			valueNode.Value = reciterID
			valueNode.Tag = "!!str"

			// Reciter IDs are numeric strings, keep them quoted.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
