package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ayahgrab/ayah-grabber/internal/constants"
)

// validConfig returns a configuration that passes ValidateConfig.
func validConfig() *Config {
	return &Config{
		APIBaseURL:       DefaultAPIBaseURL,
		AudioBaseURL:     DefaultAudioBaseURL,
		ReciterID:        "1",
		CachePath:        "temp_data",
		OutputPath:       "output",
		LogLevel:         "info",
		ListenAddress:    ":8080",
		MaxDownloadPause: "2s",
	}
}

// TestConfigStruct tests the Config struct fields.
func TestConfigStruct(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		APIBaseURL:         "https://quranapi.pages.dev/api",
		AudioBaseURL:       "https://the-quran-project.github.io/Quran-Audio/Data",
		ReciterID:          "2",
		CachePath:          "/tmp/verses",
		OutputPath:         "/tmp/output",
		ReplaceVerses:      true,
		LogLevel:           "debug",
		DownloadSpeedLimit: "1MB",
		MaxDownloadPause:   "5s",
		ListenAddress:      ":9090",
	}

	assert.Equal(t, "https://quranapi.pages.dev/api", cfg.APIBaseURL)
	assert.Equal(t, "https://the-quran-project.github.io/Quran-Audio/Data", cfg.AudioBaseURL)
	assert.Equal(t, "2", cfg.ReciterID)
	assert.Equal(t, "/tmp/verses", cfg.CachePath)
	assert.Equal(t, "/tmp/output", cfg.OutputPath)
	assert.True(t, cfg.ReplaceVerses)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "1MB", cfg.DownloadSpeedLimit)
	assert.Equal(t, "5s", cfg.MaxDownloadPause)
	assert.Equal(t, ":9090", cfg.ListenAddress)
}

// TestLoadConfig tests the LoadConfig function.
//
//nolint:tparallel,paralleltest // Viper holds global state, subtests cannot run in parallel.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		configFilename string
		configContent  string
		createFile     bool
		expectError    bool
		verify         func(*testing.T, *Config)
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			createFile:     true,
			configContent: `
api_base_url: "https://example.com/api"
audio_base_url: "https://example.com/audio"
reciter_id: "3"
cache_path: "/tmp/verses"
output_path: "/tmp/output"
replace_verses: true
log_level: "debug"
download_speed_limit: "500KB"
max_download_pause: "3s"
listen_address: ":8888"
`,
			verify: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://example.com/api", cfg.APIBaseURL)
				assert.Equal(t, "https://example.com/audio", cfg.AudioBaseURL)
				assert.Equal(t, "3", cfg.ReciterID)
				assert.Equal(t, "/tmp/verses", cfg.CachePath)
				assert.True(t, cfg.ReplaceVerses)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "500KB", cfg.DownloadSpeedLimit)
				assert.Equal(t, ":8888", cfg.ListenAddress)
			},
		},
		{
			name:           "missing file falls back to defaults",
			configFilename: "non_existent.yaml",
			verify: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
				assert.Equal(t, DefaultAudioBaseURL, cfg.AudioBaseURL)
				assert.Equal(t, DefaultReciterID, cfg.ReciterID)
				assert.Equal(t, DefaultCachePath, cfg.CachePath)
				assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
				assert.Equal(t, DefaultListenAddress, cfg.ListenAddress)
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
			},
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid.yaml",
			createFile:     true,
			configContent:  "reciter_id: [unclosed",
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, tt.configFilename)

			if tt.createFile {
				require.NoError(t,
					os.WriteFile(configPath, []byte(tt.configContent), constants.DefaultFilePermissions))
			}

			cfg, err := LoadConfig(configPath)
			if tt.expectError {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.verify != nil {
				tt.verify(t, cfg)
			}
		})
	}
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		modify        func(*Config)
		expectedError error
	}{
		{
			name:   "valid config",
			modify: func(_ *Config) {},
		},
		{
			name:          "empty api base url",
			modify:        func(cfg *Config) { cfg.APIBaseURL = "  " },
			expectedError: ErrInvalidAPIBaseURL,
		},
		{
			name:          "empty audio base url",
			modify:        func(cfg *Config) { cfg.AudioBaseURL = "" },
			expectedError: ErrInvalidAudioBaseURL,
		},
		{
			name:          "empty reciter id",
			modify:        func(cfg *Config) { cfg.ReciterID = " " },
			expectedError: ErrEmptyReciterID,
		},
		{
			name:          "empty cache path",
			modify:        func(cfg *Config) { cfg.CachePath = "" },
			expectedError: ErrEmptyCachePath,
		},
		{
			name:          "empty output path",
			modify:        func(cfg *Config) { cfg.OutputPath = "" },
			expectedError: ErrEmptyOutputPath,
		},
		{
			name:          "empty listen address",
			modify:        func(cfg *Config) { cfg.ListenAddress = "" },
			expectedError: ErrEmptyListenAddress,
		},
		{
			name:          "unknown log level",
			modify:        func(cfg *Config) { cfg.LogLevel = "loud" },
			expectedError: ErrUnknownLogLevel,
		},
		{
			name:          "negative max download pause",
			modify:        func(cfg *Config) { cfg.MaxDownloadPause = "-5s" },
			expectedError: ErrInvalidMaxDownloadPause,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
		})
	}
}

// TestValidateConfig_DerivedFields tests that parsed fields are populated.
func TestValidateConfig_DerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.LogLevel = "debug"
	cfg.DownloadSpeedLimit = "1MB"
	cfg.MaxDownloadPause = "2s"

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, int64(1000*1000), cfg.ParsedDownloadSpeedLimit)
	assert.Equal(t, 2*time.Second, cfg.ParsedMaxDownloadPause)
}

// TestValidateConfig_TrimsTrailingSlash tests URL normalization.
func TestValidateConfig_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.APIBaseURL = "https://example.com/api/"
	cfg.AudioBaseURL = "https://example.com/audio/"

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, "https://example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "https://example.com/audio", cfg.AudioBaseURL)
}

// TestSaveConfig tests that SaveConfig rewrites reciter_id while preserving file order.
//
//nolint:paralleltest // Viper holds global state.
func TestSaveConfig(t *testing.T) {
	viper.Reset()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, DefaultConfigFilename)

	original := `# ayah-grabber configuration
api_base_url: "https://example.com/api"
reciter_id: "1"
output_path: "output"
`
	require.NoError(t, os.WriteFile(configPath, []byte(original), constants.DefaultFilePermissions))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	cfg.ReciterID = "4"
	require.NoError(t, SaveConfig(cfg))

	updated, err := os.ReadFile(configPath)
	require.NoError(t, err)

	content := string(updated)
	assert.Contains(t, content, `reciter_id: "4"`)

	// Key order must survive the rewrite.
	assert.Less(t,
		strings.Index(content, "api_base_url"),
		strings.Index(content, "reciter_id"))
	assert.Less(t,
		strings.Index(content, "reciter_id"),
		strings.Index(content, "output_path"))
}
