package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogLevel     = "info"
	DefaultMaxFileSize  = 100 * 1024 * 1024 // 100MB
	DefaultMaxScanPages = 50

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the outline extraction tools
type Config struct {
	// PDF configuration
	PDFDirectory string
	OutputDir    string

	// Extraction configuration
	MaxFileSize  int64 // Maximum PDF file size in bytes
	MaxScanPages int   // Page cap for heuristic fragment extraction

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		PDFDirectory: currentDir,
		OutputDir:    "output",
		MaxFileSize:  DefaultMaxFileSize,
		MaxScanPages: DefaultMaxScanPages,
		Version:      "1.0.0",
		ServerName:   "pdfoutline",
		LogLevel:     DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.PDFDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.PDFDirectory); err == nil {
			cfg.PDFDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and
// defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PDF_OUTLINE")
	viper.AutomaticEnv()

	viper.SetDefault("dir", cfg.PDFDirectory)
	viper.SetDefault("output", cfg.OutputDir)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("maxscanpages", cfg.MaxScanPages)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("dir", cfg.PDFDirectory, "Directory containing PDF files")
	pflag.String("output", cfg.OutputDir, "Output directory for extraction results")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.Int("maxscanpages", cfg.MaxScanPages, "Maximum number of pages scanned per document")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("maxscanpages", pflag.Lookup("maxscanpages"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPDF Outline MCP Server - heading detection and outline extraction over MCP\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_DIR          PDF directory\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_OUTPUT       Output directory\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_MAXFILESIZE  Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_MAXSCANPAGES Page scan cap\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.PDFDirectory = viper.GetString("dir")
	cfg.OutputDir = viper.GetString("output")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.MaxScanPages = viper.GetInt("maxscanpages")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.PDFDirectory == "" {
		return errors.New("PDF directory cannot be empty")
	}

	// Check if PDF directory exists, create if it doesn't
	if _, err := os.Stat(c.PDFDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.PDFDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create PDF directory %s: %w", c.PDFDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access PDF directory %s: %w", c.PDFDirectory, err)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.MaxScanPages <= 0 {
		return errors.New("maximum scan pages must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{PDFDirectory: %s, OutputDir: %s, LogLevel: %s, MaxFileSize: %d, MaxScanPages: %d}",
		c.PDFDirectory, c.OutputDir, c.LogLevel, c.MaxFileSize, c.MaxScanPages)
}
