package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"wbfix/internal/logger"

	"github.com/BurntSushi/toml"
)

const (
	DefaultOutputPath      = "workbook.xlsx"
	DefaultTableStyle      = "TableStyleMedium2"
	DefaultAccountCount    = 20
	DefaultAllocationCount = 30
	DefaultNoteCount       = 20
	DefaultIssueCount      = 5
	DefaultDateStart       = "2026-01-01"
	DefaultDateSpanDays    = 41
	DefaultRowsPerPage     = 15

	dateLayout = "2006-01-02"
)

type Config struct {
	Output   OutputConfig   `toml:"output"`
	Generate GenerateConfig `toml:"generate"`
	UI       UIConfig       `toml:"ui"`
}

type OutputConfig struct {
	Path       string `toml:"path"`
	TableStyle string `toml:"table_style"`
}

type GenerateConfig struct {
	// Seed 0 seeds from the clock.
	Seed            uint64 `toml:"seed"`
	AccountCount    int    `toml:"account_count"`
	AllocationCount int    `toml:"allocation_count"`
	NoteCount       int    `toml:"note_count"`
	IssueCount      int    `toml:"issue_count"`
	DateStart       string `toml:"date_start"`
	DateSpanDays    int    `toml:"date_span_days"`
}

type UIConfig struct {
	RowsPerPage int `toml:"rows_per_page"`
}

// Default returns the constants the no-argument scripts run with.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:       DefaultOutputPath,
			TableStyle: DefaultTableStyle,
		},
		Generate: GenerateConfig{
			AccountCount:    DefaultAccountCount,
			AllocationCount: DefaultAllocationCount,
			NoteCount:       DefaultNoteCount,
			IssueCount:      DefaultIssueCount,
			DateStart:       DefaultDateStart,
			DateSpanDays:    DefaultDateSpanDays,
		},
		UI: UIConfig{
			RowsPerPage: DefaultRowsPerPage,
		},
	}
}

// StartDate parses DateStart.
func (g GenerateConfig) StartDate() (time.Time, error) {
	start, err := time.Parse(dateLayout, g.DateStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date_start %q: %w", g.DateStart, err)
	}
	return start, nil
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := Default()
		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	config.applyDefaults()
	if _, err := config.Generate.StartDate(); err != nil {
		return nil, err
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Output.TableStyle == "" {
		c.Output.TableStyle = DefaultTableStyle
	}
	if c.Generate.AccountCount == 0 {
		c.Generate.AccountCount = DefaultAccountCount
	}
	if c.Generate.AllocationCount == 0 {
		c.Generate.AllocationCount = DefaultAllocationCount
	}
	if c.Generate.NoteCount == 0 {
		c.Generate.NoteCount = DefaultNoteCount
	}
	if c.Generate.IssueCount == 0 {
		c.Generate.IssueCount = DefaultIssueCount
	}
	if c.Generate.DateStart == "" {
		c.Generate.DateStart = DefaultDateStart
	}
	if c.Generate.DateSpanDays == 0 {
		c.Generate.DateSpanDays = DefaultDateSpanDays
	}
	if c.UI.RowsPerPage == 0 {
		c.UI.RowsPerPage = DefaultRowsPerPage
	}
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
