package main

import (
	"fmt"
	"os"
	"wbfix/internal/config"
	"wbfix/internal/container"
	"wbfix/internal/fixtures"
	"wbfix/internal/logger"
	"wbfix/internal/populate"
	"wbfix/internal/preview"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logDir     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wbfix",
		Short: "Generate accounting fixture workbooks",
		Long: `wbfix writes workbook.xlsx fixtures: an empty container, or a workbook
with twelve named tables of random accounting data.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(logDir); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.toml", "Config file (created with defaults if missing)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "logs", "Directory for wbfix.log")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "build",
			Short: "Write an empty workbook container",
			Args:  cobra.NoArgs,
			RunE:  runBuild,
		},
		&cobra.Command{
			Use:   "populate",
			Short: "Write the workbook with generated fixture tables",
			Args:  cobra.NoArgs,
			RunE:  runPopulate,
		},
		&cobra.Command{
			Use:   "preview",
			Short: "Browse a generated dataset before writing it",
			Args:  cobra.NoArgs,
			RunE:  runPreview,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("Starting build operation", "output", cfg.Output.Path)
	if err := container.Build(cfg.Output.Path); err != nil {
		logger.Error("Build operation failed", "error", err)
		return fmt.Errorf("error building workbook: %w", err)
	}

	fmt.Printf("Created %s\n", cfg.Output.Path)
	return nil
}

func runPopulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summary, err := populate.Run(cfg)
	if err != nil {
		return fmt.Errorf("error populating test data: %w", err)
	}

	printSummary(summary)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ds, err := populate.Generate(cfg)
	if err != nil {
		return fmt.Errorf("error generating preview data: %w", err)
	}
	logger.Info("Starting preview", "seed", ds.Seed)

	write := func() (string, error) {
		summary, err := populate.WriteDataset(ds, cfg.Output.Path, cfg.Output.TableStyle, uuid.NewString())
		if err != nil {
			logger.Error("Preview write failed", "error", err)
			return "", err
		}
		logger.Info("Preview dataset written", "path", summary.OutputPath, "run_id", summary.RunID)
		return summary.OutputPath, nil
	}

	err = preview.RunPreviewTUI(ds, write, preview.UIConfig{RowsPerPage: cfg.UI.RowsPerPage})
	if err != nil {
		logger.Error("Preview failed", "error", err)
		return fmt.Errorf("error running preview: %w", err)
	}
	return nil
}

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func printSummary(summary *fixtures.Summary) {
	fmt.Println(okStyle.Render("✓ Test data populated successfully!"))
	fmt.Printf("  - Generated %d account numbers (7-digit random)\n", summary.Accounts)
	fmt.Printf("  - Created %d tables with sample data\n", len(summary.Tables))
	for _, t := range summary.Tables {
		fmt.Printf("      %s %d rows\n", labelStyle.Render(fmt.Sprintf("%-20s", t.Name)), t.Rows)
	}
	fmt.Printf("  - Seed %d, run %s\n", summary.Seed, summary.RunID)
	fmt.Printf("  - Workbook saved to %s\n", summary.OutputPath)
}
