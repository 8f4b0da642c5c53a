package main

import (
	"fmt"
	"os"
	"wbfix/internal/config"
	"wbfix/internal/logger"
	"wbfix/internal/populate"
)

func main() {
	if err := logger.Init("logs"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	summary, err := populate.Run(config.Default())
	if err != nil {
		fmt.Printf("Error populating test data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Test data populated successfully!")
	fmt.Printf("  - Generated %d account numbers (7-digit random)\n", summary.Accounts)
	fmt.Printf("  - Created %d tables with sample data\n", len(summary.Tables))
	fmt.Printf("  - Workbook saved to %s\n", summary.OutputPath)
}
