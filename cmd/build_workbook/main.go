package main

import (
	"fmt"
	"os"
	"wbfix/internal/config"
	"wbfix/internal/container"
	"wbfix/internal/logger"
)

func main() {
	if err := logger.Init("logs"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	if err := container.Build(config.DefaultOutputPath); err != nil {
		logger.Error("Build operation failed", "error", err)
		fmt.Printf("Error building workbook: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", config.DefaultOutputPath)
}
