// Package main provides the molnet CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/molnet-ml/molnet/config"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("molnet %s\n", version)
			return
		case "validate":
			os.Exit(runValidate(os.Args[2:]))
		}
	}

	fmt.Println("molnet - molecular-property prediction losses for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                  Show version")
	fmt.Println("  validate <config.yaml>   Check a training configuration's loss setup")
}

func runValidate(args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(args) != 1 {
		logger.Error("usage: molnet validate <config.yaml>")
		return 2
	}

	cfg, err := config.Load(args[0])
	if err != nil {
		logger.Error("failed to load config", "path", args[0], "error", err)
		return 1
	}

	name, err := cfg.ResolvedLossName()
	if err != nil {
		logger.Error("invalid loss configuration", "dataset_type", cfg.DatasetType.String(), "error", err)
		return 1
	}

	logger.Info("configuration valid",
		"dataset_type", cfg.DatasetType.String(),
		"loss_function", name,
	)
	return 0
}
