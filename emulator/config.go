package main

import (
	"encoding/json"
	"fmt"
	"os"

	trigger "github.com/next-exp/l1trigger_go/pkg"
)

func LoadConfiguration(filename string) (trigger.Configuration, error) {
	var config trigger.Configuration

	// Set default values
	config.MaxEvents = 1000000000
	config.Verbosity = 0
	config.RunNumber = 0
	config.JetCollection = "jJets"
	config.SeedThreshold = 0
	config.NoDB = true
	config.Discard = true
	config.Skip = 0
	config.Host = "localhost"
	config.User = "l1reader"
	config.Passwd = "readonly"
	config.DBName = "L1TOPO"
	config.NumWorkers = 1
	config.WriteData = true
	config.WriteComposites = true
	config.CompressionLevel = 4

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	if config.NumWorkers < 1 {
		return config, fmt.Errorf("num_workers must be positive, got %d", config.NumWorkers)
	}
	if config.NoDB && config.MenuFile == "" {
		return config, fmt.Errorf("menu_file is required when no_db is set")
	}
	return config, nil
}

func printConfiguration(config trigger.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Menu file: %s", config.MenuFile), "config")
	logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Jet collection: %s", config.JetCollection), "config")
	logger.Info(fmt.Sprintf("Seed threshold: %d", config.SeedThreshold), "config")
	logger.Info(fmt.Sprintf("Skip: %d", config.Skip), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Discard: %t", config.Discard), "config")
	logger.Info(fmt.Sprintf("Write data: %t", config.WriteData), "config")
	logger.Info(fmt.Sprintf("Write composites: %t", config.WriteComposites), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	logger.Info(fmt.Sprintf("Metrics address: %s", config.MetricsAddr), "config")
}
