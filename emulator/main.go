package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	trigger "github.com/next-exp/l1trigger_go/pkg"
)

var logger Logger

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	configuration, err := LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	if err := run(configuration); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(configuration trigger.Configuration) error {
	start := time.Now()

	file, err := os.Open(configuration.FileIn)
	if err != nil {
		return fmt.Errorf("Error opening file: %w", err)
	}
	defer file.Close()

	menuConfig, err := loadMenu(configuration, file)
	if err != nil {
		return err
	}
	menu, err := trigger.BuildMenu(menuConfig)
	if err != nil {
		return fmt.Errorf("Error building menu: %w", err)
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Menu with %d algorithms", len(menu.Algorithms))
		logger.Info(message, "main")
	}

	if configuration.MetricsAddr != "" {
		server := serveMetrics(configuration.MetricsAddr, logger)
		defer server.Shutdown(context.Background())
	}

	var writer *trigger.Writer
	if configuration.WriteData {
		writer, err = trigger.NewWriter(configuration.FileOut, menu, configuration.CompressionLevel, configuration.WriteComposites)
		if err != nil {
			return fmt.Errorf("Error creating output file: %w", err)
		}
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error(err.Error())
			}
		}()
	}

	emulator := &Emulator{
		Builder:       trigger.NewJetBuilder(configuration.SeedThreshold),
		Menu:          menu,
		JetCollection: configuration.JetCollection,
		Verbosity:     configuration.Verbosity,
		Logger:        logger,
	}
	fileReader := NewFileReader(file, configuration, logger)
	sink, done := processWorkerResults(configuration, writer, logger)
	emulator.Run(fileReader, configuration.NumWorkers, sink)
	evtsProcessed := done()

	duration := time.Since(start)
	message := fmt.Sprintf("Total events processed: %d in %d ms", evtsProcessed, duration.Milliseconds())
	logger.Info(message, "main")
	return nil
}

func loadMenu(configuration trigger.Configuration, file *os.File) (trigger.MenuConfig, error) {
	if configuration.NoDB {
		menu, err := trigger.LoadMenuFile(configuration.MenuFile)
		if err != nil {
			return menu, fmt.Errorf("Error reading menu file: %w", err)
		}
		return menu, nil
	}

	runNumber := configuration.RunNumber
	if runNumber == 0 {
		var err error
		if runNumber, err = peekRunNumber(file); err != nil {
			return trigger.MenuConfig{}, err
		}
	}

	dbConn, err := trigger.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
	if err != nil {
		return trigger.MenuConfig{}, fmt.Errorf("Error connection to database: %w", err)
	}
	defer dbConn.Close()

	menu, err := trigger.LoadMenuFromDB(dbConn, runNumber, configuration.Verbosity, logger)
	if err != nil {
		return menu, fmt.Errorf("Error loading menu for run %d: %w", runNumber, err)
	}
	return menu, nil
}
