package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"atlas/internal/config"
	"atlas/internal/dataset"
	"atlas/internal/domain"
	"atlas/internal/eventbus"
	"atlas/internal/fetch"
	"atlas/internal/pager"
	"atlas/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		datasetURL string
		configPath string
		debug      bool
	)
	flag.StringVar(&datasetURL, "url", "", "Dataset URL (overrides config)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("atlas.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Warn("could not open log file", "err", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.SetReportTimestamp(true)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Load configuration
	cfg, cfgErr := loadConfig(configPath)
	if datasetURL != "" {
		cfg.DatasetURL = datasetURL
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Create the dataset store and pagination controller
	store := dataset.NewStore()
	controller := pager.NewController(store)

	// Fetch service subscribes to fetch requests automatically
	fetchSvc := fetch.NewService(bus, cfg.DatasetURL, time.Duration(cfg.FetchTimeoutSeconds)*time.Second)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store, controller)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan domain.DomainEvent, 100)

	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "type", e.Type())
		}
	}

	// Forward bus events to the UI
	bus.Subscribe(eventbus.EventFetchStarted, forwardEvent)
	bus.Subscribe(eventbus.EventDatasetLoaded, forwardEvent)
	bus.Subscribe(eventbus.EventDatasetFailed, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Surface a config problem as a status message once the UI is up
	if cfgErr != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "Config not loaded, using defaults", Err: cfgErr})
	}

	// Kick off the initial dataset fetch
	if err := fetchSvc.StartFetch(ctx); err != nil {
		log.Warn("initial fetch not started", "err", err)
	}

	// Run the UI
	log.Info("starting atlas", "url", cfg.DatasetURL)
	if _, err := p.Run(); err != nil {
		log.Error("error running program", "err", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("atlas exited")

	// Cleanup: cancel any in-flight fetch and wait it out, then stop bus
	// dispatch before closing the forwarding channel so no handler can
	// send on it afterwards
	cancel()
	fetchSvc.Wait()
	bus.Close()
	close(eventChan)
}

// loadConfig loads the configuration from the given path, falling back
// to the default location and then to defaults. A non-nil error means
// defaults are in use because the default-location config was unreadable;
// an explicitly given path that fails is fatal.
func loadConfig(path string) (*config.Config, error) {
	configSvc := config.NewService()

	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Error("failed to load config", "path", path, "err", err)
			fmt.Printf("Error loading config %s: %v\n", path, err)
			os.Exit(1)
		}
		return cfg, nil
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		return config.DefaultConfig(), err
	}
	return cfg, nil
}
