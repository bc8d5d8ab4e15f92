package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"atlas/internal/config"
	"atlas/internal/dataset"
	"atlas/internal/eventbus"
	"atlas/internal/fetch"
	"atlas/internal/pager"
	"atlas/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("atlas.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Warn("could not open log file", "err", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Warn("error loading config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	// Create event bus and core services
	bus := eventbus.New()
	defer bus.Close()

	store := dataset.NewStore()
	controller := pager.NewController(store)
	_ = fetch.NewService(bus, cfg.DatasetURL, time.Duration(cfg.FetchTimeoutSeconds)*time.Second)

	// Create UI model and program
	uiModel := ui.NewModel(bus, cfg, store, controller)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward bus events to the UI
	forwardEvent := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventFetchStarted, forwardEvent)
	bus.Subscribe(eventbus.EventDatasetLoaded, forwardEvent)
	bus.Subscribe(eventbus.EventDatasetFailed, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	// Kick off the initial dataset fetch
	bus.Publish(eventbus.FetchRequestedEvent{})

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
