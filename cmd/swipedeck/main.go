package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sgostarter/i/l"

	"swipedeck/internal/config"
	"swipedeck/internal/eventbus"
	"swipedeck/internal/logic"
	"swipedeck/internal/ui"
)

func main() {
	// Parse command line arguments
	var deckPath string
	var initDeck, debug bool
	flag.StringVar(&deckPath, "config", "", "Deck file to load")
	flag.StringVar(&deckPath, "c", "", "Deck file to load (shorthand)")
	flag.BoolVar(&initDeck, "init", false, "Write the demo deck to the deck file and exit")
	flag.BoolVar(&debug, "debug", false, "Log deck internals to stdout and draw the UI on stderr")
	flag.Parse()

	if deckPath == "" && flag.NArg() > 0 {
		deckPath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("swipedeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	logger := l.NewNopLoggerWrapper()
	if debug {
		logger = l.NewConsoleLoggerWrapper()
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create event bus
	bus := eventbus.New(logger)
	defer bus.Close()

	var configSvc config.ConfigService
	if deckPath != "" {
		configSvc = config.NewConfigServiceAt(deckPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}

	if initDeck {
		if err := writeDemoDeck(configSvc); err != nil {
			fmt.Printf("Error writing deck: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", configSvc.Path())
		return
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading deck: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Loaded %d panes from %q", len(cfg.Panes), configSvc.Path())

	store := logic.NewMemoryPaneStore(ui.PanesFromConfig(cfg.Panes)...)

	uiModel := ui.NewModel(bus, cfg, configSvc, store, logger)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if debug {
		opts = append(opts, tea.WithOutput(os.Stderr))
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Forward deck events to the UI
	forward := func(e eventbus.DomainEvent) {
		log.Printf("event: %s", e.Type())
		p.Send(ui.EventMsg{Event: e})
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventSlideStarted,
		eventbus.EventSlideCompleted,
		eventbus.EventSnappedBack,
		eventbus.EventDeckCleaned,
		eventbus.EventConfigLoaded,
		eventbus.EventError,
	} {
		bus.Subscribe(et, forward)
	}

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// writeDemoDeck saves the default settings and demo panes
func writeDemoDeck(configSvc config.ConfigService) error {
	cfg := config.DefaultConfig()
	cfg.Panes = config.DefaultPanes()
	return configSvc.Save(cfg)
}
