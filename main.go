package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdxmph/tasks-tui/internal/config"
	"github.com/pdxmph/tasks-tui/internal/notify"
	"github.com/pdxmph/tasks-tui/internal/store"
	"github.com/pdxmph/tasks-tui/internal/task"
	"github.com/pdxmph/tasks-tui/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	storePath := flag.String("store", "", "override task store path")
	fixtures := flag.Bool("fixtures", false, "seed the store with sample tasks and exit")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal(err)
	}

	if *storePath != "" {
		cfg.Storage.Path = *storePath
	}

	// Open the task store
	st, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	if *fixtures {
		if err := store.WriteFixtures(st); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Seeded sample tasks in %s store at %s\n", st.Name(), cfg.Storage.Path)
		return
	}

	tracker := task.NewTracker(st)
	if err := tracker.Load(); err != nil {
		log.Fatal(err)
	}

	// Pick a notifier; noop is fine, the TUI falls back to a toast
	notifier, err := notify.NewManager(cfg.Notify.Backend)
	if err != nil {
		log.Fatal(err)
	}

	// Create model
	model, err := tui.New(tracker, notifier, time.Duration(cfg.Reminders.IntervalMinutes)*time.Minute)
	if err != nil {
		log.Fatal(err)
	}

	// Start the program
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
