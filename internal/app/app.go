// Package app wires the launcher together: settings, providers, the feedback
// and activation dispatchers, and the navigation controller, with lifetimes
// tied to one program run rather than process-wide singletons.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/titoTito21/titan-menu/internal/action"
	"github.com/titoTito21/titan-menu/internal/audio"
	"github.com/titoTito21/titan-menu/internal/history"
	"github.com/titoTito21/titan-menu/internal/logging"
	"github.com/titoTito21/titan-menu/internal/menu"
	"github.com/titoTito21/titan-menu/internal/nav"
	"github.com/titoTito21/titan-menu/internal/providers"
	"github.com/titoTito21/titan-menu/internal/settings"
	"github.com/titoTito21/titan-menu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SettingsPath string
	MenuLabel    string
	HistoryDB    string
}

// Run bootstraps and executes the console front-end.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := cfg.SettingsPath
	if path == "" {
		path = settings.DefaultPath()
	}
	store, err := settings.Load(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := store.Watch(ctx); err != nil {
		// Live reload is a convenience; a missing watcher only means edits
		// take effect on the next start.
		logging.Error(err)
	}

	registry := action.NewRegistry()

	var recorder action.Recorder
	var hist *history.Store
	if cfg.HistoryDB != "" {
		hist, err = history.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("open launch history: %w", err)
		}
		defer hist.Close()
		recorder = hist
	}

	transcript := ui.NewTranscript()
	feedback := audio.NewDispatcher(
		ui.NewSpeechEcho(transcript, true),
		ui.NewSpeechEcho(transcript, false),
		ui.NewCueEcho(transcript),
		store,
	)
	activator := action.NewDispatcher(registry, feedback, recorder)

	builder := menu.NewBuilder()
	apps := providers.NewApps(store, registry)
	games := providers.NewGames(store, registry)
	builder.Register(apps)
	builder.Register(games)
	builder.Register(providers.NewStatus(store))
	builder.Register(providers.NewPlugins(store, registry))
	if hist != nil {
		builder.Register(providers.NewRecent(hist, apps, games))
	}
	builder.Register(rootProvider(registry, hist != nil))

	controller := nav.NewController(builder, feedback, activator, cfg.MenuLabel)

	model := ui.NewModel(ctx, controller, transcript)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// rootProvider assembles the fixed top-level categories plus the exit leaf.
func rootProvider(registry *action.Registry, withRecent bool) menu.Provider {
	exit := registry.RegisterBuiltin("exit", func() error { return nil }, true)
	return menu.ProviderFunc{
		Source: menu.RootSource,
		Load: func(context.Context) ([]menu.Node, error) {
			nodes := []menu.Node{
				menu.Submenu("Applications", providers.SourceApplications),
				menu.Submenu("Games", providers.SourceGames),
			}
			if withRecent {
				nodes = append(nodes, menu.Submenu("Recent", providers.SourceRecent))
			}
			nodes = append(nodes,
				menu.Submenu("Status", providers.SourceStatus),
				menu.Submenu("Plugins", providers.SourcePlugins),
				menu.Leaf("Exit", exit),
			)
			return nodes, nil
		},
	}
}
