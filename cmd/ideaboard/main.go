// Package main is the entry point for the idea board client.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/ideaboard/internal/api"
	"github.com/hy4ri/ideaboard/internal/config"
	"github.com/hy4ri/ideaboard/internal/tui"
)

const version = "0.1.0"

const helpText = `ideaboard - Terminal client for a collaborative idea board

USAGE:
    ideaboard [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --server URL    Board server URL (overrides the config file)

CONFIGURATION:
    Config file: ~/.config/ideaboard/config.yaml

    To get started:
    1. Run 'ideaboard --init' to create a config template
    2. Point server.url at your board API (default http://localhost:8000)
    3. Run 'ideaboard'

KEYBINDINGS:
    Canvas:
        n           New note at the view center
        1-5         Arm a palette color, or drag a swatch with the mouse
        click/drag  Select and move notes, drag a corner to resize
        double-clk  Edit a note inline
        delete      Delete selected note(s)
        v / y       Vote / copy selected note

    View:
        ctrl+-/+/0  Zoom out / in / reset (ctrl+scroll works too)
        space       Pan mode (drag or h/j/k/l), middle-drag always pans

    Structure:
        c           Connect mode: click source, then target (same pair again removes the edge)
        g           Group the selected notes
        f / F       Color filter / tags panel
        /           Search

    Session:
        b / tab     Boards overlay / cycle boards
        p           Presentation mode
        t           Session timer
        i / I       AI summary / suggestions
        ctrl+z/y    Undo / redo
        ?           Help
        q           Quit
`

const configTemplate = `# Idea Board Configuration
# Location: ~/.config/ideaboard/config.yaml

server:
  # Base URL of the idea board API service.
  url: "http://localhost:8000"

ui:
  # Canvas zoom bounds and keyboard zoom step.
  min_zoom: 0.25
  max_zoom: 3.0
  zoom_step: 0.1

  # Undo history depth.
  history_limit: 50

  # Session timer length in minutes.
  timer_minutes: 5

  # Desktop notification when the timer ends.
  notifications: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		serverURL   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&serverURL, "server", "", "Board server URL")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("ideaboard version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(serverURL)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the config file if your board server is not on localhost:8000")
	fmt.Println("  2. Run 'ideaboard' to start")

	return nil
}

// runApp starts the main TUI application.
func runApp(serverURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}

	client := api.NewClient(cfg.Server.URL)

	// Fail fast with a readable message when the server is unreachable.
	if _, err := client.Health(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: board server not reachable at %s (%v)\n", cfg.Server.URL, err)
		fmt.Fprintln(os.Stderr, "Starting anyway; the UI will show the error.")
	}

	app := tui.NewApp(client, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}

	return nil
}
