// Command wizard runs the assessment questionnaire in the terminal against a
// running server (API_BASE_URL).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"peorisk/internal/client"
	"peorisk/internal/config"
	"peorisk/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := client.New(cfg.APIBaseURL, 15*time.Second)
	model := tui.New(ctx, api, cfg.LookupDebounce)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.Attach(p.Send)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running wizard: %v\n", err)
		os.Exit(1)
	}
}
