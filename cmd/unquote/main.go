// Command unquote is the terminal client for the daily cryptoquip.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/bojanrajkovic/unquote/internal/api"
	"github.com/bojanrajkovic/unquote/internal/app"
)

var version = "dev"

const defaultAPIURL = "http://localhost:3000"

func main() {
	var (
		insecure bool
		random   bool
	)

	root := &cobra.Command{
		Use:           "unquote",
		Short:         "Play the daily cryptoquip in your terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(insecure, app.Options{Random: random})
		},
	}
	root.Flags().BoolVar(&insecure, "insecure", false, "allow plain HTTP to non-localhost hosts")
	root.Flags().BoolVar(&random, "random", false, "play a random historical puzzle instead of today's")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show your solve stats and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(insecure, app.Options{StatsMode: true})
		},
	}
	stats.Flags().BoolVar(&insecure, "insecure", false, "allow plain HTTP to non-localhost hosts")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("unquote", version)
		},
	}

	root.AddCommand(stats, versionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "unquote:", err)
		os.Exit(1)
	}
}

func play(insecure bool, opts app.Options) error {
	baseURL := os.Getenv("UNQUOTE_API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	client, err := api.NewClient(baseURL, api.WithInsecure(insecure))
	if err != nil {
		return err
	}

	zone.NewGlobal()
	defer zone.Close()

	p := tea.NewProgram(
		app.NewModel(client, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
