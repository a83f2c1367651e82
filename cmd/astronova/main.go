package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sankalpsthakur/astronova/internal/config"
	"github.com/sankalpsthakur/astronova/internal/server"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "astronova",
		Short: "Astrological chart computation engine",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "calculation settings file")

	rootCmd.AddCommand(chartCmd(&configPath))
	rootCmd.AddCommand(synastryCmd(&configPath))
	rootCmd.AddCommand(dashaCmd(&configPath))
	rootCmd.AddCommand(numerologyCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func chartCmd(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chart [project-path]",
		Short: "Compute the natal chart for a birth profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runChart(*configPath, args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a text report")
	return cmd
}

func synastryCmd(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "synastry [project-path] [partner-project-path]",
		Short: "Score compatibility between two birth profiles",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSynastry(*configPath, args[0], args[1], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a text report")
	return cmd
}

func dashaCmd(configPath *string) *cobra.Command {
	var asJSON bool
	var at string

	cmd := &cobra.Command{
		Use:   "dasha [project-path]",
		Short: "Build the Vimshottari timeline for a birth profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDasha(*configPath, args[0], at, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a text report")
	cmd.Flags().StringVar(&at, "at", "", "report the active period at this RFC3339 instant")
	return cmd
}

func numerologyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "numerology [project-path]",
		Short: "Build the Lo Shu grid for a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runNumerology(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a birth profile without computing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local HTTP API over the profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			return server.New(args[0], cfg).Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (overrides config)")
	return cmd
}
