package main

import (
	"fmt"
	"os"

	"hubboard/config"
	"hubboard/server"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfgPath  string
	httpPort string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "hubboard",
	Short: "Hub board - add hubs and edit their lifecycle status in the browser",
	Long: `hubboard serves a single page listing hubs as cards. Every browser
session gets its own in-memory board seeded with three hubs; nothing is
persisted and the board is gone when the session expires.`,
	SilenceUsage: true,
	RunE:         serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default command)",
	RunE:  serve,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (YAML); HUBBOARD_* env vars override it")
	rootCmd.PersistentFlags().StringVar(&httpPort, "port", "", "HTTP port (overrides server.http_port)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides logging.level)")

	rootCmd.AddCommand(serveCmd, versionCmd)
}

// loadConfig merges defaults, file, env and flags, flags winning.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New(cfgPath)
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		v.Set("server.http_port", httpPort)
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		v.Set("logging.level", logLevel)
	}
	return config.Load(v)
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	var app server.App
	if err := app.Initialize(cfg); err != nil {
		return err
	}
	return app.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
