package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanifbg/PlacesProxy/config"
	handlerInit "github.com/hanifbg/PlacesProxy/internal/handler/util"
	repoInit "github.com/hanifbg/PlacesProxy/internal/repository/util"
	servInit "github.com/hanifbg/PlacesProxy/internal/service/util"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configFile string
	port       int
)

var rootCmd = &cobra.Command{
	Use:   "places-proxy",
	Short: "HTTP proxy for Google Places text search",
	Long:  `Serves /places, a simplified proxy over the Google Places text search API, and /health.`,
	RunE:  runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: app.config.json in . or ./config)")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port, overrides the configured one")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	config.SetConfigFile(configFile)
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.AppPort = port
	}

	repo, err := repoInit.New(cfg)
	if err != nil {
		return err
	}

	serv := servInit.New(cfg, repo)

	e := handlerInit.NewServer(cfg)
	handlerInit.InitHandler(cfg, e, serv)

	if cfg.GoogleAPIKey == "" {
		e.Logger.Warn("GOOGLE_MAPS_API_KEY is not set, /places will answer 500")
	}

	serverAddr := fmt.Sprintf(":%d", cfg.AppPort)
	go func() {
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	e.Logger.Infof("Server is running at http://localhost%s", serverAddr)

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(ctx)
}
