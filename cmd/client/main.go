package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/user-management-api/internal/adapter"
	"github.com/MKhiriev/user-management-api/internal/client"
	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("user-management-client")

	cfg, args, err := config.GetClientConfig()
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, client.Usage)
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) == 1 && args[0] == "build-info" {
		printBuildInfo()
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, client.Usage)
		os.Exit(2)
	}

	api, err := adapter.NewHTTPUsersAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create users adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, os.Stdout, os.Stderr, log)
	if err = app.Run(ctx, args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
