package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/records-dashboard/internal/backend"
	"github.com/MKhiriev/records-dashboard/internal/cli"
	"github.com/MKhiriev/records-dashboard/internal/config"
	"github.com/MKhiriev/records-dashboard/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := buildInfo()
	backend.ClientInfo = "records-dashboard/" + build.Version

	log := logger.NewClientLogger("records-dashboard", "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, log, build)
	stop()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Error().Err(err).Msg("command failed")
	os.Exit(1)
}

func buildInfo() cli.BuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return cli.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}
}
