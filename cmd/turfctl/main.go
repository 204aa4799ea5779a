package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-turf-booking/internal/adapter"
	"github.com/MKhiriev/go-turf-booking/internal/cli"
	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading configuration: %s\n", err)
		os.Exit(1)
	}

	cli.Execute(cfg, adapter.NewHTTPServerAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
