package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-turf-booking/internal/adapter"
	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/models"
)

// AdapterFactory builds the transport used by the commands.
// [adapter.NewHTTPServerAdapter] satisfies it.
type AdapterFactory func(cfg config.ClientAdapter, log *logger.Logger) (adapter.ServerAdapter, error)

// App carries the state shared by all turfctl commands for one invocation.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	newAdapter AdapterFactory
	adapter    adapter.ServerAdapter

	output  string
	verbose bool

	out    io.Writer
	logger *logger.Logger
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// NewRootCmd builds the turfctl command tree. Flags registered here override
// the values already loaded into cfg from defaults and TURFCTL_ variables.
func NewRootCmd(cfg *config.ClientConfig, newAdapter AdapterFactory, buildInfo models.AppBuildInfo) *cobra.Command {
	app := &App{
		cfg:        cfg,
		buildInfo:  buildInfo,
		newAdapter: newAdapter,
		output:     outputTable,
		out:        os.Stdout,
		logger:     logger.Nop(),
	}

	rootCmd := &cobra.Command{
		Use:   "turfctl",
		Short: "Command-line client for the turf booking API",
		Long: `turfctl manages turfs and bookings on a turf booking server.

Run "turfctl login" once; the token is stored in the token file and used by
the bookings commands until it expires.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Adapter.HTTPAddress, "server", cfg.Adapter.HTTPAddress, "API base URL (env: TURFCTL_SERVER_URL)")
	flags.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "request timeout (env: TURFCTL_REQUEST_TIMEOUT)")
	flags.StringVar(&cfg.Session.Token, "token", cfg.Session.Token, "bearer token, overrides the token file (env: TURFCTL_TOKEN)")
	flags.StringVar(&cfg.Session.TokenFile, "token-file", cfg.Session.TokenFile, "token file path (env: TURFCTL_TOKEN_FILE)")
	flags.StringVarP(&app.output, "output", "o", app.output, "output format: table, json")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(
		app.newRegisterCmd(),
		app.newLoginCmd(),
		app.newLogoutCmd(),
		app.newTurfsCmd(),
		app.newBookingsCmd(),
		app.newVersionCmd(),
	)

	return rootCmd
}

// Execute runs turfctl and exits non-zero on failure.
func Execute(cfg *config.ClientConfig, newAdapter AdapterFactory, buildInfo models.AppBuildInfo) {
	cmd := NewRootCmd(cfg, newAdapter, buildInfo)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		os.Exit(1)
	}
}

func (a *App) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()
	if a.verbose {
		a.logger = logger.NewCLILogger("turfctl", true)
	}

	if a.output != outputTable && a.output != outputJSON {
		return fmt.Errorf("unknown output format %q", a.output)
	}
	if a.cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", config.ErrInvalidAdapterConfigs)
	}

	serverAdapter, err := a.newAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return err
	}

	token, err := loadToken(a.cfg.Session)
	if err != nil {
		return fmt.Errorf("read token file: %w", err)
	}
	serverAdapter.SetToken(token)

	a.adapter = serverAdapter
	a.logger.Debug().
		Str("func", "App.setup").
		Str("server", a.cfg.Adapter.HTTPAddress).
		Bool("has_token", token != "").
		Msg("turfctl initialised")

	return nil
}

// describeError strips the sentinel prefix so users see the server's message.
func describeError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Sprintf("%s (run \"turfctl login\")", err)
	default:
		return err.Error()
	}
}
