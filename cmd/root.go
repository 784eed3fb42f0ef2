package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/config"
	"github.com/s0up4200/thoth/rest"
	"github.com/s0up4200/thoth/store"
	"github.com/s0up4200/thoth/thoth"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zerolog.Nop()

	// Global flags
	endpoint   string
	apiVersion string
	outputFmt  string
	rawOutput  bool

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "thoth",
	Short: "Query, update and mirror the Thoth open metadata API",
	Long: `thoth is a client for the Thoth bibliographic metadata API.

It runs every query and count the selected API version offers, applies
mutations with your Thoth account, reads the export API and keeps a local
database mirror of chosen publishers.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion records build information for --version and self-update
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// Execute runs the root command through fang
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s (built %s)", version, buildTime)),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.StringVar(&endpoint, "endpoint", "", "Thoth GraphQL endpoint (overrides thoth.endpoint)")
	flags.StringVar(&apiVersion, "api-version", "", "Thoth API version to speak (overrides thoth.version)")
	flags.StringVarP(&outputFmt, "output", "o", "", "output format: object, json or yaml")
	flags.BoolVar(&rawOutput, "raw", false, "print the server response verbatim")
}

// initializeApp loads .env, the configuration and the logger
func initializeApp(cmd *cobra.Command, args []string) error {
	// a missing .env is fine
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("endpoint") {
		cfg.Thoth.Endpoint = endpoint
	}
	if cmd.Flags().Changed("api-version") {
		if !thoth.IsSupported(apiVersion) {
			return &thoth.VersionError{Version: apiVersion, Supported: thoth.SupportedVersions()}
		}
		cfg.Thoth.Version = apiVersion
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFmt
	}

	logger = setupLogger(cfg.Logging)
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// clientOptions turns the thoth section into client options. The version is
// left to the caller.
func clientOptions() []thoth.Option {
	opts := []thoth.Option{
		thoth.WithUserAgent(userAgent()),
	}
	if cfg.Thoth.Timeout > 0 {
		opts = append(opts, thoth.WithTimeout(cfg.Thoth.Timeout))
	}
	if cfg.Thoth.RateLimit > 0 {
		opts = append(opts, thoth.WithRateLimit(cfg.Thoth.RateLimit, 1))
	}
	return opts
}

func userAgent() string {
	if cfg.Thoth.UserAgent != "" {
		return cfg.Thoth.UserAgent
	}
	return "thoth-cli/" + version
}

// newClient creates a GraphQL client for the configured endpoint and version
func newClient() (*thoth.Client, error) {
	opts := append(clientOptions(), thoth.WithVersion(cfg.Thoth.Version))
	client, err := thoth.NewClient(cfg.Thoth.Endpoint, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Thoth client: %w", err)
	}
	return client, nil
}

// newExportClient creates a client for the export API
func newExportClient() (*rest.Client, error) {
	opts := []rest.Option{rest.WithVersion(cfg.Export.Version)}
	if cfg.Thoth.Timeout > 0 {
		opts = append(opts, rest.WithTimeout(cfg.Thoth.Timeout))
	}
	client, err := rest.NewClient(cfg.Export.Endpoint, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create export client: %w", err)
	}
	return client, nil
}

// openStore opens the local mirror database
func openStore() (*store.Store, error) {
	st, err := store.Open(cfg.Database.Driver, cfg.Database.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}
