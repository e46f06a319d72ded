// Package cmd implements the satsearch CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/satsearch-go/internal/config"
	"github.com/donaldgifford/satsearch-go/pkg/logger"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
	svc     *satsearch.Service
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the satsearch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "satsearch",
		Short: "CLI client for the SatSearch catalog API",
		Long: "satsearch queries the SatSearch space-industry catalog: suppliers,\n" +
			"product categories, attribute types and products. It can also keep\n" +
			"a local PostgreSQL mirror of the catalog reference data.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "",
		"config file (default $HOME/.config/satsearch/config.yaml)")
	flags.String("profile", "", "credentials profile from the config file")
	flags.String("api-token", "", "SatSearch API token (overrides the profile)")
	flags.String("app-token", "", "SatSearch application token (overrides the profile)")
	flags.String("base-uri", "", "SatSearch base URI (overrides the profile)")
	flags.String("output", "table", "output format (table, json)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json, pretty)")
	flags.Duration("timeout", 30*time.Second, "HTTP timeout per SatSearch request")

	for _, name := range []string{
		"profile", "api-token", "app-token", "base-uri",
		"output", "log-level", "log-format", "timeout",
	} {
		cobra.CheckErr(a.v.BindPFlag(name, flags.Lookup(name)))
	}

	rootCmd.AddCommand(
		suppliersCmd(a),
		categoriesCmd(a),
		attributesCmd(a),
		productsCmd(a),
		mirrorCmd(a),
		versionCmd(),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("SATSEARCH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := firstNonEmpty(a.v.GetString("log-level"), cfg.Logging.Level)
	format := firstNonEmpty(a.v.GetString("log-format"), cfg.Logging.Format)
	if !logger.ValidFormat(format) {
		return fmt.Errorf("unknown log format %q", format)
	}
	a.log = logger.NewWithWriter(cmd.ErrOrStderr(), level, format)

	a.svc = satsearch.NewService(
		satsearch.WithLogger(a.log),
		satsearch.WithHTTPClient(a.httpClient()),
	)
	return nil
}

// httpClient returns the traced client used for SatSearch API calls,
// bounded by --timeout.
func (a *app) httpClient() *http.Client {
	return &http.Client{
		Timeout:   a.v.GetDuration("timeout"),
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// loadConfig reads the explicit --config file, else the default location
// when it exists, else falls back to built-in defaults.
func (a *app) loadConfig() (*config.Config, error) {
	path := firstNonEmpty(a.cfgFile, a.v.GetString("config"))
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return config.Default(), nil
	}

	cfg, err := config.Load(filepath.Join(home, ".config", "satsearch", "config.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// credentials resolves the credentials for this invocation. Tokens given
// by flag or environment win over the profile; --base-uri overrides the
// base URI of either.
func (a *app) credentials(profile string) (*satsearch.Credentials, error) {
	apiToken := a.v.GetString("api-token")
	appToken := a.v.GetString("app-token")
	baseURI := a.v.GetString("base-uri")

	var creds *satsearch.Credentials
	if apiToken != "" || appToken != "" {
		creds = satsearch.NewCredentials(apiToken, appToken, baseURI)
	} else {
		var err error
		creds, err = a.cfg.Credentials(firstNonEmpty(profile, a.v.GetString("profile")))
		if err != nil {
			return nil, fmt.Errorf("%w (set --api-token and --app-token, or configure a profile)", err)
		}
		if baseURI != "" {
			creds.BaseURI = baseURI
		}
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetString("output") == "json"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
