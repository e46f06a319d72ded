package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/satsearch-go/internal/api"
	"github.com/donaldgifford/satsearch-go/internal/api/client"
	"github.com/donaldgifford/satsearch-go/internal/api/handlers"
	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/internal/notify"
	"github.com/donaldgifford/satsearch-go/internal/ratelimit"
	"github.com/donaldgifford/satsearch-go/internal/telemetry"
)

func mirrorCmd(a *app) *cobra.Command {
	mirrorRoot := &cobra.Command{
		Use:   "mirror",
		Short: "Maintain a local PostgreSQL mirror of the catalog",
		Long: "Copy SatSearch suppliers, categories and attribute types into the\n" +
			"PostgreSQL database configured under mirror.database.",
	}

	mirrorRoot.AddCommand(
		mirrorMigrateCmd(a),
		mirrorSyncCmd(a),
		mirrorStatusCmd(a),
		mirrorTriggerCmd(a),
		mirrorRunCmd(a),
	)

	return mirrorRoot
}

// openStore validates the mirror settings and connects to the database.
func (a *app) openStore(ctx context.Context) (*mirror.PostgresStore, error) {
	if err := a.cfg.ValidateMirror(); err != nil {
		return nil, fmt.Errorf("validating mirror config: %w", err)
	}

	db := a.cfg.Mirror.Database
	s, err := mirror.NewPostgresStore(ctx, db.DSN(), db.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("connecting to mirror database %s/%s: %w", db.Host, db.Name, err)
	}
	return s, nil
}

func mirrorMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply mirror database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			a.log.Info("running migrations", "host", a.cfg.Mirror.Database.Host)
			if err := s.Migrate(ctx); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			a.log.Info("migrations complete")
			return nil
		},
	}
}

func mirrorSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one mirror sync now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			creds, err := a.credentials(a.cfg.Mirror.Profile)
			if err != nil {
				return err
			}

			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := context.WithTimeout(ctx, a.cfg.Mirror.Timeout)
			defer cancel()

			result, syncErr := mirror.NewSyncer(a.svc, s, a.log).Sync(ctx, creds)
			if result != nil {
				out := cmd.OutOrStdout()
				if a.jsonOutput() {
					if err := outputJSON(out, result); err != nil {
						return err
					}
				} else if err := printSyncResult(out, result); err != nil {
					return err
				}
			}
			return syncErr
		},
	}
}

func mirrorStatusCmd(a *app) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the most recent mirror sync",
		Long: "Show the most recent mirror sync. By default the mirror database is\n" +
			"read directly; with --server the running mirror API is asked instead.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if server != "" {
				return remoteStatus(cmd, a, client.New(server))
			}

			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			last, err := s.LastSync(ctx)
			if errors.Is(err, mirror.ErrNoSyncRuns) {
				fmt.Fprintln(cmd.OutOrStdout(), noSyncsMessage)
				return nil
			}
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), last)
			}
			return printSyncResult(cmd.OutOrStdout(), last)
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "mirror API base URL, e.g. http://localhost:8080")

	return cmd
}

const noSyncsMessage = "No mirror syncs recorded."

func remoteStatus(cmd *cobra.Command, a *app, c *client.Client) error {
	run, err := c.LastSync(cmd.Context())
	if client.IsNotFound(err) {
		fmt.Fprintln(cmd.OutOrStdout(), noSyncsMessage)
		return nil
	}
	if err != nil {
		return err
	}
	return printSyncRun(cmd, a, run)
}

func mirrorTriggerCmd(a *app) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Ask a running mirror server to sync now",
		Long: "Trigger a sync on a running `satsearch mirror run` and wait for it\n" +
			"to finish. Fails if a sync is already in progress.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if server == "" {
				server = fmt.Sprintf("http://localhost:%d", a.cfg.Server.Port)
			}
			run, err := client.New(server).TriggerSync(cmd.Context())
			if err != nil {
				return fmt.Errorf("triggering sync: %w", err)
			}
			return printSyncRun(cmd, a, run)
		},
	}
	cmd.Flags().StringVar(&server, "server", "",
		"mirror API base URL (default http://localhost:<server.port>)")

	return cmd
}

// setupTelemetry installs the OTLP exporters when telemetry is enabled.
func (a *app) setupTelemetry(ctx context.Context) (telemetry.ShutdownFunc, error) {
	t := a.cfg.Telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:        t.Enabled,
		Endpoint:       t.Endpoint,
		Insecure:       t.Insecure,
		SampleRatio:    t.SampleRatio,
		ExportInterval: t.ExportInterval,
		Version:        Version,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up telemetry: %w", err)
	}
	if t.Enabled {
		a.log.Info("opentelemetry export enabled", "endpoint", t.Endpoint, "sample_ratio", t.SampleRatio)
	}
	return shutdown, nil
}

// notifier returns the configured sync notifier.
func (a *app) notifier() notify.Notifier {
	d := a.cfg.Notifications.Discord
	if !d.Enabled {
		return notify.NewNoOpNotifier(a.log)
	}
	rl := a.cfg.Notifications.RateLimit
	limiter := ratelimit.New(rl.PerSecond, rl.Burst, rl.MaxDaily)

	a.log.Info("discord sync notifications enabled")
	return notify.NewDiscordNotifier(d.WebhookURL,
		notify.WithHTTPClient(&http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(ratelimit.NewTransport(http.DefaultTransport, limiter)),
		}))
}

// printSyncRun renders a sync reported by the mirror API.
func printSyncRun(cmd *cobra.Command, a *app, run *handlers.SyncRun) error {
	if a.jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), run)
	}
	id, err := uuid.Parse(run.ID)
	if err != nil {
		return fmt.Errorf("parsing sync id: %w", err)
	}
	return printSyncResult(cmd.OutOrStdout(), &mirror.SyncResult{
		ID:             id,
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
		Status:         run.Status,
		Suppliers:      run.Suppliers,
		Categories:     run.Categories,
		AttributeTypes: run.AttributeTypes,
		Error:          run.Error,
		Duration:       time.Duration(run.DurationMS) * time.Millisecond,
	})
}

func mirrorRunCmd(a *app) *cobra.Command {
	var syncNow bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sync the mirror on a schedule and serve the mirror API",
		Long: "Run the mirror scheduler until interrupted. Syncs run every\n" +
			"mirror.interval. The mirror API, health probes and Prometheus\n" +
			"metrics are served on server.host:server.port.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			creds, err := a.credentials(a.cfg.Mirror.Profile)
			if err != nil {
				return err
			}

			shutdownTelemetry, err := a.setupTelemetry(ctx)
			if err != nil {
				return err
			}
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTelemetry(flushCtx); err != nil {
					a.log.Warn("flushing telemetry", "error", err)
				}
			}()

			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Migrate(ctx); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}

			syncer := mirror.NewSyncer(a.svc, s, a.log)
			sched, err := mirror.NewScheduler(
				syncer, creds, a.cfg.Mirror.Interval, a.cfg.Mirror.Timeout, a.log,
				mirror.WithNotifier(a.notifier()),
			)
			if err != nil {
				return fmt.Errorf("creating scheduler: %w", err)
			}

			e := api.NewServer(api.Options{
				Store:       s,
				Trigger:     sched,
				Logger:      a.log,
				MetricsPath: a.cfg.Server.MetricsPath,
				Version:     Version,
			})
			e.Server.ReadHeaderTimeout = 10 * time.Second

			addr := a.cfg.Server.Addr()
			go func() {
				a.log.Info("starting server", "addr", addr, "metrics_path", a.cfg.Server.MetricsPath)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					a.log.Error("server error", "error", err)
					stop()
				}
			}()

			if syncNow {
				if _, err := sched.RunNow(ctx); err != nil {
					a.log.Error("initial mirror sync failed", "error", err)
				}
			}

			sched.Start()
			<-ctx.Done()

			a.log.Info("shutting down mirror")
			<-sched.Stop().Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down server: %w", err)
			}

			a.log.Info("mirror stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&syncNow, "sync-now", true, "sync once at startup before the first interval")

	return cmd
}
