package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/noteflow/internal/bootstrap"
	"github.com/at-ishikawa/noteflow/internal/chat"
	"github.com/at-ishikawa/noteflow/internal/classification"
	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/classifier/openai"
	"github.com/at-ishikawa/noteflow/internal/config"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/database"
	"github.com/at-ishikawa/noteflow/internal/inspiration"
	"github.com/at-ishikawa/noteflow/internal/metrics"
	"github.com/at-ishikawa/noteflow/internal/organize"
	"github.com/at-ishikawa/noteflow/internal/server"
)

var configFile string

func main() {
	_ = godotenv.Load()

	var migrate bool
	rootCmd := &cobra.Command{
		Use:           "noteflow-server",
		Short:         "noteflow HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), migrate)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, migrate bool) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if cfg.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY environment variable is required")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook("database", func(context.Context) error { return db.Close() })
	if migrate {
		version, err := database.Migrate(db, cfg.Database.Driver)
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("database.Migrate() > %w", err)
		}
		slog.Info("database migrated", "version", version)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	client := openai.NewClient(cfg.OpenAI, cfg.Organize.MaxTokensPerBatch)
	app.AddShutdownHook("openai", func(context.Context) error { return client.Close() })
	gateway := classifier.NewInstrumentedGateway(client, m)

	mux := http.NewServeMux()
	server.NewHandler(newServices(cfg, content.NewDBStore(db), gateway, m)).Handle(mux)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: corsMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("starting server", "addr", srv.Addr, "model", client.GetModel())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newServices(cfg *config.Config, store *content.Store, gateway classifier.Gateway, m *metrics.Metrics) server.Services {
	gate := inspiration.NewGate(store.Categories, store.Notes)
	categorizer := inspiration.NewCategorizer(gateway, store.Categories, store.Notes, gate)
	conv := converter.NewConverter(gateway, store.Notes, store.Planner)
	return server.Services{
		Store:       store,
		Router:      classification.NewRouter(gateway, categorizer, conv, m),
		Categorizer: categorizer,
		Gate:        gate,
		Converter:   conv,
		Organizer:   organize.NewOrganizer(gateway, store.Notes, store.Folders, m),
		Chat:        chat.NewService(gateway, store.Chat, store.Folders, cfg.Chat.HistoryLimit, m),
		Metrics:     m,
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
