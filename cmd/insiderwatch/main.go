package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"insiderwatch/config"
	"insiderwatch/internal/api"
	"insiderwatch/internal/dataset"
	"insiderwatch/internal/export"
	inputredis "insiderwatch/internal/input/redis"
	"insiderwatch/internal/logger"
	"insiderwatch/internal/metrics"
	"insiderwatch/internal/store"
	"insiderwatch/internal/views"
)

func findConfigFile(configArg string) string {
	if configArg != "" {
		if _, err := os.Stat(configArg); err == nil {
			return configArg
		}
		fmt.Fprintf(os.Stderr, "warning: config file not found at %s, trying default locations\n", configArg)
	}

	if env := os.Getenv("INSIDERWATCH_CONFIG"); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env
		}
	}

	if _, err := os.Stat("insiderwatch.yml"); err == nil {
		return "insiderwatch.yml"
	}

	exePath, err := os.Executable()
	if err == nil {
		path := filepath.Join(filepath.Dir(exePath), "insiderwatch.yml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "insiderwatch.yml"
}

func applyDefaults(cfg *config.Config) {
	if cfg.InsiderWatch.Server.Addr == "" {
		cfg.InsiderWatch.Server.Addr = "127.0.0.1:8085"
	}
	if cfg.InsiderWatch.Server.ReadTimeout <= 0 {
		cfg.InsiderWatch.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.InsiderWatch.Server.WriteTimeout <= 0 {
		cfg.InsiderWatch.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.InsiderWatch.Server.ShutdownTimeout <= 0 {
		cfg.InsiderWatch.Server.ShutdownTimeout = 5 * time.Second
	}

	if cfg.InsiderWatch.Dataset.Mode == "" {
		cfg.InsiderWatch.Dataset.Mode = "sample"
	}
	if cfg.InsiderWatch.Dataset.Redis.Addr == "" {
		cfg.InsiderWatch.Dataset.Redis.Addr = "127.0.0.1:6379"
	}
	if cfg.InsiderWatch.Dataset.Redis.Key == "" {
		cfg.InsiderWatch.Dataset.Redis.Key = "insiderwatch_dataset"
	}
	if cfg.InsiderWatch.Dataset.Redis.Timeout <= 0 {
		cfg.InsiderWatch.Dataset.Redis.Timeout = 5 * time.Second
	}

	if cfg.InsiderWatch.Logging.Level == "" {
		cfg.InsiderWatch.Logging.Level = "info"
	}

	if addr := os.Getenv("INSIDERWATCH_ADDR"); addr != "" {
		cfg.InsiderWatch.Server.Addr = addr
	}
}

func loadDataset(ctx context.Context, cfg config.DatasetConfig) (*dataset.Document, error) {
	switch cfg.Mode {
	case "sample":
		return dataset.Sample(), nil
	case "file":
		if cfg.File.Path == "" {
			return nil, fmt.Errorf("dataset file path is required in file mode")
		}
		return dataset.LoadFile(cfg.File.Path)
	case "redis":
		loader, err := inputredis.NewLoader(inputredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, err
		}
		defer loader.Close()
		raw, err := loader.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return dataset.Parse(raw)
	default:
		return nil, fmt.Errorf("unknown dataset mode %q", cfg.Mode)
	}
}

func main() {
	var (
		configArg    string
		exportAlerts string
		exportQuery  string
	)
	flag.StringVar(&configArg, "config", "", "path to configuration file")
	flag.StringVar(&exportAlerts, "export-alerts", "", "write the alerts view as CSV to this path and exit")
	flag.StringVar(&exportQuery, "q", "", "search query applied in one-shot export mode")
	flag.Parse()

	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(findConfigFile(configArg))
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = &config.Config{}
		cfg.InsiderWatch.Logging.Enabled = true
		cfg.InsiderWatch.Logging.Console = true
	}
	applyDefaults(cfg)

	lc := cfg.InsiderWatch.Logging
	if err := logger.Init(lc.Enabled, lc.Level, lc.File, lc.Console); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	doc, err := loadDataset(ctx, cfg.InsiderWatch.Dataset)
	if err != nil {
		logger.Errorf("failed to load dataset: %v", err)
		os.Exit(1)
	}
	alerts, profiles, err := doc.Build()
	if err != nil {
		logger.Errorf("failed to build dataset: %v", err)
		os.Exit(1)
	}

	st := store.New(alerts, profiles)
	logger.Infof("dataset loaded: %d alerts, %d users", len(alerts), len(profiles))

	if exportAlerts != "" {
		doc := export.AlertsDocument(views.Alerts(st, exportQuery))
		if err := export.WriteFile(exportAlerts, doc); err != nil {
			logger.Errorf("export failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Errorf("failed to register metrics: %v", err)
		os.Exit(1)
	}
	metrics.SetDatasetRecords(st.RecordCount())

	server := api.NewServer(cfg.InsiderWatch.Server, st)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", cfg.InsiderWatch.Server.Addr)
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Infof("received %s, shutting down", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server error: %v", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.InsiderWatch.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
