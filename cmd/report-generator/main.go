// Package main generates an address-scoped transaction report from a
// Blockbook-compatible endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txledger7000-backend/internal/blockbook"
	"github.com/goodnatureofminers/txledger7000-backend/internal/config"
	"github.com/goodnatureofminers/txledger7000-backend/internal/ledger"
	"github.com/goodnatureofminers/txledger7000-backend/internal/metrics"
	"github.com/goodnatureofminers/txledger7000-backend/internal/report"
	"github.com/goodnatureofminers/txledger7000-backend/internal/utils"
)

type cliConfig struct {
	Endpoint     string        `long:"endpoint" env:"TXLEDGER_ENDPOINT" description:"Blockbook-compatible JSON-RPC endpoint" required:"true"`
	Address      string        `long:"address" env:"TXLEDGER_ADDRESS" description:"tracked address" required:"true"`
	Network      string        `long:"network" env:"TXLEDGER_NETWORK" description:"network name" default:"mainnet"`
	ReportConfig string        `long:"report-config" env:"TXLEDGER_REPORT_CONFIG" description:"path to a YAML file with report options"`
	StartDate    string        `long:"start-date" env:"TXLEDGER_START_DATE" description:"report window start date (YYYY-MM-DD)"`
	EndDate      string        `long:"end-date" env:"TXLEDGER_END_DATE" description:"report window end date (YYYY-MM-DD)"`
	Timezone     string        `long:"timezone" env:"TXLEDGER_TIMEZONE" description:"named timezone or 'local'"`
	Fiat         string        `long:"fiat" env:"TXLEDGER_FIAT" description:"fiat currency code"`
	OutputDir    string        `long:"output-dir" env:"TXLEDGER_OUTPUT_DIR" description:"directory for the report file" default:"."`
	HTTPTimeout  time.Duration `long:"http-timeout" env:"TXLEDGER_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RPS          int           `long:"rps" env:"TXLEDGER_RPS" description:"max RPC requests per second" default:"4"`
	Concurrency  int           `long:"concurrency" env:"TXLEDGER_CONCURRENCY" description:"parallel tickers lookups" default:"4"`
	MetricsAddr  string        `long:"metrics-addr" env:"TXLEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := cliConfig{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("report generation failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg cliConfig, logger *zap.Logger) error {
	if err := utils.ValidateAddress(cfg.Address, cfg.Network); err != nil {
		return fmt.Errorf("validate address: %w", err)
	}

	opts, err := reportOptions(cfg)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	client := blockbook.NewClient(cfg.Endpoint, cfg.HTTPTimeout, cfg.RPS, metrics.NewBlockbookClient())

	result, err := client.GetAddress(ctx, cfg.Address)
	if err != nil {
		return fmt.Errorf("fetch address history: %w", err)
	}

	svc := ledger.NewService(client, logger, cfg.Concurrency)
	rep, err := svc.BuildReport(ctx, result, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.OutputDir, report.FileName(rep))
	if err := os.WriteFile(path, report.Render(rep), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("report saved",
		zap.String("path", path),
		zap.Int("rows", len(rep.Transactions)))

	return nil
}

// reportOptions merges the YAML report options file with flag overrides.
// Flags win.
func reportOptions(cfg cliConfig) (config.ReportOptions, error) {
	opts := config.ReportOptions{}
	if cfg.ReportConfig != "" {
		loaded, err := config.Load(cfg.ReportConfig)
		if err != nil {
			return config.ReportOptions{}, err
		}
		opts = *loaded
	}
	if cfg.StartDate != "" {
		opts.StartDate = cfg.StartDate
	}
	if cfg.EndDate != "" {
		opts.EndDate = cfg.EndDate
	}
	if cfg.Timezone != "" {
		opts.UserTimezone = cfg.Timezone
	}
	if cfg.Fiat != "" {
		opts.FiatCurrency = cfg.Fiat
	}
	return opts, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
