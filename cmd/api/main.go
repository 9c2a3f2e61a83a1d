package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinicwave/agenda-ops/internal/agenda"
	"github.com/clinicwave/agenda-ops/internal/amei"
	"github.com/clinicwave/agenda-ops/internal/api/router"
	"github.com/clinicwave/agenda-ops/internal/campaign"
	appconfig "github.com/clinicwave/agenda-ops/internal/config"
	"github.com/clinicwave/agenda-ops/internal/digisac"
	"github.com/clinicwave/agenda-ops/internal/http/handlers"
	"github.com/clinicwave/agenda-ops/internal/observability/metrics"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting agenda-ops API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ameiClient, err := amei.New(amei.Config{
		BaseURL:     cfg.AmeiBaseURL,
		BearerToken: cfg.AmeiBearerToken,
		Cookie:      cfg.AmeiCookie,
		ClinicID:    cfg.AmeiClinicID,
		UnitID:      cfg.AmeiUnitID,
		Timeout:     cfg.AmeiTimeout,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to configure Amei client", "error", err)
		os.Exit(1)
	}

	digisacClient, err := digisac.New(digisac.Config{
		BaseURL:   cfg.DigisacBaseURL,
		APIToken:  cfg.DigisacAPIToken,
		ServiceID: cfg.DigisacServiceID,
		Timeout:   cfg.DigisacTimeout,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to configure Digisac client", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	agendaMetrics := metrics.NewAgendaMetrics(registry)
	campaignMetrics := metrics.NewCampaignMetrics(registry)

	aggregator := agenda.NewAggregator(ameiClient, cfg.DirectoryCacheTTL, logger).
		WithMetrics(agendaMetrics)

	// A missing template only disables campaign starts; the agenda view must
	// stay up regardless.
	var campaignRunner handlers.CampaignRunner
	if tmpl, err := campaign.LoadTemplate(cfg.CampaignTemplatePath); err != nil {
		logger.Warn("campaign disabled: message template unavailable", "error", err, "path", cfg.CampaignTemplatePath)
	} else {
		exporter := campaign.NewExcelExporter(cfg.CampaignExportPath)
		campaignRunner = campaign.NewRunner(ameiClient, digisacClient, exporter, tmpl, logger).
			WithPauseWindow(cfg.CampaignPauseMin, cfg.CampaignPauseMax).
			WithMetrics(campaignMetrics)
	}

	routerCfg := &router.Config{
		Logger:          logger,
		AgendaHandler:   handlers.NewAgendaHandler(aggregator, logger).WithMetrics(agendaMetrics),
		CampaignHandler: handlers.NewCampaignHandler(campaignRunner, logger),
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// An in-flight campaign run keeps its own pace; the shutdown window only
	// covers draining HTTP connections.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
