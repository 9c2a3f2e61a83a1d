package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/clinicwave/agenda-ops/internal/amei"
	"github.com/clinicwave/agenda-ops/internal/campaign"
	appconfig "github.com/clinicwave/agenda-ops/internal/config"
	"github.com/clinicwave/agenda-ops/internal/digisac"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

// One-shot confirmation campaign run from the command line. Exits non-zero
// when the run ends in FAILED.
func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

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

	tmpl, err := campaign.LoadTemplate(cfg.CampaignTemplatePath)
	if err != nil {
		logger.Error("failed to load campaign message template", "error", err, "path", cfg.CampaignTemplatePath)
		os.Exit(1)
	}

	exporter := campaign.NewExcelExporter(cfg.CampaignExportPath)
	runner := campaign.NewRunner(ameiClient, digisacClient, exporter, tmpl, logger).
		WithPauseWindow(cfg.CampaignPauseMin, cfg.CampaignPauseMax)

	state := campaign.NewRunState()
	logger.Info("campaign run starting", "run_id", state.ID().String())

	runErr := runner.Run(context.Background(), state)

	snapshot := state.Snapshot()
	for _, line := range snapshot.Logs {
		logger.Info("campaign log", "line", line)
	}
	logger.Info("campaign run finished",
		"run_id", snapshot.ID.String(),
		"phase", string(snapshot.Phase),
		"status", snapshot.StatusText,
		"export", snapshot.ExportPath,
	)

	if runErr != nil || snapshot.Phase == campaign.PhaseFailed {
		os.Exit(1)
	}
}
