package cmd

import (
	"BIOSECURE/controllers/personnel"
	"BIOSECURE/models"
	"BIOSECURE/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the personnel REST backend",
	Long: `Serves /api/personnel/ and /api/statistics/ backed by MySQL.

Requires DATABASE_URL, e.g.
  user:pass@tcp(localhost:3306)/biosecure_db?parseTime=true`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.RequireDatabase(); err != nil {
			return err
		}
		if err := models.ConnectDatabase(cfg.DatabaseURL); err != nil {
			return err
		}

		scheduler, err := models.StartHealthCheck(models.DB, cfg.HealthCheckInterval)
		if err != nil {
			return err
		}
		defer scheduler.Stop()

		personnel.EncodingDimensions = cfg.EncodingDimensions
		logger.Info("Konfigurasi api",
			zap.Strings("cors_origins", cfg.AllowedOrigins),
			zap.Int("encoding_dimensions", cfg.EncodingDimensions))

		return serve(cfg.APIAddr, routes.NewAPIRouter(cfg.AllowedOrigins, logger))
	},
}
