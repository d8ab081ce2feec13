package cmd

import (
	"BIOSECURE/client"
	"BIOSECURE/controllers/dashboard"
	"BIOSECURE/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run the admin dashboard UI",
	Long: `Serves the sidebar dashboard. All data goes through the REST backend
at BACKEND_URL; the dashboard itself keeps no state besides the active tab.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := client.New(cfg.BackendURL, cfg.BackendTimeout)
		ctrl := dashboard.New(backend, cfg.FallbackDelay, logger)

		r, err := routes.NewDashboardRouter(ctrl, logger)
		if err != nil {
			return err
		}

		logger.Info("Konfigurasi dashboard",
			zap.String("backend_url", cfg.BackendURL),
			zap.Duration("fallback_delay", cfg.FallbackDelay))
		return serve(cfg.DashboardAddr, r)
	},
}
