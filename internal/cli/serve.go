package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entrypoint"
	"github.com/mrlokans/catalog/internal/scheduler"
)

func newServeCommand(opts *options, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, version)
		},
	}
}

func runServe(opts *options, version string) error {
	cfg := loadConfig(opts)
	if err := validateServeConfig(cfg); err != nil {
		return err
	}
	entrypoint.Run(cfg, version)
	return nil
}

// validateServeConfig rejects settings that would otherwise only fail once
// the server is up.
func validateServeConfig(cfg *config.Config) error {
	if !cfg.Audit.Enabled {
		return nil
	}
	if cfg.Audit.RetentionDays < 1 {
		return fmt.Errorf("AUDIT_RETENTION_DAYS must be positive, got %d", cfg.Audit.RetentionDays)
	}
	// An empty schedule disables the cleanup job.
	if cfg.Audit.CleanupSchedule == "" {
		return nil
	}
	if err := scheduler.ValidateCronSchedule(cfg.Audit.CleanupSchedule); err != nil {
		return fmt.Errorf("invalid AUDIT_CLEANUP_SCHEDULE %q: %w", cfg.Audit.CleanupSchedule, err)
	}
	return nil
}
