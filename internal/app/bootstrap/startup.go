// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/tripfolio/internal/app/system/respond"
	"github.com/dalemusser/tripfolio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to apply runtime tuning and any app-wide setup that depends on
// config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Operational timeout overrides (TIMEOUT_PING, TIMEOUT_SHORT, etc.).
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("applied timeout overrides from environment", zap.Int("count", n))
	}

	// Dev mode includes underlying error details in 500 responses;
	// production keeps them in the logs only.
	respond.Configure(coreCfg.Env == "dev")

	return nil
}
