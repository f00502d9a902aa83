package observability

import (
	"context"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/ligadavila/copa-engine/internal/config"
	"github.com/ligadavila/copa-engine/internal/platform/logging"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace.
// Returns a no-op shutdown when disabled; spans then stay no-ops end to
// end because no global tracer provider is installed.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.UptraceEnabled {
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return uptrace.Shutdown, nil
}
