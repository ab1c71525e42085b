package bootstrap

import (
	"room-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		middleware.NewMetrics,
	),
)
