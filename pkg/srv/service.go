package srv

import (
	"context"

	"github.com/sandevgo/roster/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts the services one after another in the foreground; each Start must return
// before the next begins. Every service is shut down afterwards in reverse order, even
// when a Start failed. The first Start error is returned.
func Run(ctx context.Context, services ...Service) error {
	var runErr error
	for _, service := range services {
		if err := service.Start(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed", service)
			runErr = err
			break
		}
	}

	ShutdownServices(ctx, services)
	return runErr
}

func ShutdownServices(ctx context.Context, services []Service) {
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
