package remote

import (
	"context"
	"fmt"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/ports"
)

// Mirror is an AlarmMirror that holds a connection to release
type Mirror interface {
	ports.AlarmMirror
	Close() error
}

type restCloser struct {
	*RESTMirror
}

func (restCloser) Close() error { return nil }

// Open returns the mirror for the configured backend, or nil when no backend is configured
func Open(ctx context.Context, cfg *config.RemoteSettings) (Mirror, error) {
	if cfg == nil || cfg.Backend == config.RemoteBackendNone {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.RemoteBackendPostgres:
		return OpenPostgres(ctx, cfg.PostgresDSN)
	case config.RemoteBackendRedis:
		opts := RedisOptions{
			Addr:      cfg.RedisAddr,
			KeyPrefix: cfg.RedisKeyPrefix,
			Password:  cfg.RedisPassword,
		}
		if cfg.RedisDB != nil {
			opts.DB = *cfg.RedisDB
		}
		return OpenRedis(ctx, opts)
	case config.RemoteBackendREST:
		return restCloser{NewRESTMirror(cfg.RESTURL, cfg.RESTAPIKey)}, nil
	}
	return nil, fmt.Errorf("unknown remote backend '%s'", cfg.Backend)
}
