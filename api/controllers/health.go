package controllers

import (
	"context"
	"net/http"

	"github.com/wishlane-app/wishlane-backend/api/responses"
	"github.com/wishlane-app/wishlane-backend/pkg/config"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"github.com/wishlane-app/wishlane-backend/pkg/logger"
	"go.uber.org/multierr"
)

// Pinger is implemented by datasources that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Wishlane-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies every registered datasource before reporting ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Wishlane-Env", cfg.App.Env)

		var combined error
		for _, p := range pingers {
			if p == nil {
				continue
			}
			combined = multierr.Append(combined, p.Ping(r.Context()))
		}
		if combined != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
