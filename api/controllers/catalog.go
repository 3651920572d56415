package controllers

import (
	"net/http"

	"github.com/wishlane-app/wishlane-backend/api/responses"
	"github.com/wishlane-app/wishlane-backend/internal/catalog"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"github.com/wishlane-app/wishlane-backend/pkg/logger"
)

// CatalogProducts proxies the upstream product catalog.
func CatalogProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.ListProducts(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}
