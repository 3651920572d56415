package controllers

import (
	"net/http"

	"github.com/wishlane-app/wishlane-backend/api/responses"
	"github.com/wishlane-app/wishlane-backend/api/validators"
	"github.com/wishlane-app/wishlane-backend/internal/wishlists"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"github.com/wishlane-app/wishlane-backend/pkg/logger"
)

// ItemAdd snapshots a product onto the wishlist.
func ItemAdd(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlists service unavailable"))
			return
		}

		ident, err := requireIdentity(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		wishlistID, err := uuidParam(r, "wid")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body wishlists.AddItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.AddItem(ctx, ident, wishlistID, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// ItemList returns the wishlist's items.
func ItemList(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlists service unavailable"))
			return
		}

		ident, err := requireIdentity(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		wishlistID, err := uuidParam(r, "wid")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.ListItems(ctx, ident, wishlistID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// ItemRemove removes an item from the wishlist.
func ItemRemove(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlists service unavailable"))
			return
		}

		ident, err := requireIdentity(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		wishlistID, err := uuidParam(r, "wid")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		itemID, err := uuidParam(r, "itemId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.RemoveItem(ctx, ident, wishlistID, itemID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"removed": true})
	}
}
