package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kwabenaosei/shopdesk-backend/api/responses"
	"github.com/kwabenaosei/shopdesk-backend/api/validators"
	cartsvc "github.com/kwabenaosei/shopdesk-backend/internal/cart"
	salessvc "github.com/kwabenaosei/shopdesk-backend/internal/sales"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
	"github.com/kwabenaosei/shopdesk-backend/pkg/logger"
)

type addItemRequest struct {
	ItemID int `json:"item_id" validate:"required,min=1"`
}

// updateItemRequest carries either an absolute quantity or a delta.
type updateItemRequest struct {
	Quantity *int `json:"quantity,omitempty"`
	Delta    *int `json:"delta,omitempty"`
}

type commitRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// CartCreate opens a new empty cart for a sale-entry session.
func CartCreate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		view := svc.CreateCart(r.Context())
		if logg != nil {
			logg.Info(logg.WithCartID(r.Context(), view.ID.String()), "cart.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// CartFetch returns the cart's lines and subtotal.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.GetCart(r.Context(), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAddItem adds a catalog item as a quantity-1 line.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.AddItem(r.Context(), cartID, payload.ItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartUpdateItem sets a line's quantity, either absolutely or by delta.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID, err := itemIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view cartsvc.View
		switch {
		case payload.Quantity != nil:
			view, err = svc.SetQuantity(r.Context(), cartID, itemID, *payload.Quantity)
		case payload.Delta != nil:
			view, err = svc.AdjustQuantity(r.Context(), cartID, itemID, *payload.Delta)
		default:
			err = pkgerrors.New(pkgerrors.CodeValidation, "quantity or delta is required")
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartRemoveItem deletes a line from the cart.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID, err := itemIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.RemoveItem(r.Context(), cartID, itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartCommit records the sale and clears the cart. Payment method
// validation lives in the committer so the rule holds for every caller.
func CartCommit(svc salessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}
		cartID, err := cartIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload commitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sale, err := svc.Commit(r.Context(), cartID, enums.PaymentMethod(payload.PaymentMethod))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithSalesID(logg.WithCartID(r.Context(), cartID.String()), sale.SalesID)
			logg.Info(ctx, "sale.committed")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, sale)
	}
}

func cartIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "cartID")
	cartID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart id")
	}
	return cartID, nil
}

func itemIDFromPath(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "itemID")
	itemID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id")
	}
	return itemID, nil
}
