package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kwabenaosei/shopdesk-backend/api/responses"
	"github.com/kwabenaosei/shopdesk-backend/api/validators"
	"github.com/kwabenaosei/shopdesk-backend/internal/sales"
	"github.com/kwabenaosei/shopdesk-backend/pkg/config"
	"github.com/kwabenaosei/shopdesk-backend/pkg/currency"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
	"github.com/kwabenaosei/shopdesk-backend/pkg/logger"
)

// SalesList serves one page of the ledger, most recent first.
func SalesList(svc sales.Service, ledgerCfg config.LedgerConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pageSize, err := validators.ParseQueryInt(r, "page_size", ledgerCfg.DefaultPageSize, 1, ledgerCfg.MaxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.List(r.Context(), page, pageSize))
	}
}

type statsResponse struct {
	sales.Stats
	TotalRevenueDisplay string `json:"total_revenue_display"`
}

// SalesStats serves the dashboard aggregates, recomputed on every call.
func SalesStats(svc sales.Service, display enums.Currency, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}
		stats := svc.Stats(r.Context())
		responses.WriteSuccess(w, statsResponse{
			Stats:               stats,
			TotalRevenueDisplay: currency.Format(stats.TotalRevenue, display),
		})
	}
}

// SalesDetail serves a single ledger entry by its sales id.
func SalesDetail(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}
		salesID := chi.URLParam(r, "salesID")
		sale, ok := svc.Detail(r.Context(), salesID)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "sale not found").WithDetails(map[string]any{"sales_id": salesID}))
			return
		}
		responses.WriteSuccess(w, sale)
	}
}
