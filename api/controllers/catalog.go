package controllers

import (
	"net/http"

	"github.com/kwabenaosei/shopdesk-backend/api/responses"
	"github.com/kwabenaosei/shopdesk-backend/api/validators"
	"github.com/kwabenaosei/shopdesk-backend/internal/catalog"
	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
	"github.com/kwabenaosei/shopdesk-backend/pkg/logger"
)

// CatalogSearch matches catalog items by name, skipping ids already in
// the cart (the exclude query parameter).
func CatalogSearch(index *catalog.Index, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if index == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		excludeIDs, err := validators.ParseQueryIntList(r, "exclude")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		exclude := make(map[int]struct{}, len(excludeIDs))
		for _, id := range excludeIDs {
			exclude[id] = struct{}{}
		}

		items := index.Search(r.URL.Query().Get("query"), exclude)
		if items == nil {
			items = []catalog.Item{}
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}
