package controllers

import (
	"net/http"

	"github.com/kwabenaosei/shopdesk-backend/api/responses"
	"github.com/kwabenaosei/shopdesk-backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopDesk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}
