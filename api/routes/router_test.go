package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kwabenaosei/shopdesk-backend/internal/cart"
	"github.com/kwabenaosei/shopdesk-backend/internal/catalog"
	"github.com/kwabenaosei/shopdesk-backend/internal/sales"
	"github.com/kwabenaosei/shopdesk-backend/pkg/config"
	"github.com/kwabenaosei/shopdesk-backend/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Env: "test", Port: "0"},
		HTTP:     config.HTTPConfig{CORSOrigins: []string{"http://localhost:3000"}},
		Ledger:   config.LedgerConfig{DefaultPageSize: 25, MaxPageSize: 100},
		Currency: config.CurrencyConfig{Display: "GHS"},
	}
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	index, err := catalog.NewIndex(catalog.Seed())
	if err != nil {
		t.Fatalf("catalog index: %v", err)
	}
	cartService, err := cart.NewService(cart.NewStore(), index)
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	ledger := sales.NewLedger()
	sales.SeedLedger(ledger)
	salesService, err := sales.NewService(sales.ServiceParams{Ledger: ledger, Carts: cartService})
	if err != nil {
		t.Fatalf("sales service: %v", err)
	}

	return NewRouter(testConfig(), logg, index, cartService, salesService, prometheus.NewRegistry())
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHealthLive(t *testing.T) {
	router := testRouter(t)

	resp := get(t, router, "/health/live")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if env := resp.Header().Get("X-ShopDesk-Env"); env != "test" {
		t.Fatalf("unexpected env header %q", env)
	}
	if reqID := resp.Header().Get("X-Request-Id"); reqID == "" {
		t.Fatal("request id header must be set")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	resp := get(t, router, "/metrics")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestCatalogSearchRoute(t *testing.T) {
	router := testRouter(t)

	resp := get(t, router, "/api/v1/catalog/search?query=scarves")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Women's scarves") {
		t.Fatalf("expected scarves in response, got %s", resp.Body)
	}
}

func TestCartCommitRoundTrip(t *testing.T) {
	router := testRouter(t)

	created := post(t, router, "/api/v1/carts", "")
	if created.Code != http.StatusCreated {
		t.Fatalf("create cart: expected 201 got %d", created.Code)
	}
	var envelope struct {
		Data struct {
			CartID string `json:"cart_id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(created.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	cartID := envelope.Data.CartID

	if resp := post(t, router, "/api/v1/carts/"+cartID+"/items", `{"item_id": 5}`); resp.Code != http.StatusOK {
		t.Fatalf("add item: expected 200 got %d: %s", resp.Code, resp.Body)
	}
	if resp := post(t, router, "/api/v1/carts/"+cartID+"/commit", `{"payment_method": "cash"}`); resp.Code != http.StatusCreated {
		t.Fatalf("commit: expected 201 got %d: %s", resp.Code, resp.Body)
	}

	list := get(t, router, "/api/v1/sales/?page_size=1")
	if list.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", list.Code)
	}
	var listEnvelope struct {
		Data sales.ListResult `json:"data"`
	}
	if err := json.NewDecoder(list.Body).Decode(&listEnvelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listEnvelope.Data.TotalEntries != 8 {
		t.Fatalf("expected 8 ledger entries after commit, got %d", listEnvelope.Data.TotalEntries)
	}
	if len(listEnvelope.Data.Items) != 1 {
		t.Fatalf("expected 1 item on the page, got %d", len(listEnvelope.Data.Items))
	}
	if listEnvelope.Data.Items[0].PaymentMethod != "cash" {
		t.Fatalf("newest entry must be the fresh commit, got %s", listEnvelope.Data.Items[0].PaymentMethod)
	}
}

func TestSalesStatsRoute(t *testing.T) {
	router := testRouter(t)

	resp := get(t, router, "/api/v1/sales/stats")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "total_revenue_display") {
		t.Fatalf("stats must include the display total, got %s", resp.Body)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter(t)

	resp := get(t, router, "/api/v1/nope")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
