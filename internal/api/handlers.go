package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/logging"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/normalize"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/service"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/units"
)

// DefaultMaxLines caps how many lines one aggregate request may carry.
const DefaultMaxLines = 2000

// NewRouter wires up all routes with the provided Service. maxLines limits
// the size of aggregate requests; values below 1 select DefaultMaxLines.
func NewRouter(svc *service.Service, maxLines int) http.Handler {
	if maxLines < 1 {
		maxLines = DefaultMaxLines
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Post("/shopping-list/aggregate", handleAggregate(svc, maxLines))
	r.Post("/ingredients/normalize", handleNormalize)
	r.Get("/units", handleListUnits)
	r.Post("/units/convert", handleConvert)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- aggregate ---

func handleAggregate(svc *service.Service, maxLines int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req aggregateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if len(req.Lines) > maxLines {
			jsonError(w, fmt.Sprintf("too many lines: %d exceeds limit of %d", len(req.Lines), maxLines), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			jsonError(w, validationMessage(err), http.StatusBadRequest)
			return
		}

		items := svc.Aggregate(req.toLines(), service.Options{GroupByRecipe: req.GroupByRecipe})
		slog.Debug("aggregated shopping list",
			"lines", len(req.Lines), "items", len(items), "group_by_recipe", req.GroupByRecipe)
		jsonOK(w, newAggregateResponse(items, len(req.Lines)))
	}
}

// --- normalize ---

func handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, validationMessage(err), http.StatusBadRequest)
		return
	}
	jsonOK(w, newNormalizeResponse(normalize.Name(req.Name)))
}

// --- units ---

func handleListUnits(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, newUnitsResponse(units.Entries()))
}

func handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	from, to := units.NormalizeUnit(req.From), units.NormalizeUnit(req.To)
	resp := convertResponse{Quantity: *req.Quantity, From: from, To: to}
	if units.Compatible(from, to) {
		resp.Compatible = true
		resp.Quantity = units.Convert(*req.Quantity, from, to)
	}
	jsonOK(w, resp)
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
