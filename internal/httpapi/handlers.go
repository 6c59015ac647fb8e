package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"pricesuggest/internal/engine"
	"pricesuggest/internal/market"
	"pricesuggest/internal/model"
	"pricesuggest/internal/pricing"
)

const apiVersion = "1.0.0"

type suggestionRequest struct {
	ProductName string `json:"product_name"`
	Condition   string `json:"condition"`
}

type validateRequest struct {
	ProductName string `json:"product_name"`
	Condition   string `json:"condition"`
	Price       int64  `json:"price"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Root documents the API surface. The mux routes every unmatched path
// here, so anything other than "/" itself is a 404.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Price Suggestion API Server is running!",
			"version": apiVersion,
			"endpoints": map[string]string{
				"/health":               "Health check",
				"/api/price-suggestion": "Get price suggestions (GET for info, POST for data)",
				"/api/validate-price":   "Validate user price (GET for info, POST for validation)",
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// PriceSuggestion serves usage info on GET and computes a suggestion on POST.
func PriceSuggestion(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, map[string]any{
				"message": "Price Suggestion API is running",
				"methods": []string{http.MethodPost},
				"example_request": map[string]any{
					"product_name": "iPhone 13",
					"condition":    "nhu-moi",
				},
				"conditions": market.Conditions(),
			})
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req suggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "No data provided")
			return
		}
		if strings.TrimSpace(req.ProductName) == "" {
			writeError(w, http.StatusBadRequest, "Product name is required")
			return
		}
		if strings.TrimSpace(req.Condition) == "" {
			writeError(w, http.StatusBadRequest, "Condition is required")
			return
		}

		result, err := eng.Suggest(r.Context(), req.ProductName, strings.TrimSpace(req.Condition))
		if errors.Is(err, engine.ErrEmptyProductName) {
			writeError(w, http.StatusBadRequest, "Product name is required")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// ValidatePrice grades a user's asking price against a fresh suggestion.
func ValidatePrice(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, map[string]any{
				"message": "Price Validation API is running",
				"methods": []string{http.MethodPost},
				"example_request": map[string]any{
					"product_name": "iPhone 13",
					"condition":    "nhu-moi",
					"price":        15_000_000,
				},
			})
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req validateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "No data provided")
			return
		}
		if strings.TrimSpace(req.ProductName) == "" || strings.TrimSpace(req.Condition) == "" {
			writeError(w, http.StatusBadRequest, "Missing product_name or condition")
			return
		}
		if req.Price <= 0 {
			// No point scraping when the price itself is unusable.
			writeJSON(w, http.StatusBadRequest, pricing.Validate(&model.SuggestionResult{}, req.Price))
			return
		}

		_, validation, err := eng.Validate(r.Context(), req.ProductName, strings.TrimSpace(req.Condition), req.Price)
		if errors.Is(err, engine.ErrEmptyProductName) {
			writeError(w, http.StatusBadRequest, "Missing product_name or condition")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, validation)
	}
}
